package services

import (
	"context"
	"time"

	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/store"
)

// CompanyService manages the company profile singleton and company
// documents. The profile is read through the cache because every quote
// build consults its fee catalog.
type CompanyService struct {
	profile   *Collection[entities.CompanyProfile, *entities.CompanyProfile]
	documents *Collection[entities.CompanyDocument, *entities.CompanyDocument]
	cache     common.CacheInterface
	cacheTTL  time.Duration
}

func NewCompanyService(s store.Store, cache common.CacheInterface, cacheTTL time.Duration) *CompanyService {
	return &CompanyService{
		profile:   NewCollection[entities.CompanyProfile](s, constants.CollectionCompanyProfile, "company profile"),
		documents: NewCollection[entities.CompanyDocument](s, constants.CollectionCompanyDocuments, "company document"),
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// GetProfile returns the stored profile, or an empty one with the fixed id
// when none was saved yet.
func (s *CompanyService) GetProfile(ctx context.Context) (*entities.CompanyProfile, error) {
	p, err := readThrough(s.cache, string(constants.CachePrefixCompanyProfile), s.cacheTTL, func() (*entities.CompanyProfile, error) {
		return s.profile.Find(ctx, constants.CompanyProfileID)
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &entities.CompanyProfile{
			Base:            entities.Base{ID: constants.CompanyProfileID},
			ServiceFeeRates: map[string]entities.ServiceFeeRate{},
		}, nil
	}
	return p, nil
}

// SaveProfile writes the singleton and drops the cached copy.
func (s *CompanyService) SaveProfile(ctx context.Context, p *entities.CompanyProfile) (*entities.CompanyProfile, error) {
	p.ID = constants.CompanyProfileID
	saved, err := s.profile.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixCompanyProfile))
	}
	logging.Info("company profile saved", "feeCount", len(saved.ServiceFeeRates))
	return saved, nil
}

// ServiceFees returns the fee catalog of the profile.
func (s *CompanyService) ServiceFees(ctx context.Context) (map[string]entities.ServiceFeeRate, error) {
	p, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return p.ServiceFeeRates, nil
}

func (s *CompanyService) ListDocuments(ctx context.Context) ([]entities.CompanyDocument, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByDate(docs, func(d *entities.CompanyDocument) string { return d.EffectiveDate }, false)
	return docs, nil
}

func (s *CompanyService) GetDocument(ctx context.Context, id string) (*entities.CompanyDocument, error) {
	return s.documents.Get(ctx, id)
}

func (s *CompanyService) SaveDocument(ctx context.Context, d *entities.CompanyDocument) (*entities.CompanyDocument, error) {
	return s.documents.Save(ctx, d)
}

func (s *CompanyService) DeleteDocument(ctx context.Context, id string) (*DeleteResult, error) {
	return s.documents.Delete(ctx, id)
}
