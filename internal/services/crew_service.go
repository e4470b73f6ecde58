package services

import (
	"context"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/store"
)

// CrewService manages the crew roster and crew documents.
type CrewService struct {
	crew      *Collection[entities.CrewMember, *entities.CrewMember]
	documents *Collection[entities.CrewDocument, *entities.CrewDocument]
}

func NewCrewService(s store.Store) *CrewService {
	return &CrewService{
		crew:      NewCollection[entities.CrewMember](s, constants.CollectionCrew, "crew member"),
		documents: NewCollection[entities.CrewDocument](s, constants.CollectionCrewDocuments, "crew document"),
	}
}

// ListCrew returns the roster by last name.
func (s *CrewService) ListCrew(ctx context.Context) ([]entities.CrewMember, error) {
	crew, err := s.crew.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(crew, func(c *entities.CrewMember) string { return c.LastName + " " + c.FirstName })
	return crew, nil
}

func (s *CrewService) GetCrewMember(ctx context.Context, id string) (*entities.CrewMember, error) {
	return s.crew.Get(ctx, id)
}

func (s *CrewService) SaveCrewMember(ctx context.Context, c *entities.CrewMember) (*entities.CrewMember, error) {
	return s.crew.Save(ctx, c)
}

// DeleteCrewMember leaves the member's documents in place; nothing enforces
// references between collections.
func (s *CrewService) DeleteCrewMember(ctx context.Context, id string) (*DeleteResult, error) {
	return s.crew.Delete(ctx, id)
}

// ListDocuments returns documents soonest expiry first, optionally for one
// crew member.
func (s *CrewService) ListDocuments(ctx context.Context, crewMemberID string) ([]entities.CrewDocument, error) {
	docs, err := s.documents.List(ctx, byParent("crewMemberId", crewMemberID)...)
	if err != nil {
		return nil, err
	}
	sortByDate(docs, func(d *entities.CrewDocument) string { return d.ExpiryDate }, true)
	return docs, nil
}

func (s *CrewService) GetDocument(ctx context.Context, id string) (*entities.CrewDocument, error) {
	return s.documents.Get(ctx, id)
}

func (s *CrewService) SaveDocument(ctx context.Context, d *entities.CrewDocument) (*entities.CrewDocument, error) {
	return s.documents.Save(ctx, d)
}

func (s *CrewService) DeleteDocument(ctx context.Context, id string) (*DeleteResult, error) {
	return s.documents.Delete(ctx, id)
}
