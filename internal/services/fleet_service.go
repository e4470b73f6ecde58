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

// FleetService owns the fleet and the per-aircraft documents keyed by
// aircraft id: rates, performance data and component times.
type FleetService struct {
	aircraft    *Collection[entities.FleetAircraft, *entities.FleetAircraft]
	rates       *Collection[entities.AircraftRate, *entities.AircraftRate]
	performance *Collection[entities.AircraftPerformanceData, *entities.AircraftPerformanceData]
	components  *Collection[entities.ComponentTimes, *entities.ComponentTimes]
	cache       common.CacheInterface
	cacheTTL    time.Duration
}

func NewFleetService(s store.Store, cache common.CacheInterface, cacheTTL time.Duration) *FleetService {
	return &FleetService{
		aircraft:    NewCollection[entities.FleetAircraft](s, constants.CollectionFleet, "fleet aircraft"),
		rates:       NewCollection[entities.AircraftRate](s, constants.CollectionAircraftRates, "aircraft rate"),
		performance: NewCollection[entities.AircraftPerformanceData](s, constants.CollectionPerformanceData, "aircraft performance data"),
		components:  NewCollection[entities.ComponentTimes](s, constants.CollectionComponentTimes, "component times"),
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// ListAircraft returns the fleet ordered by tail number.
func (s *FleetService) ListAircraft(ctx context.Context) ([]entities.FleetAircraft, error) {
	fleet, err := s.aircraft.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(fleet, func(a *entities.FleetAircraft) string { return a.TailNumber })
	return fleet, nil
}

func (s *FleetService) GetAircraft(ctx context.Context, id string) (*entities.FleetAircraft, error) {
	return s.aircraft.Get(ctx, id)
}

func (s *FleetService) SaveAircraft(ctx context.Context, a *entities.FleetAircraft) (*entities.FleetAircraft, error) {
	saved, err := s.aircraft.Save(ctx, a)
	if err != nil {
		return nil, err
	}
	logging.Info("fleet aircraft saved", "id", saved.ID, "tailNumber", saved.TailNumber)
	return saved, nil
}

// DeleteAircraft removes the aircraft together with its rate, performance
// data and component times in one batch.
func (s *FleetService) DeleteAircraft(ctx context.Context, id string) (*DeleteResult, error) {
	res, err := s.aircraft.Delete(ctx, id, s.rates.Ref(id), s.performance.Ref(id), s.components.Ref(id))
	if err != nil {
		return nil, err
	}
	s.invalidateRate(id)
	logging.Info("fleet aircraft deleted", "id", id)
	return res, nil
}

// AircraftLabel renders "TAIL (Model)" for documents and line items.
func AircraftLabel(a *entities.FleetAircraft) string {
	if a == nil {
		return ""
	}
	if a.Model == "" {
		return a.TailNumber
	}
	return a.TailNumber + " (" + a.Model + ")"
}

func (s *FleetService) ListRates(ctx context.Context) ([]entities.AircraftRate, error) {
	return s.rates.List(ctx)
}

func rateCacheKey(aircraftID string) string {
	return string(constants.CachePrefixAircraftRate) + aircraftID
}

func (s *FleetService) invalidateRate(aircraftID string) {
	if s.cache != nil {
		s.cache.Delete(rateCacheKey(aircraftID))
	}
}

// GetRate returns the rate pair of an aircraft, or nil when none was set.
func (s *FleetService) GetRate(ctx context.Context, aircraftID string) (*entities.AircraftRate, error) {
	return readThrough(s.cache, rateCacheKey(aircraftID), s.cacheTTL, func() (*entities.AircraftRate, error) {
		return s.rates.Find(ctx, aircraftID)
	})
}

// SaveRate stores the rate pair. Its id is always the aircraft id.
func (s *FleetService) SaveRate(ctx context.Context, aircraftID string, r *entities.AircraftRate) (*entities.AircraftRate, error) {
	r.ID = aircraftID
	saved, err := s.rates.Save(ctx, r)
	if err != nil {
		return nil, err
	}
	s.invalidateRate(aircraftID)
	return saved, nil
}

func (s *FleetService) DeleteRate(ctx context.Context, aircraftID string) (*DeleteResult, error) {
	res, err := s.rates.Delete(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	s.invalidateRate(aircraftID)
	return res, nil
}

// GetPerformance returns nil when the aircraft has no performance data yet.
func (s *FleetService) GetPerformance(ctx context.Context, aircraftID string) (*entities.AircraftPerformanceData, error) {
	return s.performance.Find(ctx, aircraftID)
}

func (s *FleetService) SavePerformance(ctx context.Context, aircraftID string, p *entities.AircraftPerformanceData) (*entities.AircraftPerformanceData, error) {
	p.ID = aircraftID
	return s.performance.Save(ctx, p)
}

// GetComponentTimes returns an empty set when nothing was recorded yet.
func (s *FleetService) GetComponentTimes(ctx context.Context, aircraftID string) (*entities.ComponentTimes, error) {
	ct, err := s.components.Find(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		ct = &entities.ComponentTimes{Base: entities.Base{ID: aircraftID}}
	}
	if ct.Components == nil {
		ct.Components = map[string]entities.ComponentTime{}
	}
	return ct, nil
}

// SaveComponentTimes replaces the component map of an aircraft.
func (s *FleetService) SaveComponentTimes(ctx context.Context, aircraftID string, ct *entities.ComponentTimes) (*entities.ComponentTimes, error) {
	ct.ID = aircraftID
	if ct.Components == nil {
		ct.Components = map[string]entities.ComponentTime{}
	}
	return s.components.Save(ctx, ct)
}
