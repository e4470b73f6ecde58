package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/store"
)

// DashboardSummary is the landing page overview.
type DashboardSummary struct {
	Counts            map[string]int64 `json:"counts"`
	OpenMelItems      int              `json:"openMelItems"`
	OpenDiscrepancies int              `json:"openDiscrepancies"`
	CurrentTrips      int              `json:"currentTrips"`
	UpcomingTrips     int              `json:"upcomingTrips"`
}

type DashboardService struct {
	store       store.Store
	maintenance *MaintenanceService
	trips       *TripService
}

func NewDashboardService(s store.Store, maintenance *MaintenanceService, trips *TripService) *DashboardService {
	return &DashboardService{store: s, maintenance: maintenance, trips: trips}
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if s.store == nil {
		return nil, &apperr.ConfigurationError{Component: "document store"}
	}
	sum := &DashboardSummary{Counts: make(map[string]int64, len(constants.AllCollections))}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, name := range constants.AllCollections {
		name := name
		g.Go(func() error {
			n, err := s.store.Count(gctx, name)
			if err != nil {
				return &apperr.StoreError{Op: "count", Resource: name, Err: err}
			}
			mu.Lock()
			sum.Counts[name] = n
			mu.Unlock()
			return nil
		})
	}
	g.Go(func() error {
		mel, err := s.maintenance.ListMelItems(gctx, "")
		if err != nil {
			return err
		}
		n := 0
		for _, m := range mel {
			if m.Status != entities.StatusClosed {
				n++
			}
		}
		mu.Lock()
		sum.OpenMelItems = n
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		ds, err := s.maintenance.ListDiscrepancies(gctx, "")
		if err != nil {
			return err
		}
		n := 0
		for _, d := range ds {
			if d.Status != entities.StatusClosed {
				n++
			}
		}
		mu.Lock()
		sum.OpenDiscrepancies = n
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		current, err := s.trips.CurrentTrips(gctx)
		if err != nil {
			return err
		}
		upcoming, err := s.trips.UpcomingTrips(gctx)
		if err != nil {
			return err
		}
		mu.Lock()
		sum.CurrentTrips = len(current)
		sum.UpcomingTrips = len(upcoming)
		mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sum, nil
}
