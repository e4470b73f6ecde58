package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/rules"
	"flightops360/hangar/internal/store"
)

// TripService manages trips and their per-leg flight logs.
type TripService struct {
	trips *Collection[entities.Trip, *entities.Trip]
	logs  *Collection[entities.FlightLog, *entities.FlightLog]
	now   func() time.Time
}

func NewTripService(s store.Store) *TripService {
	return &TripService{
		trips: NewCollection[entities.Trip](s, constants.CollectionTrips, "trip"),
		logs:  NewCollection[entities.FlightLog](s, constants.CollectionFlightLogs, "flight log"),
		now:   time.Now,
	}
}

// displayCode builds human-facing ids such as TRP-3F9A1C2B.
func displayCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// ListTrips returns trips latest first-leg departure first.
func (s *TripService) ListTrips(ctx context.Context) ([]entities.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByDate(trips, func(t *entities.Trip) string {
		if len(t.Legs) == 0 {
			return ""
		}
		return t.Legs[0].DepartureDateTime
	}, false)
	return trips, nil
}

func (s *TripService) CurrentTrips(ctx context.Context) ([]entities.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	return rules.CurrentTrips(trips, s.now()), nil
}

// UpcomingTrips returns scheduled or confirmed trips departing later, soonest
// first.
func (s *TripService) UpcomingTrips(ctx context.Context) ([]entities.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	return rules.UpcomingTrips(trips, s.now()), nil
}

func (s *TripService) GetTrip(ctx context.Context, id string) (*entities.Trip, error) {
	return s.trips.Get(ctx, id)
}

// SaveTrip assigns a display code to new trips.
func (s *TripService) SaveTrip(ctx context.Context, t *entities.Trip) (*entities.Trip, error) {
	if t.TripID == "" {
		prior, err := s.findTrip(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			t.TripID = prior.TripID
		} else {
			t.TripID = displayCode("TRP")
		}
	}
	if t.AssignedFlightAttendantIDs == nil {
		t.AssignedFlightAttendantIDs = []string{}
	}
	saved, err := s.trips.Save(ctx, t)
	if err != nil {
		return nil, err
	}
	logging.Info("trip saved", "id", saved.ID, "tripId", saved.TripID, "status", saved.Status)
	return saved, nil
}

func (s *TripService) findTrip(ctx context.Context, id string) (*entities.Trip, error) {
	if id == "" {
		return nil, nil
	}
	return s.trips.Find(ctx, id)
}

// DeleteTrip removes the trip and its flight logs in one batch.
func (s *TripService) DeleteTrip(ctx context.Context, id string) (*DeleteResult, error) {
	logs, err := s.logs.List(ctx, store.Eq("tripId", id))
	if err != nil {
		return nil, err
	}
	cascade := make([]store.Ref, 0, len(logs))
	for _, l := range logs {
		cascade = append(cascade, s.logs.Ref(l.ID))
	}
	return s.trips.Delete(ctx, id, cascade...)
}

// ListFlightLogs returns the logs of a trip in leg order.
func (s *TripService) ListFlightLogs(ctx context.Context, tripID string) ([]entities.FlightLog, error) {
	logs, err := s.logs.List(ctx, byParent("tripId", tripID)...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].TripID != logs[j].TripID {
			return logs[i].TripID < logs[j].TripID
		}
		return logs[i].LegIndex < logs[j].LegIndex
	})
	return logs, nil
}

// SaveFlightLog computes times and fuel burn and stores the log under its
// trip and leg.
func (s *TripService) SaveFlightLog(ctx context.Context, f *entities.FlightLog) (*entities.FlightLog, error) {
	trip, err := s.trips.Get(ctx, f.TripID)
	if err != nil {
		return nil, err
	}
	if f.LegIndex >= len(trip.Legs) {
		return nil, apperr.Invalid("legIndex", "trip %s has %d legs", trip.TripID, len(trip.Legs))
	}
	if err := rules.ComputeFlightLog(f); err != nil {
		return nil, err
	}
	f.ID = rules.FlightLogID(f.TripID, f.LegIndex)
	return s.logs.Save(ctx, f)
}

func (s *TripService) DeleteFlightLog(ctx context.Context, id string) (*DeleteResult, error) {
	return s.logs.Delete(ctx, id)
}
