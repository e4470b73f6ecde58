package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/models/entities"
)

func tripDeparting(status entities.TripStatus, departure string) *entities.Trip {
	return &entities.Trip{
		ClientName: "Acme Corp",
		AircraftID: "ac1",
		Status:     status,
		Legs: []entities.Leg{
			{Origin: "KTEB", Destination: "KPBI", DepartureDateTime: departure, LegType: entities.LegCharter},
			{Origin: "KPBI", Destination: "KTEB", LegType: entities.LegCharter},
		},
	}
}

func TestTripService_UpcomingAndCurrent(t *testing.T) {
	s := NewTripService(setupTestStore(t))
	s.now = fixedClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, trip := range []*entities.Trip{
		tripDeparting(entities.TripScheduled, "2024-01-03T10:00:00Z"),
		tripDeparting(entities.TripConfirmed, "2024-01-02T10:00:00Z"),
		tripDeparting(entities.TripScheduled, "2023-12-31T10:00:00Z"),
		tripDeparting(entities.TripCancelled, "2024-01-05T10:00:00Z"),
		tripDeparting(entities.TripReleased, "2024-01-01T08:00:00Z"),
		tripDeparting(entities.TripReleased, "2024-01-01T18:00:00Z"),
	} {
		_, err := s.SaveTrip(ctx, trip)
		require.NoError(t, err)
	}

	upcoming, err := s.UpcomingTrips(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "2024-01-02T10:00:00Z", upcoming[0].Legs[0].DepartureDateTime)
	assert.Equal(t, "2024-01-03T10:00:00Z", upcoming[1].Legs[0].DepartureDateTime)

	current, err := s.CurrentTrips(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "2024-01-01T08:00:00Z", current[0].Legs[0].DepartureDateTime)

	all, err := s.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "2024-01-05T10:00:00Z", all[0].Legs[0].DepartureDateTime)
}

func TestTripService_SaveTripKeepsDisplayCode(t *testing.T) {
	s := NewTripService(setupTestStore(t))
	ctx := context.Background()

	trip, err := s.SaveTrip(ctx, tripDeparting(entities.TripScheduled, "2024-01-03T10:00:00Z"))
	require.NoError(t, err)
	code := trip.TripID
	assert.Regexp(t, `^TRP-[0-9A-F]{8}$`, code)
	assert.NotNil(t, trip.AssignedFlightAttendantIDs)

	trip.TripID = ""
	trip.Status = entities.TripConfirmed
	trip, err = s.SaveTrip(ctx, trip)
	require.NoError(t, err)
	assert.Equal(t, code, trip.TripID)
	assert.Equal(t, entities.TripConfirmed, trip.Status)
}

func TestTripService_SaveTripClearsUnassignedCrew(t *testing.T) {
	s := NewTripService(setupTestStore(t))
	ctx := context.Background()

	trip := tripDeparting(entities.TripScheduled, "2024-01-03T10:00:00Z")
	trip.AssignedPilotID = "crew-1"
	trip.AssignedFlightAttendantIDs = []string{"crew-3"}
	trip.Notes = "catering ordered"
	trip, err := s.SaveTrip(ctx, trip)
	require.NoError(t, err)

	trip.AssignedPilotID = ""
	trip.AssignedFlightAttendantIDs = nil
	trip.Notes = ""
	_, err = s.SaveTrip(ctx, trip)
	require.NoError(t, err)

	stored, err := s.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.AssignedPilotID)
	assert.Empty(t, stored.AssignedFlightAttendantIDs)
	assert.Empty(t, stored.Notes)
}

func TestTripService_FlightLogs(t *testing.T) {
	s := NewTripService(setupTestStore(t))
	ctx := context.Background()

	trip, err := s.SaveTrip(ctx, tripDeparting(entities.TripEnRoute, "2024-01-03T10:00:00Z"))
	require.NoError(t, err)

	second, err := s.SaveFlightLog(ctx, &entities.FlightLog{
		TripID:          trip.ID,
		LegIndex:        1,
		BlockOutTimeUTC: "23:10",
		TakeOffTimeUTC:  "23:25",
		LandingTimeUTC:  "01:40",
		BlockInTimeUTC:  "01:50",
		FuelUnit:        entities.FuelGal,
		StartingFuel:    600,
		FuelUplift:      0,
		EndingFuel:      300,
		Landings:        1,
	})
	require.NoError(t, err)
	assert.Equal(t, trip.ID+"-leg1", second.ID)
	assert.Equal(t, 2.25, second.FlightTimeHours)
	assert.Equal(t, 2.67, second.BlockTimeHours)
	assert.Equal(t, 300.0, second.FuelBurn)
	assert.Equal(t, 2010.0, second.FuelBurnLbs)

	first, err := s.SaveFlightLog(ctx, &entities.FlightLog{
		TripID:          trip.ID,
		LegIndex:        0,
		BlockOutTimeUTC: "10:00",
		TakeOffTimeUTC:  "10:12",
		LandingTimeUTC:  "12:42",
		BlockInTimeUTC:  "12:50",
		FuelUnit:        entities.FuelLbs,
		StartingFuel:    5000,
		FuelUplift:      1000,
		EndingFuel:      2500,
	})
	require.NoError(t, err)
	assert.Equal(t, 3500.0, first.FuelBurnLbs)

	logs, err := s.ListFlightLogs(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 0, logs[0].LegIndex)
	assert.Equal(t, 1, logs[1].LegIndex)

	// Saving the same leg again replaces its log.
	first.EndingFuel = 3000
	_, err = s.SaveFlightLog(ctx, first)
	require.NoError(t, err)
	logs, err = s.ListFlightLogs(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 3000.0, logs[0].FuelBurnLbs)
}

func TestTripService_FlightLogValidation(t *testing.T) {
	s := NewTripService(setupTestStore(t))
	ctx := context.Background()

	trip, err := s.SaveTrip(ctx, tripDeparting(entities.TripEnRoute, "2024-01-03T10:00:00Z"))
	require.NoError(t, err)

	log := &entities.FlightLog{
		TripID:          trip.ID,
		LegIndex:        2,
		BlockOutTimeUTC: "10:00",
		TakeOffTimeUTC:  "10:10",
		LandingTimeUTC:  "11:00",
		BlockInTimeUTC:  "11:05",
	}
	_, err = s.SaveFlightLog(ctx, log)
	assert.True(t, apperr.IsValidation(err), "leg index past the last leg")

	log.LegIndex = 0
	log.StartingFuel = 100
	log.EndingFuel = 200
	_, err = s.SaveFlightLog(ctx, log)
	assert.True(t, apperr.IsValidation(err), "negative burn")

	log.TripID = "missing"
	_, err = s.SaveFlightLog(ctx, log)
	assert.True(t, apperr.IsNotFound(err))
}

func TestTripService_DeleteTripCascadesLogs(t *testing.T) {
	s := NewTripService(setupTestStore(t))
	ctx := context.Background()

	trip, err := s.SaveTrip(ctx, tripDeparting(entities.TripCompleted, "2024-01-03T10:00:00Z"))
	require.NoError(t, err)
	_, err = s.SaveFlightLog(ctx, &entities.FlightLog{
		TripID:          trip.ID,
		BlockOutTimeUTC: "10:00",
		TakeOffTimeUTC:  "10:10",
		LandingTimeUTC:  "11:00",
		BlockInTimeUTC:  "11:05",
	})
	require.NoError(t, err)

	res, err := s.DeleteTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, res.ID)

	logs, err := s.ListFlightLogs(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
