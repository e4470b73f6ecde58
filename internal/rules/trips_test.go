package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/models/entities"
)

func tripAt(id string, status entities.TripStatus, dep time.Time) entities.Trip {
	return entities.Trip{
		Base:   entities.Base{ID: id},
		Status: status,
		Legs: []entities.Leg{{
			Origin:            "KTEB",
			Destination:       "KBOS",
			DepartureDateTime: dep.Format(time.RFC3339),
		}},
	}
}

func TestUpcomingTrips_FiltersAndSortsAscending(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	trips := []entities.Trip{
		tripAt("past-scheduled", entities.TripScheduled, now.Add(-day)),
		tripAt("plus2-confirmed", entities.TripConfirmed, now.Add(2*day)),
		tripAt("plus1-completed", entities.TripCompleted, now.Add(day)),
		tripAt("plus1-scheduled", entities.TripScheduled, now.Add(day)),
		tripAt("past-confirmed", entities.TripConfirmed, now.Add(-day)),
		tripAt("plus2-completed", entities.TripCompleted, now.Add(2*day)),
	}

	got := UpcomingTrips(trips, now)

	require.Len(t, got, 2)
	assert.Equal(t, "plus1-scheduled", got[0].ID)
	assert.Equal(t, "plus2-confirmed", got[1].ID)
}

func TestIsCurrent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsCurrent(tripAt("a", entities.TripReleased, now.Add(-time.Hour)), now))
	assert.False(t, IsCurrent(tripAt("b", entities.TripReleased, now.Add(time.Hour)), now))
	assert.False(t, IsCurrent(tripAt("c", entities.TripCompleted, now.Add(-time.Hour)), now))
	assert.False(t, IsCurrent(tripAt("d", entities.TripEnRoute, now.Add(-time.Hour)), now))
	assert.False(t, IsCurrent(entities.Trip{Status: entities.TripReleased}, now), "no legs")
}

func TestFirstDeparture_UnparseableIsIgnored(t *testing.T) {
	trip := entities.Trip{Status: entities.TripScheduled, Legs: []entities.Leg{{DepartureDateTime: "next tuesday"}}}
	_, ok := FirstDeparture(trip)
	assert.False(t, ok)
	assert.False(t, IsUpcoming(trip, time.Now()))
}
