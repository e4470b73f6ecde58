package rules

import (
	"sort"
	"time"

	"flightops360/hangar/internal/models/entities"
)

// FirstDeparture parses the departure of the first leg. ok is false when the
// trip has no legs or the first leg carries no parseable departure.
func FirstDeparture(t entities.Trip) (time.Time, bool) {
	if len(t.Legs) == 0 || t.Legs[0].DepartureDateTime == "" {
		return time.Time{}, false
	}
	dep, err := ParseTime(t.Legs[0].DepartureDateTime)
	if err != nil {
		return time.Time{}, false
	}
	return dep, true
}

// IsCurrent reports whether a released trip has already departed.
func IsCurrent(t entities.Trip, now time.Time) bool {
	if t.Status != entities.TripReleased {
		return false
	}
	dep, ok := FirstDeparture(t)
	return ok && dep.Before(now)
}

// IsUpcoming reports whether a scheduled or confirmed trip departs after now.
func IsUpcoming(t entities.Trip, now time.Time) bool {
	if t.Status != entities.TripScheduled && t.Status != entities.TripConfirmed {
		return false
	}
	dep, ok := FirstDeparture(t)
	return ok && dep.After(now)
}

// CurrentTrips filters trips down to the current ones, keeping input order.
func CurrentTrips(trips []entities.Trip, now time.Time) []entities.Trip {
	out := make([]entities.Trip, 0)
	for _, t := range trips {
		if IsCurrent(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingTrips filters trips down to the upcoming ones, soonest first.
func UpcomingTrips(trips []entities.Trip, now time.Time) []entities.Trip {
	type dated struct {
		trip entities.Trip
		dep  time.Time
	}
	matched := make([]dated, 0)
	for _, t := range trips {
		if !IsUpcoming(t, now) {
			continue
		}
		dep, _ := FirstDeparture(t)
		matched = append(matched, dated{trip: t, dep: dep})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].dep.Before(matched[j].dep)
	})
	out := make([]entities.Trip, len(matched))
	for i, m := range matched {
		out[i] = m.trip
	}
	return out
}
