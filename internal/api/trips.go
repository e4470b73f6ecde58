package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/models/entities"
)

func ListTripsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Trips.ListTrips))
}

// ListCurrentTripsHandler handles GET /api/v1/trips/current.
func ListCurrentTripsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Trips.CurrentTrips))
}

// ListUpcomingTripsHandler handles GET /api/v1/trips/upcoming.
func ListUpcomingTripsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Trips.UpcomingTrips))
}

func GetTripHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Trips.GetTrip)
}

func SaveTripHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Trips.SaveTrip)
}

// DeleteTripHandler removes the trip with its flight logs.
func DeleteTripHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Trips.DeleteTrip)
}

func ListFlightLogsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(func(r *http.Request) ([]entities.FlightLog, error) {
		tripID := chi.URLParam(r, "id")
		if _, err := deps.Services.Trips.GetTrip(r.Context(), tripID); err != nil {
			return nil, err
		}
		return deps.Services.Trips.ListFlightLogs(r.Context(), tripID)
	})
}

// SaveFlightLogHandler handles POST /api/v1/trips/{id}/flight-logs. A log
// already recorded for the same leg is replaced.
func SaveFlightLogHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f entities.FlightLog
		if err := decodeJSON(w, r, &f); err != nil {
			respondWithError(w, r, err)
			return
		}
		tripID := chi.URLParam(r, "id")
		if f.TripID != "" && f.TripID != tripID {
			respondWithError(w, r, apperr.Invalid("tripId", "does not match the trip in the path"))
			return
		}
		f.TripID = tripID
		if err := entities.Validate(&f); err != nil {
			respondWithError(w, r, err)
			return
		}
		saved, err := deps.Services.Trips.SaveFlightLog(r.Context(), &f)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, saved)
	}
}

func DeleteFlightLogHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := deps.Services.Trips.DeleteFlightLog(r.Context(), chi.URLParam(r, "logId"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, res)
	}
}
