package api

import (
	"net/http"

	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/services"
)

type workOrderRequest struct {
	AircraftID string   `json:"aircraftId" validate:"required"`
	TaskIDs    []string `json:"taskIds"`
}

type quoteEmailRequest struct {
	QuoteID string `json:"quoteId" validate:"required"`
}

type performanceRequest struct {
	AircraftModel string `json:"aircraftModel"`
}

type generatedText struct {
	Text string `json:"text"`
}

// GenerateWorkOrderHandler handles POST /api/v1/generate/work-order.
func GenerateWorkOrderHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req workOrderRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		if err := entities.Validate(&req); err != nil {
			respondWithError(w, r, err)
			return
		}
		text, err := deps.Services.Generation.WorkOrder(r.Context(), req.AircraftID, req.TaskIDs)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &generatedText{Text: text})
	}
}

// GenerateQuoteEmailHandler handles POST /api/v1/generate/quote-email. The
// draft is returned, not sent.
func GenerateQuoteEmailHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteEmailRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		if err := entities.Validate(&req); err != nil {
			respondWithError(w, r, err)
			return
		}
		q, err := deps.Services.Quotes.GetQuote(r.Context(), req.QuoteID)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		text, err := deps.Services.Generation.QuoteEmail(r.Context(), q)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &generatedText{Text: text})
	}
}

// EstimateFlightTimeHandler handles POST /api/v1/generate/flight-time.
func EstimateFlightTimeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.FlightTimeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		est, err := deps.Services.Generation.EstimateFlightTime(r.Context(), req)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, est)
	}
}

// SuggestPerformanceHandler handles POST /api/v1/generate/performance. The
// suggestion is not stored.
func SuggestPerformanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req performanceRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		perf, err := deps.Services.Generation.SuggestPerformance(r.Context(), req.AircraftModel)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, perf)
	}
}
