package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/services"
)

func ListQuotesHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Quotes.ListQuotes))
}

func GetQuoteHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Quotes.GetQuote)
}

// SaveQuoteHandler stores a quote. Totals in the body are ignored and
// recomputed from the line items.
func SaveQuoteHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Quotes.SaveQuote)
}

func DeleteQuoteHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Quotes.DeleteQuote)
}

// PriceQuoteHandler handles POST /api/v1/quotes/price. It prices a draft
// against the current rates and fees without storing it.
func PriceQuoteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q entities.Quote
		if err := decodeJSON(w, r, &q); err != nil {
			respondWithError(w, r, err)
			return
		}
		priced, err := deps.Services.Quotes.PriceDraft(r.Context(), &q)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, priced)
	}
}

// SendQuoteHandler handles POST /api/v1/quotes/{id}/send. The body is
// optional.
func SendQuoteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.SendQuoteRequest
		if err := decodeOptionalJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		q, err := deps.Services.Quotes.SendQuote(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, q)
	}
}

// BookQuoteHandler handles POST /api/v1/quotes/{id}/book and answers the
// booked quote with its new trip.
func BookQuoteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := deps.Services.Quotes.BookQuote(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, res)
	}
}
