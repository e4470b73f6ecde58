package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/services"
)

// entityPtr is a pointer to a stored entity decoded from a request body.
type entityPtr[T any] interface {
	*T
	SetDocumentID(id string)
}

// listHandler serves a list whose filters come from the request.
func listHandler[T any](list func(r *http.Request) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		respondWithSuccess(w, http.StatusOK, &items)
	}
}

// getHandler serves one record addressed by the {id} path parameter.
func getHandler[T any](get func(ctx context.Context, id string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, item)
	}
}

// saveHandler decodes the body, checks it against the entity's validate
// tags and rules, then saves it. On PUT the {id} path parameter overrides
// any id in the body; POST creates and answers 201. Every declared field is
// written, so a field sent empty is cleared.
func saveHandler[T any, P entityPtr[T]](save func(ctx context.Context, v P) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := P(new(T))
		if err := decodeJSON(w, r, v); err != nil {
			respondWithError(w, r, err)
			return
		}
		status := http.StatusCreated
		if id := chi.URLParam(r, "id"); id != "" {
			v.SetDocumentID(id)
			status = http.StatusOK
		}
		if err := entities.Validate(v); err != nil {
			respondWithError(w, r, err)
			return
		}
		saved, err := save(r.Context(), v)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, status, saved)
	}
}

func deleteHandler(del func(ctx context.Context, id string) (*services.DeleteResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := del(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, res)
	}
}

// byQuery adapts a list method filtered by one optional query parameter.
func byQuery[T any](param string, list func(ctx context.Context, value string) ([]T, error)) func(r *http.Request) ([]T, error) {
	return func(r *http.Request) ([]T, error) {
		return list(r.Context(), r.URL.Query().Get(param))
	}
}

// unfiltered adapts a list method without filters.
func unfiltered[T any](list func(ctx context.Context) ([]T, error)) func(r *http.Request) ([]T, error) {
	return func(r *http.Request) ([]T, error) {
		return list(r.Context())
	}
}
