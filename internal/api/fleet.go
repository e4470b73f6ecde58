package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/services"
)

func ListAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Fleet.ListAircraft))
}

func GetAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Fleet.GetAircraft)
}

func SaveAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Fleet.SaveAircraft)
}

// DeleteAircraftHandler handles DELETE /api/v1/fleet/{id}. The rate,
// performance data and component times of the aircraft go with it.
func DeleteAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Fleet.DeleteAircraft)
}

func ListRatesHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Fleet.ListRates))
}

// GetRateHandler handles GET /api/v1/fleet/{id}/rate. An aircraft without a
// rate answers 404.
func GetRateHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rate, err := deps.Services.Fleet.GetRate(r.Context(), id)
		if err == nil && rate == nil {
			err = &apperr.NotFoundError{Resource: "aircraft rate", ID: id}
		}
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, rate)
	}
}

// aircraftScoped decodes a document keyed by the aircraft id in the path.
func aircraftScoped[T any, P entityPtr[T]](save func(r *http.Request, aircraftID string, v P) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraftID := chi.URLParam(r, "id")
		v := P(new(T))
		if err := decodeJSON(w, r, v); err != nil {
			respondWithError(w, r, err)
			return
		}
		v.SetDocumentID(aircraftID)
		if err := entities.Validate(v); err != nil {
			respondWithError(w, r, err)
			return
		}
		saved, err := save(r, aircraftID, v)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, saved)
	}
}

func SaveRateHandler(deps *Dependencies) http.HandlerFunc {
	return aircraftScoped(func(r *http.Request, aircraftID string, v *entities.AircraftRate) (*entities.AircraftRate, error) {
		return deps.Services.Fleet.SaveRate(r.Context(), aircraftID, v)
	})
}

func DeleteRateHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Fleet.DeleteRate)
}

// GetPerformanceHandler answers null data when nothing was recorded yet.
func GetPerformanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		perf, err := deps.Services.Fleet.GetPerformance(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, perf)
	}
}

func SavePerformanceHandler(deps *Dependencies) http.HandlerFunc {
	return aircraftScoped(func(r *http.Request, aircraftID string, v *entities.AircraftPerformanceData) (*entities.AircraftPerformanceData, error) {
		return deps.Services.Fleet.SavePerformance(r.Context(), aircraftID, v)
	})
}

func GetComponentTimesHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Fleet.GetComponentTimes)
}

func SaveComponentTimesHandler(deps *Dependencies) http.HandlerFunc {
	return aircraftScoped(func(r *http.Request, aircraftID string, v *entities.ComponentTimes) (*entities.ComponentTimes, error) {
		return deps.Services.Fleet.SaveComponentTimes(r.Context(), aircraftID, v)
	})
}

// Aircraft documents

func ListAircraftDocumentsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(func(r *http.Request) ([]entities.AircraftDocument, error) {
		return deps.Services.Documents.ListDocuments(r.Context(), chi.URLParam(r, "id"))
	})
}

func GetAircraftDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Documents.GetDocument)
}

func SaveAircraftDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Documents.SaveDocument)
}

func DeleteAircraftDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Documents.DeleteDocument)
}

// UploadAircraftDocumentHandler handles POST /api/v1/fleet/{id}/documents as
// multipart/form-data: the file in "file", the record fields as form values.
func UploadAircraftDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadBytes+maxJSONBodyBytes)
		if err := r.ParseMultipartForm(maxJSONBodyBytes); err != nil {
			respondWithError(w, r, apperr.Invalid("file", "invalid multipart upload: %v", err))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, r, apperr.Invalid("file", "is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			respondWithError(w, r, apperr.Invalid("file", "could not be read: %v", err))
			return
		}

		doc, err := deps.Services.Documents.Upload(r.Context(), services.UploadRequest{
			Document: entities.AircraftDocument{
				AircraftID:   chi.URLParam(r, "id"),
				DocumentName: r.FormValue("documentName"),
				DocumentType: r.FormValue("documentType"),
				IssueDate:    r.FormValue("issueDate"),
				ExpiryDate:   r.FormValue("expiryDate"),
				Notes:        r.FormValue("notes"),
			},
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, doc)
	}
}
