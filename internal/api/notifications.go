package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/apperr"
)

type markReadRequest struct {
	IsRead *bool `json:"isRead"`
}

type updatedResponse struct {
	Updated int `json:"updated"`
}

type createdResponse struct {
	Created int `json:"created"`
}

// ListNotificationsHandler handles GET /api/v1/notifications. Due reminders
// are generated before the list is read.
func ListNotificationsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Notifications.ListNotifications))
}

func CreateNotificationHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Notifications.Create)
}

// MarkNotificationReadHandler handles PATCH /api/v1/notifications/{id}.
func MarkNotificationReadHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markReadRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		if req.IsRead == nil {
			respondWithError(w, r, apperr.Invalid("isRead", "is required"))
			return
		}
		n, err := deps.Services.Notifications.MarkRead(r.Context(), chi.URLParam(r, "id"), *req.IsRead)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, n)
	}
}

// MarkAllNotificationsReadHandler handles POST /api/v1/notifications/read-all.
func MarkAllNotificationsReadHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := deps.Services.Notifications.MarkAllRead(r.Context())
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &updatedResponse{Updated: n})
	}
}

// GenerateNotificationsHandler handles POST /api/v1/notifications/generate.
func GenerateNotificationsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := deps.Services.Notifications.Generate(r.Context())
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &createdResponse{Created: n})
	}
}

func DeleteNotificationHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Notifications.Delete)
}
