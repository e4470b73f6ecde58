package api

import (
	"net/http"
	"strconv"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/models/entities"
)

// ListBulletinsHandler handles GET /api/v1/bulletins[?active=true].
func ListBulletinsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(func(r *http.Request) ([]entities.Bulletin, error) {
		activeOnly := false
		if v := r.URL.Query().Get("active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, apperr.Invalid("active", "must be true or false")
			}
			activeOnly = b
		}
		return deps.Services.Bulletins.ListBulletins(r.Context(), activeOnly)
	})
}

func GetBulletinHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Bulletins.GetBulletin)
}

// SaveBulletinHandler stores a bulletin. Publishing an active bulletin for
// the first time also raises a notification.
func SaveBulletinHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Bulletins.SaveBulletin)
}

func DeleteBulletinHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Bulletins.DeleteBulletin)
}
