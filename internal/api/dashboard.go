package api

import "net/http"

// DashboardHandler handles GET /api/v1/dashboard
func DashboardHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := deps.Services.Dashboard.Summary(r.Context())
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, sum)
	}
}
