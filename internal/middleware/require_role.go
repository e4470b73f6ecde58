package middleware

import (
	"net/http"

	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/constants"
)

// RequireRole lets the request through when the caller holds any of roles.
// Admin passes every check. It must run after AuthMiddleware.
func RequireRole(roles ...constants.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized, "")
				return
			}
			for _, role := range roles {
				if claims.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			common.RespondError(w, http.StatusForbidden, constants.MsgForbidden, "")
		})
	}
}
