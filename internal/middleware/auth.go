package middleware

import (
	"net/http"
	"strings"

	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
)

// AuthMiddleware requires a valid bearer token and stores its claims in the
// request context.
func AuthMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, http.StatusUnauthorized, constants.MsgMissingToken, "")
				return
			}

			claims, err := tokens.Verify(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
			if err != nil {
				logging.Debug("rejected bearer token", "request_id", RequestIDFromContext(r.Context()), "error", err)
				common.RespondError(w, http.StatusUnauthorized, constants.MsgInvalidToken, "")
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
