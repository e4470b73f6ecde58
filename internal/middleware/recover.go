package middleware

import (
	"net/http"
	"runtime/debug"

	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
)

// Recoverer turns a handler panic into a logged 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.Error("handler panic",
					"request_id", RequestIDFromContext(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				common.RespondError(w, http.StatusInternalServerError, constants.MsgInternalError, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
