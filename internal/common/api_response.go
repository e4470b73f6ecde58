package common

import (
	"encoding/json"
	"net/http"
	"time"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/dtos/responses"
)

// RespondSuccess writes data in the success envelope.
func RespondSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	writeJSON(w, statusCode, responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// RespondError writes message in the error envelope. field names the
// offending input for validation failures and is otherwise empty.
func RespondError(w http.ResponseWriter, statusCode int, message, field string) {
	writeJSON(w, statusCode, responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
		Field:     field,
	})
}

func writeJSON[T any](w http.ResponseWriter, code int, body responses.APIResponse[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}
