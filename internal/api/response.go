package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/providers"
)

const maxJSONBodyBytes = 1 << 20

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	common.RespondSuccess(w, statusCode, data)
}

// respondWithError maps a service error onto its HTTP status and writes the
// error envelope. Unexpected errors are logged and hidden behind a generic
// message.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
		ce *apperr.ConfigurationError
		pe *providers.ProviderError
		se *apperr.StoreError
	)
	switch {
	case errors.As(err, &ve):
		common.RespondError(w, http.StatusBadRequest, ve.Error(), ve.Field)
	case errors.As(err, &nf):
		common.RespondError(w, http.StatusNotFound, nf.Error(), "")
	case errors.As(err, &ce):
		common.RespondError(w, http.StatusServiceUnavailable, ce.Error(), "")
	case errors.As(err, &pe):
		status := http.StatusBadGateway
		if pe.Code == constants.ErrCodeNotConfigured {
			status = http.StatusServiceUnavailable
		}
		logging.Warn("provider call failed", "path", r.URL.Path, "code", pe.Code, "error", err)
		common.RespondError(w, status, constants.GetErrorMessage(pe.Code), "")
	case errors.As(err, &se):
		logging.Error("store operation failed", "path", r.URL.Path, "error", err)
		common.RespondError(w, http.StatusInternalServerError, se.Error(), "")
	default:
		logging.Error("request failed", "path", r.URL.Path, "error", err)
		common.RespondError(w, http.StatusInternalServerError, constants.MsgInternalError, "")
	}
}

// decodeJSON reads a JSON body into v. Malformed input is a ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("body", constants.MsgEmptyBody)
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.Invalid("body", "%s (%d bytes)", constants.MsgBodyTooLarge, maxJSONBodyBytes)
		}
		return apperr.Invalid("body", "%s: %v", constants.MsgInvalidJSON, err)
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be omitted.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return decodeJSON(w, r, v)
}
