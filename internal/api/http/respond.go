package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/export"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain sentinels to HTTP status codes. Unknown errors
// become a 500 with a generic message so internals do not leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, storage.ErrObjectNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrUnsupportedType):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrNotActive),
		errors.Is(err, domain.ErrDuplicatePlate):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, export.ErrNoRecords):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrBookingFailed):
		// A compensated mid-workflow failure; the message names the step.
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.ErrValidation
	}
	return nil
}
