package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/logger"
)

// ErrorResponse is the error body for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response body", "error", err)
		}
	}
}

// writeError is the single translation point from the domain error
// taxonomy to HTTP status codes. Components never pick status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	if kind, ok := domain.KindOf(err); ok {
		message = err.Error()
		switch kind {
		case domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindUnauthorized:
			status = http.StatusUnauthorized
		case domain.KindForbidden:
			status = http.StatusForbidden
		case domain.KindNotFound:
			status = http.StatusNotFound
		case domain.KindConflict:
			status = http.StatusConflict
		}
	} else {
		logger.Error("unclassified error reached the HTTP boundary", "error", err)
	}

	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidation("invalid JSON request body")
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, domain.NewValidation("invalid id")
	}
	return int32(id), nil
}
