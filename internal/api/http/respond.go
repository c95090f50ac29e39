package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/logger"
)

// response is the envelope every endpoint returns: expected business
// failures surface as success=false with a message, never as a fault.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Message: message, Data: data})
}

// writeError maps the error taxonomy onto HTTP statuses: policy
// violations are conflicts, missing entities are 404s, anything else is
// a storage fault the caller cannot fix.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsPolicy(err):
		writeJSON(w, http.StatusConflict, response{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, response{Success: false, Message: "not found"})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal error"})
	}
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
