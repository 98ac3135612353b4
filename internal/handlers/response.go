package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/pagination"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/store"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, ErrorResponse{Error: message}, logger)
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// writeServiceError maps errors returned by the services to status codes
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, pagination.ErrInvalidLimit), errors.Is(err, pagination.ErrInvalidOffset):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "Validation failed", Details: []string{err.Error()}}, logger)
	case errors.Is(err, store.ErrNotConnected):
		WriteError(w, http.StatusServiceUnavailable, "Store unavailable", logger)
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
