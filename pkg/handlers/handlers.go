// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Request body errors returned by DecodeJSON.
var (
	ErrInvalidBody  = errors.New("invalid request body")
	ErrBodyTooLarge = errors.New("request body too large")
)

// Detailer is implemented by errors that carry structured context for the client.
type Detailer interface {
	Details() map[string]any
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<message>"} plus any details the error carries.
// Server errors are logged in full but reported to the client with a generic message.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	body := map[string]any{}

	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
		body["error"] = http.StatusText(http.StatusInternalServerError)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
		body["error"] = err.Error()

		var d Detailer
		if errors.As(err, &d) {
			for k, v := range d.Details() {
				body[k] = v
			}
		}
	}

	RespondJSON(w, status, body)
}

// DecodeJSON reads a JSON request body into v.
// Unknown fields are ignored so only declared fields ever reach a command.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// DecodeStatus maps a DecodeJSON error to its HTTP status.
func DecodeStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
