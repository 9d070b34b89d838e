package videos

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// Domain errors for video operations.
var (
	ErrNotFound         = errors.New("video not found")
	ErrValidation       = errors.New("invalid video")
	ErrInvalidReference = errors.New("language does not exist")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// An unknown language is the client's mistake, so it maps to 400.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, pagination.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
