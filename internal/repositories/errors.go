package repositories

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

var (
	ErrNotFound         = errors.New("repository not found")
	ErrValidation       = errors.New("invalid repository")
	ErrInvalidReference = errors.New("language does not exist")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
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
