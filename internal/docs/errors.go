package docs

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// Domain errors for documentation operations.
var (
	ErrNotFound   = errors.New("documentation not found")
	ErrDuplicate  = errors.New("documentation title already exists")
	ErrValidation = errors.New("invalid documentation")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrValidation), errors.Is(err, pagination.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
