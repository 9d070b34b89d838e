package languages

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/handlers"
	"github.com/JaimeStill/codynn/pkg/pagination"
)

// Domain errors for language operations.
var (
	ErrNotFound   = errors.New("language not found")
	ErrDuplicate  = errors.New("language type already exists")
	ErrValidation = errors.New("invalid language")
	ErrInUse      = errors.New("language is in use")
)

// InUseError reports the first dependent that blocks a delete.
type InUseError struct {
	Kind string
	ID   uuid.UUID
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s: referenced by %s %s", ErrInUse, e.Kind, e.ID)
}

func (e *InUseError) Unwrap() error {
	return ErrInUse
}

// Details implements handlers.Detailer.
func (e *InUseError) Details() map[string]any {
	return map[string]any{
		"blocking": map[string]string{
			"kind": e.Kind,
			"id":   e.ID.String(),
		},
	}
}

var _ handlers.Detailer = (*InUseError)(nil)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrInUse):
		return http.StatusConflict
	case errors.Is(err, ErrValidation), errors.Is(err, pagination.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
