package jobroles

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

var (
	ErrNotFound   = errors.New("job role not found")
	ErrDuplicate  = errors.New("job role name already exists")
	ErrValidation = errors.New("invalid job role")
	ErrInUse      = errors.New("job role is in use")
)

// InUseError names the interview question that blocks a delete.
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

func (e *InUseError) Details() map[string]any {
	return map[string]any{
		"blocking": map[string]string{
			"kind": e.Kind,
			"id":   e.ID.String(),
		},
	}
}

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
