package questions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

var (
	ErrNotFound         = errors.New("interview question not found")
	ErrValidation       = errors.New("invalid interview question")
	ErrInvalidReference = errors.New("job role does not exist")
)

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
