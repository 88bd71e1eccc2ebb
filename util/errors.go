package util

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthorized = errors.New(UNAUTHORIZED_ACCESS)
	ErrForbidden    = errors.New(FORBIDDEN_ACCESS)
	ErrInvalidID    = errors.New(INVALID_ID)
	ErrNotFound     = errors.New(RECORD_NOT_FOUND)
	ErrInvalidInput = errors.New(INVALID_INPUT)
	ErrDuplicate    = errors.New(DUPLICATE_RECORD)
)

// StatusFor maps a service error onto the HTTP status written with the
// failure envelope. Unknown errors are store or processor failures.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
