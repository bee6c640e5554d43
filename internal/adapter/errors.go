package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a failed management API call. It unwraps to the sentinel
// matching the HTTP status.
type APIError struct {
	Status  int
	ErrCode string
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.ErrCode == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.kind, e.ErrCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
