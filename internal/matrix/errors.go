package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential means the homeserver rejected the access token.
	ErrInvalidCredential = errors.New("invalid access token")
	// ErrEndpointUnreachable covers malformed homeserver URLs, transport
	// failures, unexpected statuses and unparsable responses.
	ErrEndpointUnreachable = errors.New("homeserver unreachable")
	// ErrUserIDMismatch means the token belongs to a different user than the
	// one the connection was opened for.
	ErrUserIDMismatch = errors.New("access token belongs to a different user")
	// ErrConnectionClosed is returned by calls on a closed Connection.
	ErrConnectionClosed = errors.New("connection closed")
)

// Standard Matrix error codes the package reacts to.
const (
	ErrCodeUnknownToken = "M_UNKNOWN_TOKEN"
	ErrCodeMissingToken = "M_MISSING_TOKEN"
	ErrCodeForbidden    = "M_FORBIDDEN"
	ErrCodeNotFound     = "M_NOT_FOUND"
)

// Error is the standard error body returned by a homeserver. Callers can
// extract it with errors.As.
type Error struct {
	Code       string `json:"errcode"`
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("matrix: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// IsErrorCode reports whether err wraps an *Error with the given errcode.
func IsErrorCode(err error, code string) bool {
	var matrixErr *Error
	if errors.As(err, &matrixErr) {
		return matrixErr.Code == code
	}
	return false
}
