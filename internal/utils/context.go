// Package utils provides general-purpose helpers shared across the
// application: context keys, HTTP response and request helpers, the resty
// client wrapper, JWT generation and validation, and trace ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys that prevents collisions
// with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// AdminLoginCtxKey stores the login of the authenticated operator.
//
//	ctx := context.WithValue(ctx, utils.AdminLoginCtxKey, "admin")
var AdminLoginCtxKey = contextKey("adminLogin")

// GetAdminLoginFromContext returns the authenticated operator login.
// ok is false when the value is missing, empty or of an unexpected type.
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok && login != ""
}
