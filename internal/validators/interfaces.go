// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client payloads before they reach the registry.
//
// A [Validator] receives the value and, optionally, the names of the fields
// to check. With no names it applies the default rule set for the value's
// type. Field names are the Field* constants of this package, so a create
// can demand a homeserver while an update only checks what was sent.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
