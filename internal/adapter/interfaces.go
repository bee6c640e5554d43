// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the management CLI's view of the bot keeper
// server.
//
// The primary abstraction is [ManagementAdapter], which hides the HTTP
// transport from the CLI commands. Non-2xx responses are mapped by
// mapHTTPError to the sentinel errors in errors.go, wrapped in an [*APIError]
// that keeps the server's errcode and message, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409) or [errors.As] for details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bot-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ManagementAdapter talks to the management API of a bot keeper server.
type ManagementAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Login exchanges admin credentials for a bearer token and stores it.
	Login(ctx context.Context, admin models.Admin) (string, error)

	// Version returns the server build version. It needs no token.
	Version(ctx context.Context) (string, error)

	// ListClients returns every registered client.
	ListClients(ctx context.Context) ([]models.ClientView, error)

	// GetClient returns the client registered as id.
	GetClient(ctx context.Context, id string) (models.ClientView, error)

	// CreateClient registers a new client. The server assigns the identity.
	CreateClient(ctx context.Context, payload models.ClientPayload) (models.ClientView, error)

	// UpdateClient applies payload to the client registered as id.
	UpdateClient(ctx context.Context, id string, payload models.ClientPayload) (models.ClientView, error)

	// DeleteClient removes the client registered as id.
	DeleteClient(ctx context.Context, id string) error
}
