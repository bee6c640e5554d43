// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of go-bot-keeper.
//
// The centre of the package is [ClientRegistry]: the single owner of the
// identity to [LiveClient] index. It verifies credentials against the
// homeserver before a client is registered or re-pointed, serializes
// mutations per identity and refuses to delete clients that other
// subsystems still reference through the [ReferenceTracker].
package service

import (
	"context"

	"github.com/MKhiriev/go-bot-keeper/models"
)

// ClientService is the management surface over registered clients.
type ClientService interface {
	// List returns views of every known client ordered by identity.
	List(ctx context.Context) []models.ClientView
	// View returns the client with the given identity or ErrClientNotFound.
	View(ctx context.Context, id string) (models.ClientView, error)
	// Create verifies the payload credentials and registers a new client
	// under the identity they authenticate as.
	Create(ctx context.Context, payload models.ClientPayload) (models.ClientView, error)
	// Update applies a sparse payload to an existing client.
	Update(ctx context.Context, id string, payload models.ClientPayload) (models.ClientView, error)
	// Delete stops and removes a client that nothing references.
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, admin models.Admin) error
	CreateToken(ctx context.Context, login string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientServiceWrapper defines middleware composition for ClientService.
// Implementations wrap an existing ClientService to add behavior such as
// validation.
type ClientServiceWrapper interface {
	Wrap(ClientService) ClientService
}
