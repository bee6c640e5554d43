// Package store persists client records in a SQL database.
//
// The backend is selected from the DSN: PostgreSQL through pgx for
// "postgres://" and "postgresql://" URLs, a SQLite file otherwise. Queries
// are built with squirrel using the placeholder format of the backend, and
// the schema is applied with goose on connect.
package store

import (
	"context"

	"github.com/MKhiriev/go-bot-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientRepository is the durable store of client records, keyed by the
// Matrix user ID.
type ClientRepository interface {
	// ListClients returns every stored record ordered by ID.
	ListClients(ctx context.Context) ([]models.Client, error)
	// GetClient returns the record with the given ID or ErrClientNotFound.
	GetClient(ctx context.Context, id string) (models.Client, error)
	// CreateClient inserts a new record. ErrClientAlreadyExists is returned
	// when the ID is taken.
	CreateClient(ctx context.Context, client models.Client) error
	// UpdateClient overwrites every mutable column of an existing record.
	// ErrClientNotFound is returned when no row matches client.ID.
	UpdateClient(ctx context.Context, client models.Client) error
	// DeleteClient removes the record or returns ErrClientNotFound.
	DeleteClient(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
