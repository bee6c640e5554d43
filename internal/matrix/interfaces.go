// Package matrix talks to Matrix homeservers over the Client-Server API.
//
// It provides the remote identity check used before a client is registered
// or its credentials change ([Verifier]), and the per-client [Connection]
// that a running client owns ([Connector]). Both are implemented by [API],
// which shares one resty connection pool across homeservers.
package matrix

import (
	"context"

	"github.com/MKhiriev/go-bot-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/matrix_mock.go -package=mock

// Verifier resolves the identity an access token belongs to.
type Verifier interface {
	// Verify asks homeserver who owns token and returns the user ID.
	// Failures wrap ErrInvalidCredential or ErrEndpointUnreachable.
	Verify(ctx context.Context, homeserver, token string) (string, error)
}

// Connector opens authenticated connections for stored clients.
type Connector interface {
	// Connect checks the client's credentials and returns a live connection.
	// The token must belong to client.ID, otherwise ErrUserIDMismatch is
	// returned.
	Connect(ctx context.Context, client models.Client) (Connection, error)
}

// Connection is an authenticated session owned by exactly one running client.
type Connection interface {
	// UserID returns the identity the connection is authenticated as.
	UserID() string
	// SetDisplayName updates the profile display name of the user.
	SetDisplayName(ctx context.Context, displayName string) error
	// SetAvatarURL updates the profile avatar of the user.
	SetAvatarURL(ctx context.Context, avatarURL string) error
	// Close releases the connection. Closing twice is a no-op.
	Close() error
}
