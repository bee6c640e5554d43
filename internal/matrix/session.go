package matrix

import (
	"context"
	"sync/atomic"
)

// session is the Connection handed to a running client. It reuses the
// API's connection pool and only carries the client's credentials.
type session struct {
	api        *API
	homeserver string
	token      string
	userID     string
	closed     atomic.Bool
}

func (s *session) UserID() string {
	return s.userID
}

func (s *session) SetDisplayName(ctx context.Context, displayName string) error {
	if s.closed.Load() {
		return ErrConnectionClosed
	}
	return s.api.SetDisplayName(ctx, s.homeserver, s.token, s.userID, displayName)
}

func (s *session) SetAvatarURL(ctx context.Context, avatarURL string) error {
	if s.closed.Load() {
		return ErrConnectionClosed
	}
	return s.api.SetAvatarURL(ctx, s.homeserver, s.token, s.userID, avatarURL)
}

func (s *session) Close() error {
	s.closed.Store(true)
	return nil
}
