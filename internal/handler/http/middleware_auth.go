package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the admin login in the
// request context under [utils.AdminLoginCtxKey].
//
// Missing, malformed, expired or foreign tokens are rejected with HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.AdminLoginCtxKey, token.Login)

		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("admin", token.Login)
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
