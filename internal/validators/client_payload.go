package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-bot-keeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldHomeserver checks the homeserver when it is present.
	FieldHomeserver = "homeserver"

	// FieldHomeserverRequired additionally requires the homeserver.
	FieldHomeserverRequired = "homeserver required"

	// FieldAccessToken checks the access token when it is present.
	FieldAccessToken = "access_token"

	// FieldAccessTokenRequired additionally requires the access token.
	FieldAccessTokenRequired = "access_token required"

	FieldDisplayName = "displayname"
	FieldAvatarURL   = "avatar_url"
)

const mxcScheme = "mxc://"

type ClientPayloadValidator struct {
}

func NewClientPayloadValidator() Validator {
	return &ClientPayloadValidator{}
}

func (v *ClientPayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientPayload:
		return v.validateClientPayload(ctx, value, fields...)
	case *models.ClientPayload:
		return v.validateClientPayload(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ClientPayloadValidator) validateClientPayload(ctx context.Context, payload models.ClientPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHomeserver, FieldAccessToken, FieldDisplayName, FieldAvatarURL}
	}

	for _, f := range fields {
		switch f {
		case FieldHomeserver:
			if payload.Homeserver != nil {
				if err := validateHomeserver(*payload.Homeserver); err != nil {
					return err
				}
			}
		case FieldHomeserverRequired:
			if payload.Homeserver == nil {
				return ErrEmptyHomeserver
			}
			if err := validateHomeserver(*payload.Homeserver); err != nil {
				return err
			}
		case FieldAccessToken:
			if payload.AccessToken != nil && strings.TrimSpace(*payload.AccessToken) == "" {
				return ErrEmptyAccessToken
			}
		case FieldAccessTokenRequired:
			if payload.AccessToken == nil || strings.TrimSpace(*payload.AccessToken) == "" {
				return ErrEmptyAccessToken
			}
		case FieldDisplayName:
			if payload.DisplayName != nil && strings.ContainsFunc(*payload.DisplayName, unicode.IsControl) {
				return ErrInvalidName
			}
		case FieldAvatarURL:
			if payload.AvatarURL != nil && *payload.AvatarURL != "" && !strings.HasPrefix(*payload.AvatarURL, mxcScheme) {
				return ErrInvalidAvatarURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateHomeserver(homeserver string) error {
	if strings.TrimSpace(homeserver) == "" {
		return ErrEmptyHomeserver
	}

	u, err := url.Parse(homeserver)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidHomeserver
	}

	return nil
}
