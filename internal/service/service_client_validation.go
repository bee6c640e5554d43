package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/validators"
	"github.com/MKhiriev/go-bot-keeper/models"
)

// ClientValidationService checks payloads before they reach the wrapped
// ClientService.
//
// Malformed access details are rejected with the same kinds the verifier
// produces: ErrBadAccessDetails for the homeserver, ErrBadAccessToken for
// the token. Malformed profile fields are dropped from the payload and the
// rest of it is applied.
type ClientValidationService struct {
	inner     ClientService
	validator validators.Validator
}

func NewClientValidationService() ClientServiceWrapper {
	return &ClientValidationService{
		validator: validators.NewClientPayloadValidator(),
	}
}

func (v *ClientValidationService) List(ctx context.Context) []models.ClientView {
	return v.inner.List(ctx)
}

func (v *ClientValidationService) View(ctx context.Context, id string) (models.ClientView, error) {
	return v.inner.View(ctx, id)
}

func (v *ClientValidationService) Create(ctx context.Context, payload models.ClientPayload) (models.ClientView, error) {
	err := v.checkAccessDetails(ctx, payload,
		validators.FieldHomeserverRequired,
		validators.FieldAccessTokenRequired,
	)
	if err != nil {
		return models.ClientView{}, err
	}

	return v.inner.Create(ctx, v.dropInvalidProfile(ctx, payload))
}

func (v *ClientValidationService) Update(ctx context.Context, id string, payload models.ClientPayload) (models.ClientView, error) {
	err := v.checkAccessDetails(ctx, payload,
		validators.FieldHomeserver,
		validators.FieldAccessToken,
	)
	if err != nil {
		return models.ClientView{}, err
	}

	return v.inner.Update(ctx, id, v.dropInvalidProfile(ctx, payload))
}

func (v *ClientValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *ClientValidationService) Wrap(wrapped ClientService) ClientService {
	v.inner = wrapped
	return v
}

func (v *ClientValidationService) checkAccessDetails(ctx context.Context, payload models.ClientPayload, fields ...string) error {
	err := v.validator.Validate(ctx, payload, fields...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrEmptyAccessToken):
		return fmt.Errorf("%w: %w", ErrBadAccessToken, err)
	case errors.Is(err, validators.ErrEmptyHomeserver), errors.Is(err, validators.ErrInvalidHomeserver):
		return fmt.Errorf("%w: %w", ErrBadAccessDetails, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
}

// dropInvalidProfile clears the profile fields the validator rejects.
func (v *ClientValidationService) dropInvalidProfile(ctx context.Context, payload models.ClientPayload) models.ClientPayload {
	log := logger.FromContext(ctx)

	if payload.DisplayName != nil {
		if err := v.validator.Validate(ctx, payload, validators.FieldDisplayName); err != nil {
			log.Warn().Err(err).Msg("displayname ignored")
			payload.DisplayName = nil
		}
	}
	if payload.AvatarURL != nil {
		if err := v.validator.Validate(ctx, payload, validators.FieldAvatarURL); err != nil {
			log.Warn().Err(err).Str("avatar_url", *payload.AvatarURL).Msg("avatar_url ignored")
			payload.AvatarURL = nil
		}
	}

	return payload
}
