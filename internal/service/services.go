package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/matrix"
	"github.com/MKhiriev/go-bot-keeper/internal/store"
)

type Services struct {
	ClientService  ClientService
	AuthService    AuthService
	AppInfoService AppInfoService

	// Registry is the unwrapped client registry used by workers and
	// shutdown code.
	Registry *ClientRegistry
}

func NewServices(ctx context.Context, repo store.ClientRepository, verifier matrix.Verifier, connector matrix.Connector,
	cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	registry, err := NewClientRegistry(ctx, repo, verifier, connector, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating client registry: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ClientService:  NewClientValidationService().Wrap(registry),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
		Registry:       registry,
	}, nil
}
