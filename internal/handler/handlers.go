// Package handler builds the transport handlers served by the bot keeper:
// the management HTTP API and the optional gRPC health endpoint.
package handler

import (
	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-bot-keeper/internal/handler/http"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	// GRPC is nil when no gRPC address is configured.
	GRPC *grpc.Handler
}

// NewHandlers creates the management API handler and, when cfg.GRPCAddress
// is set, the health handler. The management API is mandatory.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoManagementAPI
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers, nil
}
