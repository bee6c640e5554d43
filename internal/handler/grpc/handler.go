package grpc

import (
	"context"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ClientsServiceName is the health service name that reports whether the
// client registry is up. The empty name reports the process as a whole.
const ClientsServiceName = "gobotkeeper.Clients"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The process reports
// SERVING as soon as the handler is registered. The clients service follows
// the registry lifecycle through MarkClientsServing and Shutdown.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with every health status set to
// NOT_SERVING except the overall process status.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(ClientsServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// MarkClientsServing flips the clients service to SERVING. It is called once
// the enabled clients have been started.
func (h *Handler) MarkClientsServing(ctx context.Context) {
	running := 0
	if h.services != nil && h.services.ClientService != nil {
		for _, client := range h.services.ClientService.List(ctx) {
			if client.Started {
				running++
			}
		}
	}

	h.health.SetServingStatus(ClientsServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Int("running", running).Msg("clients service is serving")
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Health returns the underlying health server.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}
