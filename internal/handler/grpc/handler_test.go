package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubClientService struct {
	service.ClientService
	views []models.ClientView
}

func (s *stubClientService) List(context.Context) []models.ClientView {
	return s.views
}

func check(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.Health().Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_HealthLifecycle(t *testing.T) {
	services := &service.Services{ClientService: &stubClientService{
		views: []models.ClientView{{ID: "@a:example.org", Started: true}, {ID: "@b:example.org"}},
	}}
	h := NewHandler(services, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ClientsServiceName))

	h.MarkClientsServing(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ClientsServiceName))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ClientsServiceName))
}

func TestHandler_MarkClientsServing_NilServices(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	assert.NotPanics(t, func() { h.MarkClientsServing(context.Background()) })
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ClientsServiceName))
}

func TestHandler_Register(t *testing.T) {
	server := grpc.NewServer()
	NewHandler(nil, logger.Nop()).Register(server)

	_, ok := server.GetServiceInfo()[healthpb.Health_ServiceDesc.ServiceName]
	assert.True(t, ok)
}
