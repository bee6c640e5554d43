package server

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/handler"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "9.9.9" }

type countingStopper struct {
	calls atomic.Int32
}

func (c *countingStopper) StopAll(context.Context) {
	c.calls.Add(1)
}

func newTestServer(t *testing.T, cfg config.Server) (*server, *countingStopper) {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: stubAppInfo{}}, cfg, logger.Nop())
	require.NoError(t, err)

	stopper := &countingStopper{}
	s, err := NewServer(handlers, stopper, cfg, logger.Nop())
	require.NoError(t, err)

	return s.(*server), stopper
}

func TestNewServer_Errors(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}

	_, err := NewServer(nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	_, err = NewServer(handlers, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoGRPCHandler)
}

func TestNewServer_BadAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "256.0.0.1:bad"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, nil, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunServeAndStop(t *testing.T) {
	s, stopper := newTestServer(t, config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	resp, err := http.Get("http://" + s.httpServer.Addr() + "/api/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", string(body))

	conn, err := grpc.NewClient(s.gRPCServer.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.EqualValues(t, 1, stopper.calls.Load())
}

func TestServer_ShutdownUnblocksRun(t *testing.T) {
	s, stopper := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})

	done := make(chan error, 1)
	go func() { done <- s.RunServer(context.Background()) }()

	s.Shutdown(context.Background())
	s.Shutdown(context.Background())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.EqualValues(t, 1, stopper.calls.Load())
}
