package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/handler"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	clients    ClientStopper

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	stopped         chan struct{}

	logger *logger.Logger
}

// NewServer binds the configured listeners. clients is stopped after both
// transports have shut down.
func NewServer(handlers *handler.Handlers, clients ClientStopper, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.GRPCAddress != "" && handlers.GRPC == nil {
		return nil, errNoGRPCHandler
	}

	s := &server{
		clients:         clients,
		shutdownTimeout: defaultShutdownTimeout,
		stopped:         make(chan struct{}),
		logger:          logger,
	}

	var err error
	if s.httpServer, err = newHTTPServer(handlers.HTTP.Init(), cfg, logger); err != nil {
		return nil, err
	}
	if cfg.GRPCAddress != "" {
		if s.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg, logger); err != nil {
			_ = s.httpServer.listener.Close()
			return nil, err
		}
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(s.httpServer.RunServer)
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.RunServer)
	}

	// a stop signal or a failed listener shuts everything down
	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.Shutdown(context.WithoutCancel(ctx))
		case <-s.stopped:
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server shutdown gracefully")

	return err
}

func (s *server) Shutdown(ctx context.Context) {
	s.shutdownOnce.Do(func() {
		defer close(s.stopped)

		ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()

		s.httpServer.Shutdown(ctx)
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}

		if s.clients != nil {
			s.logger.Info().Msg("stopping running clients")
			s.clients.StopAll(ctx)
		}
	})
}
