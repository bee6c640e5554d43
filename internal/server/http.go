package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

// newHTTPServer binds cfg.HTTPAddress right away so that address errors are
// reported at startup. A positive RequestTimeout bounds both header reads
// and handler contexts.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.HTTPAddress, err)
	}

	if cfg.RequestTimeout > 0 {
		router = middleware.Timeout(cfg.RequestTimeout)(router)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.Addr()).Msg("launching HTTP server")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) {
	h.logger.Info().Msg("HTTP server shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown")
	}
}

// Addr returns the bound listener address.
func (h *httpServer) Addr() string {
	return h.listener.Addr().String()
}
