package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-bot-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.Addr()).Msg("launching gRPC server")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING to health clients before draining.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}
