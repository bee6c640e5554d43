package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/handler"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/matrix"
	"github.com/MKhiriev/go-bot-keeper/internal/server"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"github.com/MKhiriev/go-bot-keeper/internal/store"
	"github.com/MKhiriev/go-bot-keeper/internal/workers"
	"github.com/MKhiriev/go-bot-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := getBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-bot-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	api := matrix.NewAPI(cfg.Matrix.RequestTimeout, log)
	defer api.Close()

	services, err := service.NewServices(ctx, storages.ClientRepository, api, api, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services.Registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(workers.NewAutostart(services.Registry, cfg.Workers, log)).Run(ctx)
	if handlers.GRPC != nil {
		handlers.GRPC.MarkClientsServing(ctx)
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func getBuildInfo() models.AppBuildInfo {
	info := models.AppBuildInfo{
		BuildVersion: buildVersion,
		BuildDate:    buildDate,
		BuildCommit:  buildCommit,
	}
	if info.BuildVersion == "" {
		info.BuildVersion = "N/A"
	}
	if info.BuildDate == "" {
		info.BuildDate = "N/A"
	}
	if info.BuildCommit == "" {
		info.BuildCommit = "N/A"
	}
	return info
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
