package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bot-keeper/internal/adapter"
	"github.com/MKhiriev/go-bot-keeper/internal/client"
	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("go-bot-keeper-cli")
	log.Debug().
		Str("build_version", orNA(buildVersion)).
		Str("build_date", orNA(buildDate)).
		Str("build_commit", orNA(buildCommit)).
		Send()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	managementAdapter, err := adapter.NewHTTPManagementAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating management adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := client.NewApp(managementAdapter, os.Stdout, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
