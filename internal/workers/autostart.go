package workers

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Autostart starts every enabled client once on boot. Clients are started
// concurrently, at most limit at a time. A client that fails to start is
// logged and left stopped.
type Autostart struct {
	clients ClientStarter
	limit   int

	logger *logger.Logger
}

func NewAutostart(clients ClientStarter, cfg config.Workers, logger *logger.Logger) *Autostart {
	return &Autostart{
		clients: clients,
		limit:   cfg.StartConcurrency,
		logger:  logger,
	}
}

func (a *Autostart) Run(ctx context.Context) {
	ids := a.clients.EnabledClientIDs()

	g, gCtx := errgroup.WithContext(ctx)
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}

	var failed atomic.Int64
	for _, id := range ids {
		g.Go(func() error {
			if gCtx.Err() != nil {
				return nil
			}
			if err := a.clients.Start(gCtx, id); err != nil {
				failed.Add(1)
				a.logger.Err(err).Str(logger.ClientIDField, id).Msg("autostart failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	a.logger.Info().
		Int("enabled", len(ids)).
		Int64("failed", failed.Load()).
		Msg("autostart finished")
}
