// The improv game host process: one game session per process run, with
// the session summary archived to the data directory at game end.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bytebandit-011/Day-two-onwards-murf/internal/app"
	"github.com/Bytebandit-011/Day-two-onwards-murf/internal/config"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/improv"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

func main() {
	cfg, err := config.Load("IMPROV")
	if err != nil {
		slog.Error("config failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("improv agent failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	st, err := store.NewFileStore(cfg.DataDir, store.WithLogger(logger))
	if err != nil {
		return err
	}

	game := improv.NewGame(improv.WithLogger(logger))
	return app.Serve(ctx, app.Params{
		Config:  cfg,
		Agent:   improv.HostAgent(game, st),
		Metrics: agent.NewMetrics("improv"),
		Logger:  logger,
	})
}
