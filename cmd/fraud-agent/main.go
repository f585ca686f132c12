// The fraud alert agent process: seeds sample fraud cases on first run
// and serves the case verification tools to the hosted voice runtime.
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
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/fraud"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

func main() {
	cfg, err := config.Load("FRAUD")
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
		logger.Error("fraud agent failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	st, err := store.NewFileStore(cfg.DataDir, store.WithLogger(logger))
	if err != nil {
		return err
	}
	if !st.Exists(fraud.CasesCollection) {
		if err := st.SaveCollection(fraud.CasesCollection, fraud.DefaultCases()); err != nil {
			return err
		}
		logger.Info("fraud cases seeded", "dir", st.Dir())
	}

	svc := fraud.NewService(st, fraud.WithLogger(logger))
	return app.Serve(ctx, app.Params{
		Config:  cfg,
		Agent:   fraud.Agent(svc),
		Metrics: agent.NewMetrics("fraud"),
		Logger:  logger,
	})
}
