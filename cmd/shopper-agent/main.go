// The shopping assistant process: seeds the sample catalog on first run
// and serves the catalog/order tools to the hosted voice runtime.
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
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/shop"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

func main() {
	cfg, err := config.Load("SHOPPER")
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
		logger.Error("shopper agent failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	st, err := store.NewFileStore(cfg.DataDir, store.WithLogger(logger))
	if err != nil {
		return err
	}
	if !st.Exists(shop.CatalogCollection) {
		if err := st.SaveCollection(shop.CatalogCollection, shop.DefaultCatalog()); err != nil {
			return err
		}
		logger.Info("catalog seeded", "dir", st.Dir())
	}

	svc := shop.NewService(st, shop.WithLogger(logger))
	return app.Serve(ctx, app.Params{
		Config:  cfg,
		Agent:   shop.ShopperAgent(svc),
		Metrics: agent.NewMetrics("shopper"),
		Logger:  logger,
	})
}
