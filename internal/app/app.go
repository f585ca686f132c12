// Package app runs one agent process: the tool bridge the hosted runtime
// connects to, plus an optional metrics endpoint.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bytebandit-011/Day-two-onwards-murf/internal/config"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/bridge"
)

// Params bundles everything Serve needs.
type Params struct {
	Config  config.Config
	Agent   *agent.Agent
	Metrics *agent.Metrics
	Logger  *slog.Logger
}

// Serve runs the bridge (and metrics server, if configured) until ctx is
// cancelled, then shuts both down gracefully.
func Serve(ctx context.Context, p Params) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dispatcher := agent.NewDispatcher(p.Agent,
		agent.WithLogger(logger),
		agent.WithMetrics(p.Metrics),
	)
	bridgeSrv := bridge.NewServer(dispatcher,
		bridge.WithLogger(logger),
		bridge.WithMetrics(p.Metrics),
		bridge.WithTimeouts(p.Config.ReadTimeout, p.Config.WriteTimeout),
	)

	mux := http.NewServeMux()
	mux.Handle("/session", bridgeSrv)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:              p.Config.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("bridge listening", "agent", p.Agent.Name, "addr", p.Config.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var metricsSrv *http.Server
	if p.Config.MetricsAddr != "" && p.Metrics != nil {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", p.Metrics.Handler())
		metricsSrv = &http.Server{
			Addr:              p.Config.MetricsAddr,
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("metrics listening", "addr", p.Config.MetricsAddr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		// One server failed; take the sibling down too.
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	if err := server.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
