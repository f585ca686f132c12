// Package config loads agent process configuration from the environment,
// with an optional .env.local file layered underneath.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is one agent process's settings. Variables are prefixed per
// agent, e.g. SHOPPER_DATA_DIR.
type Config struct {
	DataDir      string        `envconfig:"DATA_DIR" default:"DB"`
	ListenAddr   string        `envconfig:"LISTEN_ADDR" default:":8090"`
	MetricsAddr  string        `envconfig:"METRICS_ADDR" default:""`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5m"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env.local (if present) and then the prefixed environment.
func Load(prefix string) (Config, error) {
	// Missing .env.local is fine; real env vars win either way.
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config (prefix %s): %w", prefix, err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
