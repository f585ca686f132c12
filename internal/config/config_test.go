package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("TESTAGENT")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "DB" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "DB")
	}
	if cfg.ListenAddr != ":8090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8090")
	}
	if cfg.ReadTimeout != 5*time.Minute {
		t.Errorf("ReadTimeout = %v, want 5m", cfg.ReadTimeout)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
}

func TestLoadPrefixedEnv(t *testing.T) {
	t.Setenv("TESTAGENT_DATA_DIR", "/tmp/agents")
	t.Setenv("TESTAGENT_LOG_LEVEL", "debug")
	t.Setenv("TESTAGENT_WRITE_TIMEOUT", "2s")

	cfg, err := Load("TESTAGENT")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/agents" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/agents")
	}
	if cfg.WriteTimeout != 2*time.Second {
		t.Errorf("WriteTimeout = %v, want 2s", cfg.WriteTimeout)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
