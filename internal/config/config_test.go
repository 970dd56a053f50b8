package config

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/kapu/creator-insight-go/pkg/errors"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_CHANNEL_IDS", "UCabc, UCdef ,")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.YouTube.ChannelIDs) != 2 {
		t.Errorf("ChannelIDs = %v, want 2 trimmed entries", cfg.YouTube.ChannelIDs)
	}
	if cfg.YouTube.ChannelIDs[1] != "UCdef" {
		t.Errorf("second channel = %q, want trimmed UCdef", cfg.YouTube.ChannelIDs[1])
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("default Redis port = %d, want 6379", cfg.Redis.Port)
	}
	if cfg.Collector.Interval != 360*time.Minute {
		t.Errorf("default collector interval = %v, want 6h", cfg.Collector.Interval)
	}
	if !cfg.OpenAI.EnableFallback {
		t.Error("OpenAI fallback should default to enabled")
	}
	if cfg.Postgres.SSLMode != "disable" {
		t.Errorf("default Postgres sslmode = %q, want disable", cfg.Postgres.SSLMode)
	}
	if cfg.Postgres.MaxOpenConns != 25 || cfg.Postgres.MaxIdleConns != 5 {
		t.Errorf("default Postgres pool = %d/%d, want 25/5", cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns)
	}
	if cfg.Postgres.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("default Postgres conn lifetime = %v, want 5m", cfg.Postgres.ConnMaxLifetime)
	}
}

func TestLoadReadsPostgresPoolSettings(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_CHANNEL_IDS", "UCabc")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("POSTGRES_SSLMODE", "require")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "10")
	t.Setenv("POSTGRES_CONN_MAX_LIFETIME_MINUTES", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Postgres.SSLMode != "require" {
		t.Errorf("sslmode = %q, want require", cfg.Postgres.SSLMode)
	}
	if cfg.Postgres.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns = %d, want 10", cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.ConnMaxLifetime != time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 1m", cfg.Postgres.ConnMaxLifetime)
	}
}

func TestLoadRequiresYouTubeKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_CHANNEL_IDS", "UCabc")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error without YOUTUBE_API_KEY")
	}
}

func TestValidateRejectsBadCollectorSettings(t *testing.T) {
	cfg := &Config{}
	cfg.YouTube.APIKey = "k"
	cfg.YouTube.ChannelIDs = []string{"UCabc"}
	cfg.Gemini.APIKey = "g"
	cfg.Collector.Interval = 10 * time.Second
	cfg.Collector.Concurrency = 1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for sub-minute collector interval")
	}

	var validationErr *apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if validationErr.Field != "COLLECTOR_INTERVAL_MINUTES" {
		t.Errorf("Field = %q, want the offending setting", validationErr.Field)
	}
}
