package database

import (
	"strings"
	"testing"
	"time"
)

func TestPostgresConfigDefaults(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "insight",
		Database: "creator_insight",
	}.withDefaults()

	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want disable by default", cfg.SSLMode)
	}
	if cfg.MaxOpenConns != 25 || cfg.MaxIdleConns != 5 {
		t.Errorf("pool = %d/%d, want 25/5 by default", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 5m by default", cfg.ConnMaxLifetime)
	}
}

func TestPostgresConfigExplicitValuesSurvive(t *testing.T) {
	cfg := PostgresConfig{
		Host:            "db.internal",
		Port:            5432,
		SSLMode:         "require",
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}.withDefaults()

	if cfg.SSLMode != "require" {
		t.Errorf("SSLMode = %q, want require", cfg.SSLMode)
	}
	if cfg.MaxOpenConns != 10 || cfg.MaxIdleConns != 2 || cfg.ConnMaxLifetime != time.Minute {
		t.Errorf("pool settings were overridden: %+v", cfg)
	}
}

func TestPostgresDSNCarriesSSLMode(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "insight",
		Password: "secret",
		Database: "creator_insight",
		SSLMode:  "verify-full",
	}

	dsn := cfg.dsn()
	for _, want := range []string{"host=db.internal", "port=5433", "dbname=creator_insight", "sslmode=verify-full"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("dsn %q missing %q", dsn, want)
		}
	}
}
