package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/warehouse")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.WarehouseDriver != DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.WarehouseDriver)
	}
	if cfg.FeedbackDatabase != "streamlit_lab" || cfg.FeedbackTable != "user_feedback" {
		t.Errorf("unexpected feedback target %s.%s", cfg.FeedbackDatabase, cfg.FeedbackTable)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
	if cfg.R2.Enabled() {
		t.Errorf("R2 should be disabled without settings")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "SESSION_SECRET") || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected both keys in error, got %v", err)
	}
}

func TestLoad_SQLiteNeedsNoDatabaseURL(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("WAREHOUSE_DRIVER", "SQLite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WarehouseDriver != DriverSQLite || cfg.SQLitePath == "" {
		t.Fatalf("unexpected sqlite config %+v", cfg)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &AppConfig{WarehouseDriver: "snowflake", SessionSecret: "x", SessionTTL: time.Hour}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
