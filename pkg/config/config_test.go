package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected dev env, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.App.Port)
	}
	if cfg.CheapShark.BaseURL != "https://www.cheapshark.com/api/1.0" {
		t.Fatalf("unexpected base url %q", cfg.CheapShark.BaseURL)
	}
	if cfg.CheapShark.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.CheapShark.Timeout)
	}
	if cfg.Catalog.PageSize != 10 {
		t.Fatalf("unexpected page size %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.SnapshotTTL != 5*time.Minute {
		t.Fatalf("unexpected snapshot ttl %s", cfg.Catalog.SnapshotTTL)
	}
	if cfg.Catalog.DefaultUpperPrice != 100 {
		t.Fatalf("unexpected default upper price %v", cfg.Catalog.DefaultUpperPrice)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("expected redis to be disabled by default")
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("GAMEDEALS_APP_ENV", "prod")
	t.Setenv("GAMEDEALS_CATALOG_PAGE_SIZE", "25")
	t.Setenv("GAMEDEALS_CATALOG_SNAPSHOT_TTL", "30s")
	t.Setenv("GAMEDEALS_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.Catalog.PageSize != 25 {
		t.Fatalf("expected page size 25, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.SnapshotTTL != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %s", cfg.Catalog.SnapshotTTL)
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("expected redis to be enabled")
	}
}

func TestLoadRejectsInvalidCatalogSettings(t *testing.T) {
	t.Setenv("GAMEDEALS_CATALOG_PAGE_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero page size")
	}
}

func TestAppEnvHelpers(t *testing.T) {
	app := AppConfig{Env: "DEV"}
	if !app.IsDev() || app.IsProd() {
		t.Fatalf("expected case-insensitive dev detection")
	}
	app.Env = "prod"
	if app.IsDev() || !app.IsProd() {
		t.Fatalf("expected prod detection")
	}
}
