package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to be dev, got %q", cfg.App.Env)
	}
	if !cfg.App.IsDev() {
		t.Fatal("expected IsDev to be true for default env")
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if cfg.Feed.Path != "data/lg-tvs.csv" {
		t.Fatalf("unexpected feed path %q", cfg.Feed.Path)
	}
	if cfg.Feed.Timeout != 10*time.Second {
		t.Fatalf("unexpected feed timeout %v", cfg.Feed.Timeout)
	}
	if cfg.Deals.Limit != 8 {
		t.Fatalf("unexpected deals limit %d", cfg.Deals.Limit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PRICEPULSE_APP_ENV", "production")
	t.Setenv("PRICEPULSE_FEED_URL", "https://feeds.example.com/lg-tvs.csv")
	t.Setenv("PRICEPULSE_DEALS_LIMIT", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatal("expected IsProd to be true")
	}
	if cfg.Feed.URL != "https://feeds.example.com/lg-tvs.csv" {
		t.Fatalf("unexpected feed URL %q", cfg.Feed.URL)
	}
	if cfg.Deals.Limit != 4 {
		t.Fatalf("unexpected deals limit %d", cfg.Deals.Limit)
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("PRICEPULSE_FEED_TIMEOUT", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero feed timeout")
	}
}
