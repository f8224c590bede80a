package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pricepulse-au/pricepulse-backend/api/routes"
	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/internal/feed"
	"github.com/pricepulse-au/pricepulse-backend/pkg/config"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
	"github.com/pricepulse-au/pricepulse-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	feedMetrics := metrics.NewFeedMetrics(registry)

	source, err := buildFeedSource(cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to build feed source", err)
		os.Exit(1)
	}

	fixtureProvider := catalog.NewFixtureProvider()
	feedProvider, err := catalog.NewFeedProvider(source, logg, feedMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to build feed provider", err)
		os.Exit(1)
	}

	// Warm the feed catalog off the request path. A failure here degrades to
	// an empty catalog and the first request would hit the same outcome.
	go feedProvider.Load(context.Background())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, fixtureProvider, feedProvider),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildFeedSource(cfg *config.Config) (feed.Source, error) {
	if cfg.Feed.URL != "" {
		return feed.NewHTTPSource(cfg.Feed.URL, feed.WithTimeout(cfg.Feed.Timeout))
	}
	return feed.NewFileSource(cfg.Feed.Path)
}
