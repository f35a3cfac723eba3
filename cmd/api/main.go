package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lucvieira/gamedeals-backend/api/routes"
	"github.com/lucvieira/gamedeals-backend/internal/cheapshark"
	"github.com/lucvieira/gamedeals-backend/internal/deals"
	"github.com/lucvieira/gamedeals-backend/internal/stores"
	"github.com/lucvieira/gamedeals-backend/pkg/config"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
	"github.com/lucvieira/gamedeals-backend/pkg/metrics"
	"github.com/lucvieira/gamedeals-backend/pkg/redis"
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
	registry.MustRegister(collectors.NewGoCollector())
	upstreamMetrics := metrics.NewUpstreamMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	client, err := cheapshark.NewClient(cfg.CheapShark, logg, upstreamMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to build cheapshark client", err)
		os.Exit(1)
	}

	var redisPinger redis.Pinger
	var shared deals.SharedCache
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisPinger = redisClient
		shared = deals.NewRedisSnapshotCache(redisClient, logg, cfg.Catalog.SnapshotTTL)
	}

	resolver, err := stores.NewResolver(client, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to build store resolver", err)
		os.Exit(1)
	}

	catalog, err := deals.NewService(deals.ServiceParams{
		Source:      client,
		Stores:      resolver,
		Logger:      logg,
		Shared:      shared,
		SnapshotTTL: cfg.Catalog.SnapshotTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog service", err)
		os.Exit(1)
	}

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
		Handler: routes.NewRouter(cfg, logg, catalog, resolver, redisPinger, httpMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
