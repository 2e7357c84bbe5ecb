package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/lumenmd/lead-dashboard/internal/api/router"
	appconfig "github.com/lumenmd/lead-dashboard/internal/config"
	"github.com/lumenmd/lead-dashboard/internal/http/handlers"
	"github.com/lumenmd/lead-dashboard/internal/observability/metrics"
	"github.com/lumenmd/lead-dashboard/internal/patients"
	"github.com/lumenmd/lead-dashboard/internal/recommend"
	"github.com/lumenmd/lead-dashboard/internal/records"
	"github.com/lumenmd/lead-dashboard/internal/taxonomy"
	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

func main() {
	// Load .env if present; real environments set vars directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lead-dashboard API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.RecordStoreBaseURL == "" {
		logger.Error("RECORD_STORE_BASE_URL is required")
		os.Exit(1)
	}

	metricsHandler, planMetrics := setupMetrics()

	recordClient := records.NewHTTPClient(cfg.RecordStoreBaseURL, cfg.RecordStoreAPIKey, cfg.RecordStoreTimeout, logger)

	redisClient := connectRedis(context.Background(), cfg, logger)
	cache := patients.NewCache(redisClient, cfg.PatientCacheTTL)
	repo := patients.NewRecordRepository(recordClient, cfg.PatientsTable, cache, logger, planMetrics)

	catalog := taxonomy.DefaultCatalog()
	resolver := recommend.NewResolver(catalog)
	composer := recommend.NewComposer(catalog, resolver)

	routerCfg := &router.Config{
		Logger:             logger,
		PatientsHandler:    patients.NewHandler(repo, logger),
		PlanHandler:        handlers.NewPlanHandler(repo, recordClient, cfg.PatientsTable, logger, planMetrics),
		SuggestionsHandler: handlers.NewSuggestionsHandler(resolver, composer, logger, planMetrics),
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit:          cfg.RateLimit,
		RateBurst:          cfg.RateBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics builds a dedicated registry so tests never collide with the
// global one, plus the /metrics handler exporting it.
func setupMetrics() (http.Handler, *metrics.PlanMetrics) {
	registry := prometheus.NewRegistry()
	planMetrics := metrics.NewPlanMetrics(registry)
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return handler, planMetrics
}

// connectRedis dials the patient cache. Returns nil when the cache is
// disabled or unreachable; the repository degrades to direct fetches.
func connectRedis(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	if cfg.PatientCacheOff || cfg.RedisAddr == "" {
		logger.Info("patient cache disabled")
		return nil
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, running without patient cache", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}

	logger.Info("patient cache connected", "addr", cfg.RedisAddr, "ttl", cfg.PatientCacheTTL)
	return client
}
