// Command server runs the lead-capture HTTP API.
//
// Startup order matters: configuration is validated first (the process
// refuses to start without an admin credential), then observability, then the
// database and seed data, and finally the HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/medigo-care/go-leads-backend/internal/catalog"
	"github.com/medigo-care/go-leads-backend/internal/config"
	httpapi "github.com/medigo-care/go-leads-backend/internal/http"
	"github.com/medigo-care/go-leads-backend/internal/observability"
	"github.com/medigo-care/go-leads-backend/internal/repo"
	"github.com/medigo-care/go-leads-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        Medigo Leads API
// @version      1.0
// @description  Lead capture and treatment recommendation backend for a medical tourism clinic.
// @BasePath     /api
func main() {
	// Optional .env for local development; absence is not an error.
	envFile := sysutil.FirstNonEmpty(os.Getenv("ENV_FILE"), ".env")
	_ = godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Tracing
	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Database
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin failed")
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if err := repo.SeedCatalog(ctx, db, catalog.Defaults()); err != nil {
		log.Fatal().Err(err).Msg("seed catalog failed")
	}
	if n, err := repo.PurgeExpiredSessions(ctx, db, time.Now().UTC()); err != nil {
		log.Warn().Err(err).Msg("purge sessions failed")
	} else if n > 0 {
		log.Info().Int64("purged", n).Msg("expired admin sessions removed")
	}

	// Lead gauges for /metrics
	metricsCtx, stopMetrics := context.WithCancel(ctx)
	defer stopMetrics()
	go repo.StartLeadMetrics(metricsCtx, db, cfg.MetricsInterval)

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("bye")
}
