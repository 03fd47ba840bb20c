// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/tenancy/docs" // Import generated swagger docs
	"github.com/tomtom215/tenancy/internal/api"
	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/database"
	"github.com/tomtom215/tenancy/internal/ingest"
	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/supervisor"
	"github.com/tomtom215/tenancy/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("data_dir", cfg.Ingest.DataDir).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Tenancy with supervisor tree")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	handler := api.NewHandler(db, cfg)
	defer handler.Close()

	importer := ingest.NewImporter(&cfg.Ingest, db, handler.ClearCache)
	handler.SetIngester(importer)

	// Signal context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A failed startup ingestion is not fatal: the previous snapshot, if
	// any, is still in the database.
	if cfg.Ingest.OnStartup {
		if _, err := importer.Run(ctx, ingest.TriggerStartup); err != nil {
			logging.Warn().Err(err).Msg("Startup ingestion failed, serving existing data")
		}
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer services
	if cfg.Ingest.Schedule != "" {
		scheduler, err := services.NewIngestSchedulerService(importer, cfg.Ingest.Schedule)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create ingest scheduler")
		}
		tree.AddDataService(scheduler)
		logging.Info().Str("schedule", cfg.Ingest.Schedule).Msg("Ingest scheduler added to supervisor tree")
	}

	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly one value and is never closed
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
