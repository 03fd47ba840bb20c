// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

// Package main is a one-shot loader: it ingests the CSV snapshot from the
// configured data directory into the DuckDB database and exits.
//
// It reads the same configuration as the server (DUCKDB_PATH, DATA_DIR,
// INGEST_DATE_LAYOUT, ...) and exits with status 1 when ingestion fails.
// Run it while the server is stopped; DuckDB allows a single writer process.
//
//	DATA_DIR=./testdata DUCKDB_PATH=./tenancy.duckdb ./seed
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/database"
	"github.com/tomtom215/tenancy/internal/ingest"
	"github.com/tomtom215/tenancy/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize database")
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := ingest.NewImporter(&cfg.Ingest, db, nil).Run(ctx, ingest.TriggerSeed)
	if err != nil {
		// the importer has logged the cause
		return 1
	}

	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Checkpoint after seeding failed")
	}

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Int("properties", stats.Properties).
		Int("units", stats.Units).
		Int("leases", stats.Leases).
		Msg("Seed complete")
	return 0
}
