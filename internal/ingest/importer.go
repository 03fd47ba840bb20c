// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

// Package ingest loads the properties, units and leases CSV snapshots and
// swaps them into the store as a whole.
//
// A run reads all three files, validates them, and replaces the stored tables
// in one transaction. A run that fails at any step leaves the previous data
// untouched. Only one run executes at a time per Importer.
package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/metrics"
	"github.com/tomtom215/tenancy/internal/models"
)

// Triggers recorded with each run.
const (
	TriggerStartup  = "startup"
	TriggerSchedule = "schedule"
	TriggerAdmin    = "admin"
	TriggerSeed     = "seed"
)

// Store receives a validated snapshot.
type Store interface {
	ReplaceAll(ctx context.Context, snapshot *models.Snapshot, stats *models.IngestStats) error
}

// Importer runs CSV ingestion into a Store.
type Importer struct {
	cfg       *config.IngestConfig
	store     Store
	onReplace func()
	now       func() time.Time

	mu      sync.Mutex
	running bool
	last    *models.IngestStats
}

// NewImporter creates an importer for cfg.DataDir. onReplace, if non-nil, is
// called after every successful replacement; the API uses it to drop cached
// analytics.
func NewImporter(cfg *config.IngestConfig, store Store, onReplace func()) *Importer {
	return &Importer{
		cfg:       cfg,
		store:     store,
		onReplace: onReplace,
		now:       time.Now,
	}
}

// Run performs one ingestion. It returns ErrIngestRunning if another run is
// in progress.
func (i *Importer) Run(ctx context.Context, trigger string) (*models.IngestStats, error) {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, ErrIngestRunning
	}
	i.running = true
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.running = false
		i.mu.Unlock()
	}()

	log := logging.WithComponent("ingest").With().Str("trigger", trigger).Logger()
	stats := &models.IngestStats{Trigger: trigger, StartedAt: i.now()}

	err := i.run(ctx, stats)
	stats.Finish(i.now())

	metrics.RecordIngest(trigger, time.Duration(stats.DurationMS)*time.Millisecond, map[string]int{
		"properties": stats.Properties,
		"units":      stats.Units,
		"leases":     stats.Leases,
	}, stats.WarningCount, err)

	if err != nil {
		log.Error().Err(err).Str("data_dir", i.cfg.DataDir).Msg("Ingestion failed")
		return nil, err
	}

	for _, w := range stats.Warnings {
		log.Warn().Str("warning", w).Msg("Ingestion data warning")
	}
	log.Info().
		Int("properties", stats.Properties).
		Int("units", stats.Units).
		Int("leases", stats.Leases).
		Int("warnings", stats.WarningCount).
		Int64("duration_ms", stats.DurationMS).
		Msg("Ingestion completed")

	i.mu.Lock()
	i.last = stats
	i.mu.Unlock()
	return stats, nil
}

func (i *Importer) run(ctx context.Context, stats *models.IngestStats) error {
	snap, err := LoadSnapshot(i.cfg.DataDir, i.cfg.DateLayout)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	warnings, err := Validate(snap)
	if err != nil {
		return fmt.Errorf("validate snapshot: %w", err)
	}

	stats.Properties = len(snap.Properties)
	stats.Units = len(snap.Units)
	stats.Leases = len(snap.Leases)
	stats.Warnings = warnings
	// the stored run carries its own finish time, taken before the write
	stats.Finish(i.now())

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := i.store.ReplaceAll(ctx, snap, stats); err != nil {
		return fmt.Errorf("replace tables: %w", err)
	}

	if i.onReplace != nil {
		i.onReplace()
	}
	return nil
}

// IsRunning reports whether a run is in progress.
func (i *Importer) IsRunning() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.running
}

// LastRun returns a copy of the most recent successful run's stats, or nil.
func (i *Importer) LastRun() *models.IngestStats {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.last == nil {
		return nil
	}
	cp := *i.last
	return &cp
}
