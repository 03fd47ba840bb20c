// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/tenancy/internal/database/query"
	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/models"
)

const (
	insertPropertySQL = `INSERT INTO properties (property_id, property_name, address) VALUES (?, ?, ?)`

	insertUnitSQL = `INSERT INTO units (unit_id, property_id, unit_number, size, type) VALUES (?, ?, ?, ?, ?)`

	insertLeaseSQL = `INSERT INTO leases (lease_id, unit_id, tenant_id, start_date, end_date)
		VALUES (?, ?, ?, CAST(? AS DATE), CAST(? AS DATE))`

	insertIngestRunSQL = `INSERT INTO ingest_runs
		(started_at, finished_at, trigger_source, properties, units, leases, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// ReplaceAll swaps the contents of properties, units and leases for snapshot
// in a single transaction and records the run in ingest_runs. Readers see
// either the old tables or the new ones, never a mix.
//
// stats may be nil, in which case no ingest run is recorded.
func (db *DB) ReplaceAll(ctx context.Context, snapshot *models.Snapshot, stats *models.IngestStats) error {
	if db == nil || db.conn == nil {
		return ErrDatabaseUnavailable
	}
	if snapshot == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logging.Warn().Err(rbErr).Msg("Failed to roll back replace transaction")
			}
		}
	}()

	// children first so the order stays valid if foreign keys are ever added
	for _, table := range []string{"leases", "units", "properties"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertProperties(ctx, tx, snapshot.Properties); err != nil {
		return err
	}
	if err := insertUnits(ctx, tx, snapshot.Units); err != nil {
		return err
	}
	if err := insertLeases(ctx, tx, snapshot.Leases); err != nil {
		return err
	}

	if stats != nil {
		if _, err := tx.ExecContext(ctx, insertIngestRunSQL,
			stats.StartedAt.UTC(), stats.FinishedAt.UTC(), stats.Trigger,
			stats.Properties, stats.Units, stats.Leases, stats.WarningCount); err != nil {
			return fmt.Errorf("failed to record ingest run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace transaction: %w", err)
	}
	committed = true

	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint after replace")
	}

	logging.Info().
		Int("properties", len(snapshot.Properties)).
		Int("units", len(snapshot.Units)).
		Int("leases", len(snapshot.Leases)).
		Dur("duration", time.Since(start)).
		Msg("Replaced analytics tables")
	return nil
}

func insertProperties(ctx context.Context, tx *sql.Tx, properties []models.Property) error {
	stmt, err := tx.PrepareContext(ctx, insertPropertySQL)
	if err != nil {
		return fmt.Errorf("failed to prepare property insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range properties {
		p := &properties[i]
		if _, err := stmt.ExecContext(ctx, p.PropertyID, p.PropertyName, p.Address); err != nil {
			return fmt.Errorf("failed to insert property %d: %w", p.PropertyID, err)
		}
	}
	return nil
}

func insertUnits(ctx context.Context, tx *sql.Tx, units []models.Unit) error {
	stmt, err := tx.PrepareContext(ctx, insertUnitSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare unit insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range units {
		u := &units[i]
		var size, unitType interface{}
		if u.Size != nil {
			size = *u.Size
		}
		if u.Type != nil {
			unitType = *u.Type
		}
		if _, err := stmt.ExecContext(ctx, u.UnitID, u.PropertyID, u.UnitNumber, size, unitType); err != nil {
			return fmt.Errorf("failed to insert unit %d: %w", u.UnitID, err)
		}
	}
	return nil
}

func insertLeases(ctx context.Context, tx *sql.Tx, leases []models.Lease) error {
	stmt, err := tx.PrepareContext(ctx, insertLeaseSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare lease insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range leases {
		l := &leases[i]
		if _, err := stmt.ExecContext(ctx, l.LeaseID, l.UnitID, l.TenantID,
			query.Date(l.StartDate), query.Date(l.EndDate)); err != nil {
			return fmt.Errorf("failed to insert lease %d: %w", l.LeaseID, err)
		}
	}
	return nil
}

// LastIngest returns the most recent recorded ingest run, or nil when the
// store has never been loaded. Warning texts are not persisted, only their
// count.
func (db *DB) LastIngest(ctx context.Context) (*models.IngestStats, error) {
	if db == nil || db.conn == nil {
		return nil, ErrDatabaseUnavailable
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var (
		stats    models.IngestStats
		warnings int
	)
	err := db.conn.QueryRowContext(ctx, `SELECT started_at, finished_at, trigger_source, properties, units, leases, warnings
		FROM ingest_runs ORDER BY finished_at DESC LIMIT 1`).
		Scan(&stats.StartedAt, &stats.FinishedAt, &stats.Trigger,
			&stats.Properties, &stats.Units, &stats.Leases, &warnings)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last ingest run: %w", err)
	}

	stats.DurationMS = stats.FinishedAt.Sub(stats.StartedAt).Milliseconds()
	stats.WarningCount = warnings
	return &stats, nil
}
