// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/tenancy/internal/logging"
)

// Migration is one versioned schema change. Versions are applied in order
// and recorded in schema_migrations; an applied version never runs again.
type Migration struct {
	Version     int
	Name        string
	Description string
	SQL         string
	AppliedAt   time.Time
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// migrations returns the schema history. Append only.
//
// leases deliberately has no key on lease_id: repeated ids must be storable
// so the duplicate-lease report can find them.
func migrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Name:        "create_properties",
			Description: "Managed properties",
			SQL: `CREATE TABLE IF NOT EXISTS properties (
				property_id BIGINT NOT NULL,
				property_name TEXT NOT NULL,
				address TEXT
			)`,
		},
		{
			Version:     2,
			Name:        "create_units",
			Description: "Leasable units, each belonging to one property",
			SQL: `CREATE TABLE IF NOT EXISTS units (
				unit_id BIGINT NOT NULL,
				property_id BIGINT NOT NULL,
				unit_number TEXT NOT NULL,
				size BIGINT,
				type TEXT
			)`,
		},
		{
			Version:     3,
			Name:        "create_leases",
			Description: "Lease rows as loaded; lease_id is not unique",
			SQL: `CREATE TABLE IF NOT EXISTS leases (
				lease_id BIGINT NOT NULL,
				unit_id BIGINT NOT NULL,
				tenant_id BIGINT NOT NULL,
				start_date DATE NOT NULL,
				end_date DATE NOT NULL
			)`,
		},
		{
			Version:     4,
			Name:        "create_ingest_runs",
			Description: "History of CSV ingestion runs",
			SQL: `CREATE TABLE IF NOT EXISTS ingest_runs (
				started_at TIMESTAMP NOT NULL,
				finished_at TIMESTAMP NOT NULL,
				trigger_source TEXT NOT NULL,
				properties INTEGER NOT NULL,
				units INTEGER NOT NULL,
				leases INTEGER NOT NULL,
				warnings INTEGER NOT NULL
			)`,
		},
	}
}

func (db *DB) getAppliedMigrations(ctx context.Context) (map[int]bool, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer closeWithLog(rows, "rows")

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (db *DB) runVersionedMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range migrations() {
		if applied[m.Version] {
			continue
		}
		if _, err := db.conn.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, description) VALUES (?, ?, ?)`,
			m.Version, m.Name, m.Description); err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}
		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("applied", newMigrations).Msg("Applied database migrations")
	}
	return nil
}

// GetCurrentSchemaVersion returns the highest applied migration version.
func (db *DB) GetCurrentSchemaVersion(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// GetMigrationHistory lists applied migrations in version order.
func (db *DB) GetMigrationHistory(ctx context.Context) ([]Migration, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return queryAndScan(ctx, db.conn,
		`SELECT version, name, COALESCE(description, ''), applied_at FROM schema_migrations ORDER BY version`,
		nil,
		func(rows rowScanner) (Migration, error) {
			var m Migration
			err := rows.Scan(&m.Version, &m.Name, &m.Description, &m.AppliedAt)
			return m, err
		})
}

// createIndexes adds the join indexes used by the analytics queries.
func (db *DB) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_units_property_id ON units(property_id)`,
		`CREATE INDEX IF NOT EXISTS idx_leases_unit_id ON leases(unit_id)`,
		`CREATE INDEX IF NOT EXISTS idx_leases_lease_id ON leases(lease_id)`,
	} {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
