// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/tenancy/internal/metrics"
)

// rowScanner is the part of *sql.Rows a scan function needs.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

type scanFunc[T any] func(rowScanner) (T, error)

// queryAndScan runs query and maps every row with scan. Rows are closed on
// every path. The result is never nil so callers can encode it as [].
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// runAnalytics executes one analytics query through the circuit breaker and
// records its duration and outcome.
func runAnalytics[T any](ctx context.Context, db *DB, operation, table, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	if db == nil || db.conn == nil {
		return nil, ErrDatabaseUnavailable
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	results, err := execute(db.breaker, func() ([]T, error) {
		return queryAndScan(ctx, db.conn, query, args, scan)
	})
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	return results, err
}
