// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/tenancy/internal/logging"
)

var (
	// ErrDatabaseUnavailable is returned when the store cannot serve queries:
	// the connection is gone or the circuit breaker is open.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrInvalidSnapshot is returned by ReplaceAll for data it refuses to store.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// closeWithLog closes a resource and logs a failure.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly is for cleanup paths where an error is already being returned.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
