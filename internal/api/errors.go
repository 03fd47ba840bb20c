// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import "errors"

var (
	// ErrPropertyNotFound indicates a per-property query matched nothing.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrIngestNotConfigured indicates the handler has no importer.
	ErrIngestNotConfigured = errors.New("ingestion is not configured")
)

// Error codes used in the response envelope.
const (
	codeValidation  = "VALIDATION_ERROR"
	codeNotFound    = "NOT_FOUND"
	codeUnavailable = "SERVICE_UNAVAILABLE"
	codeDatabase    = "DATABASE_ERROR"
	codeConflict    = "CONFLICT"
	codeRateLimited = "RATE_LIMITED"
	codeIngest      = "INGEST_ERROR"
	codeMethod      = "METHOD_NOT_ALLOWED"
)
