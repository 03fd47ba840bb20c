// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package ingest

import "errors"

var (
	// ErrIngestRunning is returned when a run is requested while another is
	// in progress.
	ErrIngestRunning = errors.New("ingestion already in progress")

	// ErrInvalidDate marks a lease date that matches neither accepted layout.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingColumn marks a CSV header without a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedRecord marks a cell that cannot be converted.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrDuplicateID marks a repeated property_id or unit_id.
	ErrDuplicateID = errors.New("duplicate id")
)
