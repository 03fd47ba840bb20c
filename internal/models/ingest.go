// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package models

import (
	"time"
)

// IngestStats summarises one CSV ingestion run.
type IngestStats struct {
	Properties int       `json:"properties"`
	Units      int       `json:"units"`
	Leases     int       `json:"leases"`
	// Warnings is only populated for the run that produced them; history read
	// back from the store carries WarningCount alone.
	Warnings     []string  `json:"warnings,omitempty"`
	WarningCount int       `json:"warning_count"`
	Trigger      string    `json:"trigger"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	DurationMS   int64     `json:"duration_ms"`
}

// Finish stamps the end time and duration and settles WarningCount.
func (s *IngestStats) Finish(now time.Time) {
	s.WarningCount = len(s.Warnings)
	s.FinishedAt = now
	s.DurationMS = now.Sub(s.StartedAt).Milliseconds()
}
