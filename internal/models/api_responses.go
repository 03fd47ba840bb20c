// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package models

import (
	"time"
)

// APIResponse is the envelope used for errors and for operational endpoints
// (health, admin). The analytics routes return their documented bodies
// directly and only use the envelope on failure.
//
//	{
//	  "status": "error",
//	  "error": {"code": "NOT_FOUND", "message": "Property with ID 42 not found"},
//	  "metadata": {"timestamp": "2026-01-05T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status            string           `json:"status"`
	Version           string           `json:"version"`
	DatabaseConnected bool             `json:"database_connected"`
	CircuitBreaker    string           `json:"circuit_breaker"`
	RecordCounts      map[string]int64 `json:"record_counts,omitempty"`
	LastIngest        *IngestStats     `json:"last_ingest,omitempty"`
	Uptime            float64          `json:"uptime_seconds"`
}

// WelcomeMessage is the body of GET /.
type WelcomeMessage struct {
	Message string `json:"message"`
}
