// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

// Package main provides the Tenancy HTTP server
//
// Tenancy API answers occupancy and lease questions over a snapshot of
// properties, units and leases loaded from CSV.
//
// @title Tenancy API
// @version 1.0
// @description Property occupancy and lease-duration analytics
// @description
// @description ## Data
// @description
// @description Properties, units and leases are ingested from properties.csv, units.csv and leases.csv.
// @description Each ingestion replaces the previous snapshot atomically; a failed ingestion keeps the old one.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address (RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW).
// @description Health routes allow 1000 per minute, the admin ingest route 10 per minute.
// @description
// @description ## Caching
// @description
// @description Analytics responses are cached in memory (5-minute TTL by default) and invalidated on every ingestion.
// @description Responses carry `ETag`, `X-Cache` and `X-Query-Time-Ms` headers.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Property with ID 42 not found"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2025-06-15T09:30:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/tenancy
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /
// @schemes http https
//
// @tag.name Property
// @tag.description Per-property occupancy and lease duration
// @tag.name Analysis
// @tag.description Unit and lease anomaly listings
// @tag.name Core
// @tag.description Welcome, health and readiness probes
// @tag.name Admin
// @tag.description Data ingestion control
package main
