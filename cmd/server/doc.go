// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

/*
Package main is the entry point for the Tenancy server.

Tenancy loads a snapshot of properties, units and leases from CSV files into
an embedded DuckDB database and serves occupancy, lease-duration and data
quality analytics over HTTP.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("tenancy")
	├── DataSupervisor ("data-layer")
	│   └── Ingest Scheduler (optional, INGEST_SCHEDULE)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB with the properties, units and leases tables
 4. Importer: CSV ingestion, run once at startup when INGEST_ON_STARTUP=true
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=3857               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Storage
	DUCKDB_PATH=/data/tenancy.duckdb
	DUCKDB_MAX_MEMORY=1GB

	# Ingestion
	DATA_DIR=data                # holds properties.csv, units.csv, leases.csv
	INGEST_ON_STARTUP=true
	INGEST_SCHEDULE="0 3 * * *"  # cron, UTC; empty disables
	INGEST_RELOAD_INTERVAL=30s   # minimum spacing of admin reloads

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Stops the ingest scheduler, letting a running ingestion finish
 4. Closes the database
 5. Reports any services that failed to stop

# Usage Examples

Development:

	export LOG_FORMAT=console LOG_LEVEL=debug
	export DUCKDB_PATH=./tenancy.duckdb DATA_DIR=./testdata
	./tenancy

Docker:

	docker run -d \
	  -v /srv/tenancy/data:/data \
	  -e DATA_DIR=/data/csv \
	  -e INGEST_SCHEDULE="0 3 * * *" \
	  -p 3857:3857 \
	  ghcr.io/tomtom215/tenancy

Loading data without starting the server is done by cmd/seed.
*/
package main
