// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

// Package config loads service configuration from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest first).
package config

import (
	"time"
)

// Config holds all service configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Ingest   IngestConfig   `koanf:"ingest"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig configures the embedded DuckDB store.
type DatabaseConfig struct {
	Path        string `koanf:"path"`
	MaxMemory   string `koanf:"max_memory"`
	Threads     int    `koanf:"threads"`      // 0 = runtime.NumCPU()
	SkipIndexes bool   `koanf:"skip_indexes"` // tests skip the lookup indexes
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig configures response caching.
type APIConfig struct {
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// IngestConfig controls loading of the properties, units and leases CSV
// snapshots.
type IngestConfig struct {
	// DataDir holds properties.csv, units.csv and leases.csv.
	DataDir string `koanf:"data_dir"`

	// OnStartup runs one ingestion before the HTTP server starts.
	OnStartup bool `koanf:"on_startup"`

	// Schedule is a cron expression for periodic re-ingestion. Empty disables it.
	Schedule string `koanf:"schedule"`

	// ReloadInterval is the minimum spacing between admin-triggered reloads.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// DateLayout is the Go time layout of lease dates. Default 02/01/2006 (DD/MM/YYYY).
	DateLayout string `koanf:"date_layout"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration with koanf and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
