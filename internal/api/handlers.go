// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/tenancy/internal/cache"
	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/database"
	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/models"
)

// Version is reported by the health endpoint. Overridden at build time with
// -ldflags "-X github.com/tomtom215/tenancy/internal/api.Version=...".
var Version = "1.0.0"

const defaultCacheTTL = 5 * time.Minute

// Ingester runs CSV ingestion on demand. *ingest.Importer implements it.
type Ingester interface {
	Run(ctx context.Context, trigger string) (*models.IngestStats, error)
	LastRun() *models.IngestStats
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_property.go: per-property occupancy and lease duration
//   - handlers_analysis.go: data-quality analysis lists
//   - handlers_health.go: root, health and probes
//   - handlers_admin.go: admin-triggered ingestion
type Handler struct {
	db     *database.DB
	config *config.Config
	cache  *cache.Cache

	ingester      Ingester
	reloadLimiter *rate.Limiter

	startTime time.Time
	now       func() time.Time
}

// NewHandler creates an API handler. db may be nil; data routes then answer
// 503 until the server is restarted with a working store.
func NewHandler(db *database.DB, cfg *config.Config) *Handler {
	ttl := defaultCacheTTL
	if cfg != nil && cfg.API.CacheTTL > 0 {
		ttl = cfg.API.CacheTTL
	}

	h := &Handler{
		db:        db,
		config:    cfg,
		cache:     cache.NewNamed("analytics", ttl),
		startTime: time.Now(),
		now:       time.Now,
	}
	if cfg != nil && cfg.Ingest.ReloadInterval > 0 {
		h.reloadLimiter = rate.NewLimiter(rate.Every(cfg.Ingest.ReloadInterval), 1)
	}
	return h
}

// SetIngester attaches the importer used by POST /api/v1/admin/ingest.
// Call once during startup, before serving.
func (h *Handler) SetIngester(ing Ingester) {
	h.ingester = ing
}

// ClearCache invalidates all cached analytics results. The importer calls it
// after every successful table replacement.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Analytics cache cleared")
	}
}

// Close stops the cache janitor.
func (h *Handler) Close() {
	if h.cache != nil {
		h.cache.Close()
	}
}

// today is the handler clock's current calendar date in UTC.
func (h *Handler) today() time.Time {
	y, m, d := h.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
