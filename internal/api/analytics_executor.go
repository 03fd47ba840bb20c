// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/tenancy/internal/cache"
	"github.com/tomtom215/tenancy/internal/database"
	"github.com/tomtom215/tenancy/internal/models"
)

// AnalyticsQueryFunc runs one analytics query for a resolved filter. The
// result must be JSON-serializable; it is cached and written as the response
// body unchanged.
type AnalyticsQueryFunc func(ctx context.Context, filter models.AnalyticsFilter) (interface{}, error)

// executeAnalytics implements the cache-first flow shared by every
// analytics route:
//
//  1. Reject with 503 when no database is attached
//  2. Serve a cached result for (name, filter) if present
//  3. Otherwise run queryFunc and cache its result
//
// The cache generation is read before the query, so a result computed from
// data replaced mid-query is returned but not cached.
func (h *Handler) executeAnalytics(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	filter models.AnalyticsFilter,
	queryFunc AnalyticsQueryFunc,
) {
	if h.db == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Database not available", nil)
		return
	}

	cacheKey := cache.GenerateKey(name, filter)
	if h.cache != nil {
		if cached, found := h.cache.Get(cacheKey); found {
			w.Header().Set("X-Cache", "HIT")
			respondJSON(w, r, http.StatusOK, cached)
			return
		}
	}

	var gen uint64
	if h.cache != nil {
		gen = h.cache.Generation()
	}

	start := time.Now()
	data, err := queryFunc(r.Context(), filter)
	if err != nil {
		h.respondQueryError(w, r, name, filter, err)
		return
	}

	if h.cache != nil {
		h.cache.SetIfCurrent(gen, cacheKey, data)
	}

	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("X-Query-Time-Ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	respondJSON(w, r, http.StatusOK, data)
}

func (h *Handler) respondQueryError(w http.ResponseWriter, r *http.Request, name string, filter models.AnalyticsFilter, err error) {
	switch {
	case errors.Is(err, ErrPropertyNotFound):
		respondError(w, r, http.StatusNotFound, codeNotFound,
			fmt.Sprintf("Property with ID %d not found", filter.PropertyID), nil)
	case errors.Is(err, database.ErrDatabaseUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Database temporarily unavailable", err)
	default:
		respondError(w, r, http.StatusInternalServerError, codeDatabase,
			fmt.Sprintf("Failed to execute query: %s", name), err)
	}
}
