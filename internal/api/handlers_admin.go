// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/tomtom215/tenancy/internal/ingest"
)

// AdminIngest handles POST /api/v1/admin/ingest
//
// The run is synchronous and detached from the request's cancellation: a
// client that disconnects does not abort a table replacement in progress.
//
// @Summary Re-run CSV ingestion
// @Description Reloads properties.csv, units.csv and leases.csv from the configured data directory and atomically replaces the stored tables.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.IngestStats} "Ingestion completed"
// @Failure 409 {object} models.APIResponse "An ingestion is already running"
// @Failure 429 {object} models.APIResponse "Reload requested too soon"
// @Failure 500 {object} models.APIResponse "Ingestion failed, previous data kept"
// @Failure 503 {object} models.APIResponse "Ingestion not configured"
// @Router /api/v1/admin/ingest [post]
func (h *Handler) AdminIngest(w http.ResponseWriter, r *http.Request) {
	if h.ingester == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Ingestion not configured", ErrIngestNotConfigured)
		return
	}

	if h.reloadLimiter != nil {
		reservation := h.reloadLimiter.Reserve()
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			respondError(w, r, http.StatusTooManyRequests, codeRateLimited, "Ingestion was triggered too recently", nil)
			return
		}
	}

	stats, err := h.ingester.Run(context.WithoutCancel(r.Context()), ingest.TriggerAdmin)
	switch {
	case errors.Is(err, ingest.ErrIngestRunning):
		respondError(w, r, http.StatusConflict, codeConflict, "An ingestion is already running", nil)
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, codeIngest, "Ingestion failed; previous data kept", err)
	default:
		respondEnvelope(w, r, http.StatusOK, "success", stats)
	}
}
