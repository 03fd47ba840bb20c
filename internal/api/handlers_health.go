// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/models"
)

const welcomeMessage = "Welcome to the Property Management API"

// Root handles GET /
//
// @Summary Welcome message
// @Tags Core
// @Produce json
// @Success 200 {object} models.WelcomeMessage
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.WelcomeMessage{Message: welcomeMessage})
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns database connectivity, circuit breaker state, table row counts, the last ingestion run and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dbConnected := h.db != nil && h.db.Ping(ctx) == nil

	health := models.HealthStatus{
		Status:            "healthy",
		Version:           Version,
		DatabaseConnected: dbConnected,
		CircuitBreaker:    h.db.BreakerState(),
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if !dbConnected {
		health.Status = "degraded"
	}

	if dbConnected {
		counts, err := h.db.GetRecordCounts(ctx)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to read record counts")
		} else {
			health.RecordCounts = counts
		}

		last, err := h.db.LastIngest(ctx)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to read last ingestion run")
		}
		health.LastIngest = last
	}
	if health.LastIngest == nil && h.ingester != nil {
		health.LastIngest = h.ingester.LastRun()
	}

	respondEnvelope(w, r, http.StatusOK, "success", health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondEnvelope(w, r, http.StatusOK, "success", map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the database answers and its circuit breaker is not open
//
// @Summary Kubernetes readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil
	breaker := h.db.BreakerState()
	ready := dbConnected && breaker != "open"

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondEnvelope(w, r, statusCode, status, map[string]interface{}{
		"database_connected": dbConnected,
		"circuit_breaker":    breaker,
		"ready_to_serve":     ready,
		"uptime":             time.Since(h.startTime).Seconds(),
	})
}
