// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/tenancy/internal/models"
)

type unitQuery func(ctx context.Context, filter models.AnalyticsFilter) ([]models.UnitRef, error)

// serveUnitList runs a unit-list analysis. Only routes with usesAsOf put the
// reference date in their filter and cache key.
func (h *Handler) serveUnitList(w http.ResponseWriter, r *http.Request, name string, usesAsOf bool, query unitQuery) {
	req, apiErr := parseAnalysisRequest(r)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	filter := models.AnalyticsFilter{PropertyID: req.propertyID()}
	if usesAsOf {
		filter.AsOf = h.resolveAsOf(req.AsOf)
	}

	h.executeAnalytics(w, r, name, filter,
		func(ctx context.Context, filter models.AnalyticsFilter) (interface{}, error) {
			units, err := query(ctx, filter)
			if err != nil {
				return nil, err
			}
			return models.NewUnitListResponse(units), nil
		})
}

// UnitsNeverLeased handles GET /analysis/units-never-leased
//
// @Summary Units that never had a lease
// @Tags Analysis
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Success 200 {object} models.UnitListResponse
// @Failure 400 {object} models.APIResponse "Invalid property_id"
// @Router /analysis/units-never-leased [get]
func (h *Handler) UnitsNeverLeased(w http.ResponseWriter, r *http.Request) {
	h.serveUnitList(w, r, "UnitsNeverLeased", false, h.db.UnitsNeverLeased)
}

// UnitsWithFutureLeases handles GET /analysis/units-with-future-leases
//
// @Summary Units with a lease starting after the reference date
// @Tags Analysis
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.UnitListResponse
// @Failure 400 {object} models.APIResponse "Invalid property_id or as_of"
// @Router /analysis/units-with-future-leases [get]
func (h *Handler) UnitsWithFutureLeases(w http.ResponseWriter, r *http.Request) {
	h.serveUnitList(w, r, "UnitsWithFutureLeases", true, h.db.UnitsWithFutureLeases)
}

// UnitsWithMultipleActiveLeases handles GET /analysis/units-with-multiple-active-leases
//
// @Summary Units with more than one lease active on the reference date
// @Tags Analysis
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.UnitListResponse
// @Failure 400 {object} models.APIResponse "Invalid property_id or as_of"
// @Router /analysis/units-with-multiple-active-leases [get]
func (h *Handler) UnitsWithMultipleActiveLeases(w http.ResponseWriter, r *http.Request) {
	h.serveUnitList(w, r, "UnitsWithMultipleActiveLeases", true, h.db.UnitsWithMultipleActiveLeases)
}

// DuplicateLeases handles GET /analysis/duplicate-leases
//
// @Summary Leases whose lease_id appears more than once
// @Tags Analysis
// @Produce json
// @Param property_id query int false "Restrict to one property"
// @Success 200 {object} models.LeaseListResponse
// @Failure 400 {object} models.APIResponse "Invalid property_id"
// @Router /analysis/duplicate-leases [get]
func (h *Handler) DuplicateLeases(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseAnalysisRequest(r)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	filter := models.AnalyticsFilter{PropertyID: req.propertyID()}
	h.executeAnalytics(w, r, "DuplicateLeases", filter,
		func(ctx context.Context, filter models.AnalyticsFilter) (interface{}, error) {
			leases, err := h.db.DuplicateLeases(ctx, filter)
			if err != nil {
				return nil, err
			}
			return models.NewLeaseListResponse(leases), nil
		})
}
