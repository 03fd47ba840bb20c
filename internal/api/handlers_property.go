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

// PropertyOccupancy handles GET /property/{id}/occupancy
//
// @Summary Quarterly occupancy of a property
// @Description Returns the occupancy rate of each quarter of the reporting year (the calendar year before as_of). Rates are the share of the property's units with at least one lease overlapping the quarter.
// @Tags Property
// @Produce json
// @Param id path int true "Property ID"
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.PropertyOccupancyResponse
// @Failure 400 {object} models.APIResponse "Invalid id or as_of"
// @Failure 404 {object} models.APIResponse "Property not found or has no units"
// @Failure 503 {object} models.APIResponse "Database unavailable"
// @Router /property/{id}/occupancy [get]
func (h *Handler) PropertyOccupancy(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parsePropertyRequest(r)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	filter := models.AnalyticsFilter{PropertyID: req.PropertyID, AsOf: h.resolveAsOf(req.AsOf)}
	h.executeAnalytics(w, r, "PropertyOccupancy", filter,
		func(ctx context.Context, filter models.AnalyticsFilter) (interface{}, error) {
			rows, err := h.db.Occupancy(ctx, filter)
			if err != nil {
				return nil, err
			}
			resp := models.NewPropertyOccupancyResponse(rows)
			if resp == nil {
				return nil, ErrPropertyNotFound
			}
			return resp, nil
		})
}

// PropertyLeaseDuration handles GET /property/{id}/lease-duration
//
// @Summary Average lease duration of a property
// @Description Returns the mean of (end_date - start_date) in days over every lease of the property's units, rounded to two decimals.
// @Tags Property
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.PropertyLeaseDurationResponse
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 404 {object} models.APIResponse "Property not found or has no leases"
// @Failure 503 {object} models.APIResponse "Database unavailable"
// @Router /property/{id}/lease-duration [get]
func (h *Handler) PropertyLeaseDuration(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parsePropertyRequest(r)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	filter := models.AnalyticsFilter{PropertyID: req.PropertyID}
	h.executeAnalytics(w, r, "PropertyLeaseDuration", filter,
		func(ctx context.Context, filter models.AnalyticsFilter) (interface{}, error) {
			rows, err := h.db.AverageLeaseDuration(ctx, filter)
			if err != nil {
				return nil, err
			}
			if len(rows) == 0 {
				return nil, ErrPropertyNotFound
			}
			return &models.PropertyLeaseDurationResponse{
				PropertyID:               rows[0].PropertyID,
				PropertyName:             rows[0].PropertyName,
				AverageLeaseDurationDays: rows[0].AverageLeaseDurationDays,
			}, nil
		})
}
