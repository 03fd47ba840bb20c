// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package models

import (
	"time"
)

// AnalyticsFilter narrows an analytics query.
//
// PropertyID of zero means all properties. AsOf is the reference date for
// checks that depend on "today" and for choosing the occupancy reporting year;
// only its calendar date is used.
type AnalyticsFilter struct {
	PropertyID int64     `json:"property_id,omitempty"`
	AsOf       time.Time `json:"as_of"`
}

// HasProperty reports whether the filter is restricted to one property.
func (f AnalyticsFilter) HasProperty() bool {
	return f.PropertyID > 0
}

// OccupancyRow is one (property, quarter) cell of the occupancy report.
type OccupancyRow struct {
	PropertyID    int64   `json:"property_id"`
	PropertyName  string  `json:"property_name"`
	Quarter       string  `json:"quarter"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// LeaseDurationRow is the average lease length of one property.
type LeaseDurationRow struct {
	PropertyID               int64   `json:"property_id"`
	PropertyName             string  `json:"property_name"`
	AverageLeaseDurationDays float64 `json:"average_lease_duration_days"`
}

// UnitRef identifies a unit in anomaly reports.
type UnitRef struct {
	UnitID     int64  `json:"unit_id"`
	UnitNumber string `json:"unit_number"`
}

// LeaseRef identifies a lease row in the duplicate report.
type LeaseRef struct {
	LeaseID  int64 `json:"lease_id"`
	UnitID   int64 `json:"unit_id"`
	TenantID int64 `json:"tenant_id"`
}

// QuarterlyOccupancy is one entry of PropertyOccupancyResponse.
type QuarterlyOccupancy struct {
	Quarter       string  `json:"quarter"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// PropertyOccupancyResponse is the body of GET /property/{id}/occupancy.
type PropertyOccupancyResponse struct {
	PropertyID     int64                `json:"property_id"`
	PropertyName   string               `json:"property_name"`
	QuarterlyRates []QuarterlyOccupancy `json:"quarterly_rates"`
}

// PropertyLeaseDurationResponse is the body of GET /property/{id}/lease-duration.
type PropertyLeaseDurationResponse struct {
	PropertyID               int64   `json:"property_id"`
	PropertyName             string  `json:"property_name"`
	AverageLeaseDurationDays float64 `json:"average_lease_duration_days"`
}

// UnitListResponse is the body of the unit anomaly endpoints.
type UnitListResponse struct {
	Count int       `json:"count"`
	Units []UnitRef `json:"units"`
}

// LeaseListResponse is the body of GET /analysis/duplicate-leases.
type LeaseListResponse struct {
	Count  int        `json:"count"`
	Leases []LeaseRef `json:"leases"`
}

// NewPropertyOccupancyResponse folds the rows of a single property into the
// response shape. It returns nil for an empty slice.
func NewPropertyOccupancyResponse(rows []OccupancyRow) *PropertyOccupancyResponse {
	if len(rows) == 0 {
		return nil
	}
	resp := &PropertyOccupancyResponse{
		PropertyID:     rows[0].PropertyID,
		PropertyName:   rows[0].PropertyName,
		QuarterlyRates: make([]QuarterlyOccupancy, 0, len(rows)),
	}
	for _, row := range rows {
		resp.QuarterlyRates = append(resp.QuarterlyRates, QuarterlyOccupancy{
			Quarter:       row.Quarter,
			OccupancyRate: row.OccupancyRate,
		})
	}
	return resp
}

// NewUnitListResponse never returns a nil Units slice so the JSON is [] rather than null.
func NewUnitListResponse(units []UnitRef) *UnitListResponse {
	if units == nil {
		units = []UnitRef{}
	}
	return &UnitListResponse{Count: len(units), Units: units}
}

// NewLeaseListResponse never returns a nil Leases slice.
func NewLeaseListResponse(leases []LeaseRef) *LeaseListResponse {
	if leases == nil {
		leases = []LeaseRef{}
	}
	return &LeaseListResponse{Count: len(leases), Leases: leases}
}
