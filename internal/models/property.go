// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

// Package models holds the domain records stored in the database and the
// response types served by the API.
package models

import (
	"time"
)

// Property is a managed real-estate asset containing units.
type Property struct {
	PropertyID   int64  `json:"property_id"`
	PropertyName string `json:"property_name"`
	Address      string `json:"address"`
}

// Unit is a leasable space within a property. Size and Type are optional in
// the source data.
type Unit struct {
	UnitID     int64   `json:"unit_id"`
	PropertyID int64   `json:"property_id"`
	UnitNumber string  `json:"unit_number"`
	Size       *int64  `json:"size,omitempty"`
	Type       *string `json:"type,omitempty"`
}

// Lease binds a tenant to a unit for an inclusive date range.
//
// LeaseID is not unique in storage: repeated ids are a data-quality problem
// reported by the duplicate-lease check rather than rejected at load time.
type Lease struct {
	LeaseID   int64     `json:"lease_id"`
	UnitID    int64     `json:"unit_id"`
	TenantID  int64     `json:"tenant_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DurationDays is EndDate minus StartDate in whole days.
func (l *Lease) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours() / 24)
}

// ActiveOn reports whether day falls inside [StartDate, EndDate].
func (l *Lease) ActiveOn(day time.Time) bool {
	return !day.Before(l.StartDate) && !day.After(l.EndDate)
}

// Snapshot is one complete set of tables loaded from CSV. Ingestion always
// replaces the stored tables with a snapshot as a whole.
type Snapshot struct {
	Properties []Property
	Units      []Unit
	Leases     []Lease
}
