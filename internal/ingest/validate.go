// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package ingest

import (
	"fmt"

	"github.com/tomtom215/tenancy/internal/database/query"
	"github.com/tomtom215/tenancy/internal/models"
)

// Validate checks referential integrity of a snapshot.
//
// Repeated property or unit ids are fatal. Dangling references and leases
// ending before they start are returned as warnings and the rows are kept.
// Repeated lease ids are neither: the duplicate-lease report exists to find them.
func Validate(snap *models.Snapshot) ([]string, error) {
	var warnings []string

	properties := make(map[int64]struct{}, len(snap.Properties))
	for _, p := range snap.Properties {
		if _, seen := properties[p.PropertyID]; seen {
			return nil, fmt.Errorf("%s: %w: property_id %d", PropertiesFile, ErrDuplicateID, p.PropertyID)
		}
		properties[p.PropertyID] = struct{}{}
	}

	units := make(map[int64]struct{}, len(snap.Units))
	for _, u := range snap.Units {
		if _, seen := units[u.UnitID]; seen {
			return nil, fmt.Errorf("%s: %w: unit_id %d", UnitsFile, ErrDuplicateID, u.UnitID)
		}
		units[u.UnitID] = struct{}{}
		if _, ok := properties[u.PropertyID]; !ok {
			warnings = append(warnings, fmt.Sprintf("unit %d references unknown property %d", u.UnitID, u.PropertyID))
		}
	}

	for _, l := range snap.Leases {
		if _, ok := units[l.UnitID]; !ok {
			warnings = append(warnings, fmt.Sprintf("lease %d references unknown unit %d", l.LeaseID, l.UnitID))
		}
		if l.EndDate.Before(l.StartDate) {
			warnings = append(warnings, fmt.Sprintf("lease %d ends %s before it starts %s",
				l.LeaseID, query.Date(l.EndDate), query.Date(l.StartDate)))
		}
	}

	return warnings, nil
}
