// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/tenancy/internal/database/query"
	"github.com/tomtom215/tenancy/internal/models"
)

func scanUnitRef(rows rowScanner) (models.UnitRef, error) {
	var u models.UnitRef
	err := rows.Scan(&u.UnitID, &u.UnitNumber)
	return u, err
}

func scanLeaseRef(rows rowScanner) (models.LeaseRef, error) {
	var l models.LeaseRef
	err := rows.Scan(&l.LeaseID, &l.UnitID, &l.TenantID)
	return l, err
}

// UnitsNeverLeased returns units with no lease row at all, ordered by unit_id.
// The check is independent of any reference date.
func (db *DB) UnitsNeverLeased(ctx context.Context, filter models.AnalyticsFilter) ([]models.UnitRef, error) {
	where, args := query.NewWhereBuilder().
		AddClause("NOT EXISTS (SELECT 1 FROM leases l WHERE l.unit_id = u.unit_id)").
		AddPropertyID("u.property_id", filter.PropertyID).
		BuildWithPrefix()

	sql := `SELECT u.unit_id, u.unit_number FROM units u ` + where + ` ORDER BY u.unit_id`

	units, err := runAnalytics(ctx, db, "units_never_leased", "units", sql, args, scanUnitRef)
	if err != nil {
		return nil, fmt.Errorf("units never leased query failed: %w", err)
	}
	return units, nil
}

// UnitsWithFutureLeases returns units holding at least one lease that starts
// strictly after filter.AsOf.
func (db *DB) UnitsWithFutureLeases(ctx context.Context, filter models.AnalyticsFilter) ([]models.UnitRef, error) {
	inner, innerArgs := query.NewWhereBuilder().
		AddClause("l.unit_id = u.unit_id").
		AddDateAfter("l.start_date", filter.AsOf).
		Build()

	where, args := query.NewWhereBuilder().
		AddClause("EXISTS (SELECT 1 FROM leases l WHERE "+inner+")", innerArgs...).
		AddPropertyID("u.property_id", filter.PropertyID).
		BuildWithPrefix()

	sql := `SELECT u.unit_id, u.unit_number FROM units u ` + where + ` ORDER BY u.unit_id`

	units, err := runAnalytics(ctx, db, "units_with_future_leases", "leases", sql, args, scanUnitRef)
	if err != nil {
		return nil, fmt.Errorf("units with future leases query failed: %w", err)
	}
	return units, nil
}

// UnitsWithMultipleActiveLeases returns units with more than one lease row
// active on filter.AsOf (start <= asOf <= end). Repeated rows of the same
// lease_id count separately.
func (db *DB) UnitsWithMultipleActiveLeases(ctx context.Context, filter models.AnalyticsFilter) ([]models.UnitRef, error) {
	where, args := query.NewWhereBuilder().
		AddDateOnOrBefore("l.start_date", filter.AsOf).
		AddDateOnOrAfter("l.end_date", filter.AsOf).
		AddPropertyID("u.property_id", filter.PropertyID).
		BuildWithPrefix()

	sql := `SELECT u.unit_id, u.unit_number
		FROM units u
		JOIN leases l ON l.unit_id = u.unit_id
		` + where + `
		GROUP BY u.unit_id, u.unit_number
		HAVING COUNT(*) > 1
		ORDER BY u.unit_id`

	units, err := runAnalytics(ctx, db, "units_with_multiple_active_leases", "leases", sql, args, scanUnitRef)
	if err != nil {
		return nil, fmt.Errorf("units with multiple active leases query failed: %w", err)
	}
	return units, nil
}

// DuplicateLeases returns every lease row whose lease_id occurs at least
// twice. With a property filter both the counting and the returned rows are
// limited to leases on that property's units, so every id in the result
// still appears at least twice.
func (db *DB) DuplicateLeases(ctx context.Context, filter models.AnalyticsFilter) ([]models.LeaseRef, error) {
	scope, args := query.NewWhereBuilder().
		AddPropertyID("u.property_id", filter.PropertyID).
		Build()

	sql := `WITH scoped AS (
			SELECT l.lease_id, l.unit_id, l.tenant_id
			FROM leases l
			LEFT JOIN units u ON u.unit_id = l.unit_id
			WHERE ` + scope + `
		),
		dup_ids AS (
			SELECT lease_id FROM scoped GROUP BY lease_id HAVING COUNT(*) > 1
		)
		SELECT s.lease_id, s.unit_id, s.tenant_id
		FROM scoped s
		JOIN dup_ids d ON d.lease_id = s.lease_id
		ORDER BY s.lease_id, s.unit_id, s.tenant_id`

	leases, err := runAnalytics(ctx, db, "duplicate_leases", "leases", sql, args, scanLeaseRef)
	if err != nil {
		return nil, fmt.Errorf("duplicate leases query failed: %w", err)
	}
	return leases, nil
}
