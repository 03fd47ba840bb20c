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

// Inner joins on purpose: a property with no leases has no average and is
// left out, unlike the occupancy report which zero-fills.
const leaseDurationSQL = `
SELECT
	p.property_id,
	p.property_name,
	ROUND(AVG(date_diff('day', l.start_date, l.end_date)), 2) AS avg_duration_days
FROM properties p
JOIN units u ON u.property_id = p.property_id
JOIN leases l ON l.unit_id = u.unit_id
%s
GROUP BY p.property_id, p.property_name
ORDER BY p.property_id
`

// AverageLeaseDuration returns the mean end-minus-start length in days of all
// leases per property, rounded to two decimals.
func (db *DB) AverageLeaseDuration(ctx context.Context, filter models.AnalyticsFilter) ([]models.LeaseDurationRow, error) {
	where, args := query.NewWhereBuilder().
		AddPropertyID("p.property_id", filter.PropertyID).
		BuildWithPrefix()

	rows, err := runAnalytics(ctx, db, "lease_duration", "leases", fmt.Sprintf(leaseDurationSQL, where), args,
		func(rows rowScanner) (models.LeaseDurationRow, error) {
			var r models.LeaseDurationRow
			err := rows.Scan(&r.PropertyID, &r.PropertyName, &r.AverageLeaseDurationDays)
			return r, err
		})
	if err != nil {
		return nil, fmt.Errorf("lease duration query failed: %w", err)
	}
	return rows, nil
}
