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

// occupancySQL produces one row per property and reporting quarter.
//
// The quarter windows arrive as parameters. unit_counts is a left join so a
// property without units still appears (rate 0); occupied is left-joined so a
// quarter without any overlapping lease reports 0 instead of disappearing.
const occupancySQL = `
WITH quarters(quarter_label, q_start, q_end) AS (
	VALUES
		(CAST(? AS VARCHAR), CAST(? AS DATE), CAST(? AS DATE)),
		(CAST(? AS VARCHAR), CAST(? AS DATE), CAST(? AS DATE)),
		(CAST(? AS VARCHAR), CAST(? AS DATE), CAST(? AS DATE)),
		(CAST(? AS VARCHAR), CAST(? AS DATE), CAST(? AS DATE))
),
unit_counts AS (
	SELECT p.property_id, p.property_name, COUNT(u.unit_id) AS total_units
	FROM properties p
	LEFT JOIN units u ON u.property_id = p.property_id
	GROUP BY p.property_id, p.property_name
),
occupied AS (
	SELECT u.property_id, q.quarter_label, COUNT(DISTINCT u.unit_id) AS occupied_units
	FROM units u
	JOIN leases l ON l.unit_id = u.unit_id
	JOIN quarters q ON l.start_date <= q.q_end AND l.end_date >= q.q_start
	GROUP BY u.property_id, q.quarter_label
)
SELECT
	uc.property_id,
	uc.property_name,
	q.quarter_label,
	CASE
		WHEN uc.total_units = 0 THEN 0.0
		ELSE CAST(COALESCE(o.occupied_units, 0) AS DOUBLE) / uc.total_units
	END AS occupancy_rate
FROM unit_counts uc
CROSS JOIN quarters q
LEFT JOIN occupied o ON o.property_id = uc.property_id AND o.quarter_label = q.quarter_label
%s
ORDER BY uc.property_id, q.quarter_label
`

// Occupancy computes the quarterly occupancy rate of every property (or of
// filter.PropertyID) over the reporting year derived from filter.AsOf.
//
// An unknown property yields an empty slice, not an error.
func (db *DB) Occupancy(ctx context.Context, filter models.AnalyticsFilter) ([]models.OccupancyRow, error) {
	quarters := ReportingQuarters(filter.AsOf)

	args := make([]interface{}, 0, 13)
	for _, q := range quarters {
		args = append(args, q.Label, query.Date(q.Start), query.Date(q.End))
	}

	where, whereArgs := query.NewWhereBuilder().
		AddPropertyID("uc.property_id", filter.PropertyID).
		BuildWithPrefix()
	args = append(args, whereArgs...)

	rows, err := runAnalytics(ctx, db, "occupancy", "leases", fmt.Sprintf(occupancySQL, where), args,
		func(rows rowScanner) (models.OccupancyRow, error) {
			var r models.OccupancyRow
			err := rows.Scan(&r.PropertyID, &r.PropertyName, &r.Quarter, &r.OccupancyRate)
			return r, err
		})
	if err != nil {
		return nil, fmt.Errorf("occupancy query failed: %w", err)
	}
	return rows, nil
}
