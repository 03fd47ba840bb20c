// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"fmt"
	"time"
)

// Quarter is an inclusive calendar-date window.
type Quarter struct {
	Label string
	Start time.Time
	End   time.Time
}

// ReportingYear is the calendar year the occupancy report covers for a given
// reference date: the year containing asOf minus one year.
func ReportingYear(asOf time.Time) int {
	return asOf.AddDate(-1, 0, 0).Year()
}

// ReportingQuarters returns Jan–Mar, Apr–Jun, Jul–Sep and Oct–Dec of the
// reporting year, in order. Boundaries are dates in UTC.
func ReportingQuarters(asOf time.Time) [4]Quarter {
	year := ReportingYear(asOf)

	var quarters [4]Quarter
	for i := range quarters {
		firstMonth := time.Month(3*i + 1)
		start := time.Date(year, firstMonth, 1, 0, 0, 0, 0, time.UTC)
		// day 0 of the month after the quarter is its last day
		end := time.Date(year, firstMonth+3, 0, 0, 0, 0, 0, time.UTC)
		quarters[i] = Quarter{
			Label: fmt.Sprintf("%04d-Q%d", year, i+1),
			Start: start,
			End:   end,
		}
	}
	return quarters
}

// Overlaps applies the inclusive interval test used for occupancy:
// start <= q.End and end >= q.Start.
func (q Quarter) Overlaps(start, end time.Time) bool {
	return !start.After(q.End) && !end.Before(q.Start)
}
