// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantLabel string
	}{
		{
			name:      "successful occupancy query",
			operation: "occupancy",
			table:     "leases",
		},
		{
			name:      "failed query with short error",
			operation: "units_never_leased",
			table:     "units",
			err:       errors.New("connection refused"),
			wantLabel: "connection refused",
		},
		{
			name:      "failed query with long error is truncated",
			operation: "duplicate_leases",
			table:     "leases",
			err:       errors.New(strings.Repeat("x", 80)),
			wantLabel: strings.Repeat("x", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CollectAndCount(DBQueryDuration)
			RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)

			if testutil.CollectAndCount(DBQueryDuration) < before {
				t.Error("histogram series should not disappear")
			}
			if tt.err == nil {
				return
			}
			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantLabel))
			if got < 1 {
				t.Errorf("expected error counter for label %q to be >= 1, got %v", tt.wantLabel, got)
			}
		})
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/analysis/duplicate-leases", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/analysis/duplicate-leases", "200", 12*time.Millisecond)
	RecordAPIRequest("GET", "/analysis/duplicate-leases", "200", 8*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 new requests, got %v", got)
	}
}

// TestTrackActiveRequest tests the in-flight gauge
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("expected gauge +2, got %v", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected gauge back to %v, got %v", before, got)
	}
}

// TestRecordIngest tests ingestion outcome metrics
func TestRecordIngest(t *testing.T) {
	success := IngestRuns.WithLabelValues("manual", "success")
	failure := IngestRuns.WithLabelValues("manual", "failure")
	successBefore := testutil.ToFloat64(success)
	failureBefore := testutil.ToFloat64(failure)

	RecordIngest("manual", time.Second, map[string]int{"units": 12, "leases": 30}, 1, nil)

	if got := testutil.ToFloat64(success) - successBefore; got != 1 {
		t.Errorf("expected one success, got %v", got)
	}
	if got := testutil.ToFloat64(DBTableRows.WithLabelValues("units")); got != 12 {
		t.Errorf("expected units gauge 12, got %v", got)
	}
	if testutil.ToFloat64(IngestLastSuccess) == 0 {
		t.Error("expected last success timestamp to be set")
	}

	RecordIngest("manual", time.Second, map[string]int{"units": 999}, 0, errors.New("bad date"))

	if got := testutil.ToFloat64(failure) - failureBefore; got != 1 {
		t.Errorf("expected one failure, got %v", got)
	}
	if got := testutil.ToFloat64(DBTableRows.WithLabelValues("units")); got != 12 {
		t.Errorf("failed run must not touch row gauges, got %v", got)
	}
}
