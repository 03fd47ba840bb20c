// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/tenancy/internal/models"
)

func TestPropertyOccupancy(t *testing.T) {
	t.Parallel()

	srv := newTestServer(newTestHandler(t, setupTestDB(t)))

	tests := []struct {
		name      string
		target    string
		wantName  string
		wantRates []float64
		wantYear  string
	}{
		{
			name:      "default as_of reports 2024",
			target:    "/property/1/occupancy",
			wantName:  "Harbor View",
			wantRates: []float64{0.5, 0, 0, 0},
			wantYear:  "2024",
		},
		{
			name:      "explicit as_of reports 2025",
			target:    "/property/1/occupancy?as_of=2026-03-01",
			wantName:  "Harbor View",
			wantRates: []float64{0, 1.0 / 2, 1.0 / 2, 0},
			wantYear:  "2025",
		},
		{
			name:      "property without units is zero filled",
			target:    "/property/3/occupancy",
			wantName:  "Empty Lot",
			wantRates: []float64{0, 0, 0, 0},
			wantYear:  "2024",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodGet, tt.target, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			resp := decodeBody[models.PropertyOccupancyResponse](t, w)
			if resp.PropertyName != tt.wantName {
				t.Errorf("property_name = %q, want %q", resp.PropertyName, tt.wantName)
			}
			if len(resp.QuarterlyRates) != 4 {
				t.Fatalf("got %d quarters, want 4", len(resp.QuarterlyRates))
			}
			for i, q := range resp.QuarterlyRates {
				wantLabel := tt.wantYear + "-Q" + string(rune('1'+i))
				if q.Quarter != wantLabel {
					t.Errorf("quarter[%d] = %q, want %q", i, q.Quarter, wantLabel)
				}
				if q.OccupancyRate != tt.wantRates[i] {
					t.Errorf("%s rate = %v, want %v", q.Quarter, q.OccupancyRate, tt.wantRates[i])
				}
			}
		})
	}
}

func TestPropertyOccupancy_Errors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(newTestHandler(t, setupTestDB(t)))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"unknown property", "/property/99/occupancy", http.StatusNotFound, codeNotFound, "Property with ID 99 not found"},
		{"non-integer id", "/property/abc/occupancy", http.StatusBadRequest, codeValidation, "id must be an integer"},
		{"zero id", "/property/0/occupancy", http.StatusBadRequest, codeValidation, "id must be greater than 0"},
		{"negative id", "/property/-4/occupancy", http.StatusBadRequest, codeValidation, "id must be greater than 0"},
		{"malformed as_of", "/property/1/occupancy?as_of=15/06/2025", http.StatusBadRequest, codeValidation, "as_of must be a date in YYYY-MM-DD format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodGet, tt.target, nil)
			resp := assertError(t, w, tt.wantStatus, tt.wantCode)
			if resp.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.wantMsg)
			}
			if got := w.Header().Get("Cache-Control"); got != cacheControlNoStore {
				t.Errorf("Cache-Control = %q, want %q", got, cacheControlNoStore)
			}
		})
	}
}

func TestPropertyLeaseDuration(t *testing.T) {
	t.Parallel()

	srv := newTestServer(newTestHandler(t, setupTestDB(t)))

	tests := []struct {
		name   string
		target string
		want   models.PropertyLeaseDurationResponse
	}{
		{
			// 30, 30 (duplicate), 29 and 30 days
			name:   "duplicates count toward the average",
			target: "/property/1/lease-duration",
			want:   models.PropertyLeaseDurationResponse{PropertyID: 1, PropertyName: "Harbor View", AverageLeaseDurationDays: 29.75},
		},
		{
			name:   "as_of is ignored",
			target: "/property/2/lease-duration?as_of=2000-01-01",
			want:   models.PropertyLeaseDurationResponse{PropertyID: 2, PropertyName: "Elm Court", AverageLeaseDurationDays: 364},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodGet, tt.target, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if got := decodeBody[models.PropertyLeaseDurationResponse](t, w); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("property without leases", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/property/3/lease-duration", nil)
		resp := assertError(t, w, http.StatusNotFound, codeNotFound)
		if resp.Error.Message != "Property with ID 3 not found" {
			t.Errorf("message = %q", resp.Error.Message)
		}
	})
}

func TestPropertyRoutes_NoDatabase(t *testing.T) {
	t.Parallel()

	srv := newTestServer(newTestHandler(t, nil))
	for _, target := range []string{"/property/1/occupancy", "/property/1/lease-duration"} {
		w := doRequest(t, srv, http.MethodGet, target, nil)
		assertError(t, w, http.StatusServiceUnavailable, codeUnavailable)
	}
}
