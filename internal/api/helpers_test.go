// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/database"
	"github.com/tomtom215/tenancy/internal/models"
)

// testDBSemaphore serializes DuckDB instances across parallel tests.
var testDBSemaphore = make(chan struct{}, 1)

// testNow puts the default as_of at 2025-06-15, so the occupancy reporting
// year is 2024.
var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testSnapshot:
//
//	property 1: units 1 and 2; unit 2 is never leased
//	property 2: unit 3 with a lease starting 2025-09-01
//	property 3: no units
//
// lease 5 is stored twice; leases 10 and 11 overlap on 2025-06-15.
func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Properties: []models.Property{
			{PropertyID: 1, PropertyName: "Harbor View", Address: "1 Quay Street"},
			{PropertyID: 2, PropertyName: "Elm Court", Address: "22 Elm Road"},
			{PropertyID: 3, PropertyName: "Empty Lot", Address: "3 Vacant Way"},
		},
		Units: []models.Unit{
			{UnitID: 1, PropertyID: 1, UnitNumber: "101"},
			{UnitID: 2, PropertyID: 1, UnitNumber: "102"},
			{UnitID: 3, PropertyID: 2, UnitNumber: "201"},
		},
		Leases: []models.Lease{
			{LeaseID: 5, UnitID: 1, TenantID: 100, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31)},
			{LeaseID: 5, UnitID: 1, TenantID: 100, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31)},
			{LeaseID: 10, UnitID: 1, TenantID: 101, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 30)},
			{LeaseID: 11, UnitID: 1, TenantID: 102, StartDate: day(2025, 6, 10), EndDate: day(2025, 7, 10)},
			{LeaseID: 12, UnitID: 3, TenantID: 103, StartDate: day(2025, 9, 1), EndDate: day(2026, 8, 31)},
		},
	}
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := database.New(&config.DatabaseConfig{
		Path:        ":memory:",
		MaxMemory:   "512MB",
		Threads:     2,
		SkipIndexes: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	if err := db.ReplaceAll(context.Background(), testSnapshot(), nil); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		API:      config.APIConfig{CacheTTL: time.Minute},
		Security: config.SecurityConfig{RateLimitDisabled: true},
		Ingest:   config.IngestConfig{ReloadInterval: time.Hour},
	}
}

func newTestHandler(t *testing.T, db *database.DB) *Handler {
	t.Helper()
	h := NewHandler(db, testConfig())
	h.now = func() time.Time { return testNow }
	t.Cleanup(h.Close)
	return h
}

func newTestServer(h *Handler) http.Handler {
	return NewRouter(h, NewChiMiddlewareFromConfig(&h.config.Security)).SetupChi()
}

func doRequest(t *testing.T, srv http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return v
}

// assertError checks status and envelope code of an error response.
func assertError(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) *models.APIResponse {
	t.Helper()
	if w.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, wantStatus, w.Body.String())
	}
	resp := decodeBody[models.APIResponse](t, w)
	if resp.Status != "error" || resp.Error == nil {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
	if resp.Error.Code != wantCode {
		t.Errorf("error code = %q, want %q", resp.Error.Code, wantCode)
	}
	return &resp
}
