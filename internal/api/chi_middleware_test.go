// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/tenancy/internal/config"
)

func TestNewChiMiddlewareFromConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromConfig(&config.SecurityConfig{
		CORSOrigins:     []string{"https://app.example.com"},
		RateLimitReqs:   7,
		RateLimitWindow: 2 * time.Minute,
	})
	if m.config.RateLimitRequests != 7 || m.config.RateLimitWindow != 2*time.Minute {
		t.Errorf("rate limit = %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}

	defaults := NewChiMiddlewareFromConfig(&config.SecurityConfig{})
	if defaults.config.RateLimitRequests != 100 || defaults.config.RateLimitWindow != time.Minute {
		t.Errorf("zero config should keep defaults, got %d/%v",
			defaults.config.RateLimitRequests, defaults.config.RateLimitWindow)
	}
}

func TestRateLimitCustom(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limited := NewChiMiddleware(nil).RateLimitCustom(RateLimitConfig{Requests: 2, Window: time.Minute})(ok)
	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	disabled := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true}).
		RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(ok)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		disabled.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("disabled limiter returned %d", w.Code)
		}
	}
}

func TestRateLimitExceeded_Envelope(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rateLimitExceeded(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assertError(t, w, http.StatusTooManyRequests, codeRateLimited)
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	h.config.Security.CORSOrigins = []string{"https://app.example.com"}
	srv := newTestServer(h)

	w := doRequest(t, srv, http.MethodOptions, "/analysis/duplicate-leases", http.Header{
		"Origin":                        {"https://app.example.com"},
		"Access-Control-Request-Method": {"GET"},
	})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRateLimitAnalytics_UsesConfiguredLimit(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	m := NewChiMiddlewareFromConfig(&config.SecurityConfig{RateLimitReqs: 1, RateLimitWindow: time.Minute})
	limited := m.RateLimitAnalytics()(ok)

	first := httptest.NewRecorder()
	limited.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/analysis/duplicate-leases", nil))
	second := httptest.NewRecorder()
	limited.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/analysis/duplicate-leases", nil))

	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Errorf("status codes = [%d %d], want [200 429]", first.Code, second.Code)
	}
}
