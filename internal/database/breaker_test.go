// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
)

func TestIsConnectionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"bad conn", driver.ErrBadConn, true},
		{"wrapped bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), true},
		{"closed", errors.New("sql: database is closed"), true},
		{"syntax", errors.New("Parser Error: syntax error at or near \"SELEC\""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isConnectionError(tt.err); got != tt.want {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestQueryBreaker_TripsOnConnectionErrors(t *testing.T) {
	t.Parallel()

	b := newQueryBreaker("test-trip")
	fail := func() (int, error) { return 0, driver.ErrBadConn }

	for i := 0; i < 5; i++ {
		if _, err := execute(b, fail); !errors.Is(err, driver.ErrBadConn) {
			t.Fatalf("call %d error = %v, want ErrBadConn", i, err)
		}
	}

	if got := stateToString(b.cb.State()); got != "open" {
		t.Fatalf("state = %s, want open", got)
	}

	called := false
	_, err := execute(b, func() (int, error) {
		called = true
		return 1, nil
	})
	if !errors.Is(err, ErrDatabaseUnavailable) {
		t.Errorf("open breaker error = %v, want ErrDatabaseUnavailable", err)
	}
	if called {
		t.Error("open breaker must not run the query")
	}
}

func TestQueryBreaker_IgnoresQueryErrors(t *testing.T) {
	t.Parallel()

	b := newQueryBreaker("test-query-errors")
	queryErr := errors.New("Binder Error: column not found")

	for i := 0; i < 10; i++ {
		if _, err := execute(b, func() (string, error) { return "", queryErr }); !errors.Is(err, queryErr) {
			t.Fatalf("call %d error = %v", i, err)
		}
	}
	if got := stateToString(b.cb.State()); got != "closed" {
		t.Errorf("state = %s, want closed", got)
	}

	got, err := execute(b, func() (string, error) { return "ok", nil })
	if err != nil || got != "ok" {
		t.Errorf("execute() = %q, %v", got, err)
	}
}

func TestExecute_NilBreaker(t *testing.T) {
	t.Parallel()

	got, err := execute(nil, func() ([]int, error) { return []int{1, 2}, nil })
	if err != nil || len(got) != 2 {
		t.Errorf("execute(nil) = %v, %v", got, err)
	}
}
