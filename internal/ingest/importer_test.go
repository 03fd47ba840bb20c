// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/models"
)

type fakeStore struct {
	mu       sync.Mutex
	calls    int
	snapshot *models.Snapshot
	stats    models.IngestStats
	err      error

	// block, when set, holds ReplaceAll until closed
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeStore) ReplaceAll(_ context.Context, snap *models.Snapshot, stats *models.IngestStats) error {
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.snapshot = snap
	f.stats = *stats
	return f.err
}

func newTestImporter(t *testing.T, store Store, onReplace func()) *Importer {
	t.Helper()
	dir := writeDataDir(t, sampleProperties, sampleUnits, sampleLeases)
	imp := NewImporter(&config.IngestConfig{DataDir: dir, DateLayout: config.DefaultDateLayout}, store, onReplace)

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	imp.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}
	return imp
}

func TestImporter_Run(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	replaced := 0
	imp := newTestImporter(t, store, func() { replaced++ })

	stats, err := imp.Run(context.Background(), TriggerAdmin)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Properties != 2 || stats.Units != 3 || stats.Leases != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Trigger != TriggerAdmin {
		t.Errorf("Trigger = %q", stats.Trigger)
	}
	if stats.DurationMS <= 0 {
		t.Errorf("DurationMS = %d, want > 0", stats.DurationMS)
	}
	if store.calls != 1 || len(store.snapshot.Leases) != 2 {
		t.Errorf("store saw %d calls, snapshot %+v", store.calls, store.snapshot)
	}
	if store.stats.FinishedAt.IsZero() {
		t.Error("stored stats should carry a finish time")
	}
	if replaced != 1 {
		t.Errorf("onReplace called %d times, want 1", replaced)
	}
	if last := imp.LastRun(); last == nil || last.Leases != 2 {
		t.Errorf("LastRun() = %+v", last)
	}
}

func TestImporter_StoreFailureKeepsPreviousRun(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("disk full")
	store := &fakeStore{err: storeErr}
	replaced := false
	imp := newTestImporter(t, store, func() { replaced = true })

	if _, err := imp.Run(context.Background(), TriggerSchedule); !errors.Is(err, storeErr) {
		t.Fatalf("Run() error = %v, want %v", err, storeErr)
	}
	if replaced {
		t.Error("onReplace must not run after a failed replace")
	}
	if imp.LastRun() != nil {
		t.Error("LastRun() should stay nil after failure")
	}
	if imp.IsRunning() {
		t.Error("IsRunning() should be false after Run returns")
	}
}

func TestImporter_BadDataNeverReachesStore(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	dir := writeDataDir(t, sampleProperties, sampleUnits,
		"lease_id,unit_id,tenant_id,start_date,end_date\n1,1,1,13/13/2024,01/01/2025\n")
	imp := NewImporter(&config.IngestConfig{DataDir: dir}, store, nil)

	_, err := imp.Run(context.Background(), TriggerSeed)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Run() error = %v, want ErrInvalidDate", err)
	}
	if store.calls != 0 {
		t.Errorf("store called %d times", store.calls)
	}
}

func TestImporter_RejectsConcurrentRun(t *testing.T) {
	t.Parallel()

	store := &fakeStore{block: make(chan struct{}), entered: make(chan struct{})}
	imp := newTestImporter(t, store, nil)

	done := make(chan error, 1)
	go func() {
		_, err := imp.Run(context.Background(), TriggerStartup)
		done <- err
	}()

	<-store.entered
	if !imp.IsRunning() {
		t.Error("IsRunning() = false during a run")
	}
	if _, err := imp.Run(context.Background(), TriggerAdmin); !errors.Is(err, ErrIngestRunning) {
		t.Errorf("second Run() error = %v, want ErrIngestRunning", err)
	}

	close(store.block)
	if err := <-done; err != nil {
		t.Errorf("first Run() error = %v", err)
	}
}
