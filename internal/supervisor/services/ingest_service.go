// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tenancy/internal/ingest"
	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/models"
)

// IngestRunner runs one ingestion. Satisfied by *ingest.Importer.
type IngestRunner interface {
	Run(ctx context.Context, trigger string) (*models.IngestStats, error)
}

// IngestSchedulerService re-runs CSV ingestion on a cron schedule.
//
// The schedule uses standard five-field cron syntax or descriptors such as
// "@hourly" and "@every 30m", evaluated in UTC. Overlapping ticks are
// skipped; on shutdown a run in progress gets stopTimeout to finish.
type IngestSchedulerService struct {
	runner      IngestRunner
	schedule    string
	stopTimeout time.Duration
	name        string
}

// NewIngestSchedulerService validates schedule and wraps runner.
func NewIngestSchedulerService(runner IngestRunner, schedule string) (*IngestSchedulerService, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid ingest schedule %q: %w", schedule, err)
	}
	return &IngestSchedulerService{
		runner:      runner,
		schedule:    schedule,
		stopTimeout: 30 * time.Second,
		name:        "ingest-scheduler",
	}, nil
}

// Serve implements suture.Service.
func (s *IngestSchedulerService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.name)
	cl := cronLogger{log: log}

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(s.schedule, func() { s.runOnce(ctx, log) }); err != nil {
		return fmt.Errorf("ingest scheduler: %w", err)
	}

	c.Start()
	log.Info().Str("schedule", s.schedule).Msg("Ingest scheduler started")

	<-ctx.Done()

	select {
	case <-c.Stop().Done():
	case <-time.After(s.stopTimeout):
		log.Warn().Dur("timeout", s.stopTimeout).Msg("Scheduled ingestion still running at shutdown")
	}
	return ctx.Err()
}

func (s *IngestSchedulerService) runOnce(ctx context.Context, log zerolog.Logger) {
	if ctx.Err() != nil {
		return
	}
	_, err := s.runner.Run(ctx, ingest.TriggerSchedule)
	switch {
	case errors.Is(err, ingest.ErrIngestRunning):
		log.Info().Msg("Scheduled ingestion skipped: another run is in progress")
	case err != nil:
		// the importer already logged the failure; the schedule keeps going
		log.Debug().Err(err).Msg("Scheduled ingestion failed")
	}
}

// String identifies the service in supervisor events.
func (s *IngestSchedulerService) String() string {
	return s.name
}

// cronLogger adapts zerolog to cron.Logger. cron's info messages are per-tick
// chatter and go to debug.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
