// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

/*
Package services provides suture.Service wrappers for Tenancy components.

Each wrapper translates a component's own lifecycle into suture's
context-aware Serve method and implements fmt.Stringer so supervisor events
name the service.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with a bounded timeout when the context is canceled
  - Treats http.ErrServerClosed as a clean stop

Ingest Scheduler (IngestSchedulerService):
  - Runs ingestion on a robfig/cron schedule in UTC
  - Skips a tick while the previous run is still going
  - Logs failed runs and keeps the schedule; previous data stays served

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))

	svc, err := services.NewIngestSchedulerService(importer, cfg.Ingest.Schedule)
	if err != nil {
	    return err
	}
	tree.AddDataService(svc)
*/
package services
