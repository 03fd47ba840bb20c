// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

/*
Package api provides the HTTP surface of the Tenancy server.

Routes are registered on a chi router (see SetupChi):

	GET  /                                        welcome message
	GET  /property/{id}/occupancy                 quarterly occupancy of one property
	GET  /property/{id}/lease-duration            average lease duration of one property
	GET  /analysis/units-never-leased             units without any lease
	GET  /analysis/units-with-future-leases       units with a lease starting after as_of
	GET  /analysis/units-with-multiple-active-leases
	GET  /analysis/duplicate-leases               leases stored more than once
	GET  /api/v1/health[/live|/ready]             health and probes
	POST /api/v1/admin/ingest                     re-run CSV ingestion
	GET  /metrics                                 Prometheus
	GET  /swagger/*                               OpenAPI UI

Property and analysis routes return flat JSON bodies. Health, admin and all
error responses use the models.APIResponse envelope.

Analysis routes accept an optional property_id query parameter; occupancy and
the future/active lease routes accept as_of=YYYY-MM-DD, defaulting to the
current UTC date.

Analytics results are cached per route and filter. The cache is cleared after
every successful ingestion through Handler.ClearCache.
*/
package api
