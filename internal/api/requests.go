// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tenancy/internal/models"
)

// asOfLayout is the accepted format of the as_of query parameter.
const asOfLayout = "2006-01-02"

// PropertyRequest represents the validated parameters of the /property/{id}/* routes.
//
// Fields:
//   - PropertyID: path segment {id}, a positive integer
//   - AsOf: reference date (YYYY-MM-DD), used by occupancy only
type PropertyRequest struct {
	PropertyID int64  `json:"id" validate:"gt=0"`
	AsOf       string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

// AnalysisRequest represents the validated query parameters of the /analysis/* routes.
// PropertyID is nil when the parameter is absent.
type AnalysisRequest struct {
	PropertyID *int64 `json:"property_id" validate:"omitempty,gt=0"`
	AsOf       string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

func integerError(field, raw string) *models.APIError {
	return &models.APIError{
		Code:    codeValidation,
		Message: fmt.Sprintf("%s must be an integer", field),
		Details: map[string]interface{}{
			"field": field,
			"value": raw,
		},
	}
}

func parsePropertyRequest(r *http.Request) (*PropertyRequest, *models.APIError) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, integerError("id", raw)
	}

	req := &PropertyRequest{
		PropertyID: id,
		AsOf:       r.URL.Query().Get("as_of"),
	}
	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}
	return req, nil
}

func parseAnalysisRequest(r *http.Request) (*AnalysisRequest, *models.APIError) {
	q := r.URL.Query()
	req := &AnalysisRequest{AsOf: q.Get("as_of")}

	if raw := q.Get("property_id"); raw != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, integerError("property_id", raw)
		}
		req.PropertyID = &id
	}

	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}
	return req, nil
}

// propertyID returns the filter value, 0 meaning all properties.
func (req *AnalysisRequest) propertyID() int64 {
	if req.PropertyID == nil {
		return 0
	}
	return *req.PropertyID
}

// resolveAsOf returns the parsed as_of, or today when it is empty. raw has
// already passed validation.
func (h *Handler) resolveAsOf(raw string) time.Time {
	if raw == "" {
		return h.today()
	}
	d, err := time.ParseInLocation(asOfLayout, raw, time.UTC)
	if err != nil {
		return h.today()
	}
	return d
}
