// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

// Package query builds parameterized WHERE clauses for the analytics SQL.
//
// Values always travel as ? placeholders; only column names, which come from
// code, are interpolated.
package query

import (
	"strings"
	"time"
)

// DateLayout is the literal format passed to CAST(? AS DATE).
const DateLayout = "2006-01-02"

// WhereBuilder accumulates AND-ed conditions and their arguments.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder returns an empty builder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// AddClause appends a raw condition with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddPropertyID restricts column to id. A non-positive id adds nothing.
func (wb *WhereBuilder) AddPropertyID(column string, id int64) *WhereBuilder {
	if id <= 0 {
		return wb
	}
	return wb.AddClause(column+" = ?", id)
}

// AddDateOnOrBefore adds column <= day (calendar date comparison).
func (wb *WhereBuilder) AddDateOnOrBefore(column string, day time.Time) *WhereBuilder {
	return wb.AddClause(column+" <= CAST(? AS DATE)", Date(day))
}

// AddDateOnOrAfter adds column >= day.
func (wb *WhereBuilder) AddDateOnOrAfter(column string, day time.Time) *WhereBuilder {
	return wb.AddClause(column+" >= CAST(? AS DATE)", Date(day))
}

// AddDateAfter adds column > day.
func (wb *WhereBuilder) AddDateAfter(column string, day time.Time) *WhereBuilder {
	return wb.AddClause(column+" > CAST(? AS DATE)", Date(day))
}

// Build returns the conditions joined with AND, or "1=1" when empty, so the
// result can always follow WHERE or AND.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix is Build with a leading "WHERE ".
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	clause, args := wb.Build()
	return "WHERE " + clause, args
}

// IsEmpty reports whether no condition was added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

// Date formats t as a DATE literal in t's own location.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}
