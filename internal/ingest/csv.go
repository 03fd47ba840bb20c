// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/tenancy/internal/config"
	"github.com/tomtom215/tenancy/internal/logging"
	"github.com/tomtom215/tenancy/internal/models"
)

// File names expected in the data directory.
const (
	PropertiesFile = "properties.csv"
	UnitsFile      = "units.csv"
	LeasesFile     = "leases.csv"
)

// isoDateLayout is accepted for lease dates in addition to the configured layout.
const isoDateLayout = "2006-01-02"

// table is a CSV file indexed by lower-cased header name.
type table struct {
	name    string
	columns map[string]int
	rows    [][]string
}

func readTable(name string, r io.Reader, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: empty file", name, ErrMalformedRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", name, err)
	}

	t := &table{name: name, columns: make(map[string]int, len(header))}
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		t.columns[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := t.columns[col]; !ok {
			return nil, fmt.Errorf("%s: %w: %s", name, ErrMissingColumn, col)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if isBlank(record) {
			continue
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// value returns the trimmed cell for col, or "" when the row is short.
func (t *table) value(row []string, col string) string {
	i, ok := t.columns[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// line is the 1-based file line of data row i, counting the header.
func line(i int) int {
	return i + 2
}

func (t *table) integer(i int, row []string, col string) (int64, error) {
	raw := t.value(row, col)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: %w: %s %q is not an integer", t.name, line(i), ErrMalformedRecord, col, raw)
	}
	return n, nil
}

func (t *table) optionalInt64(i int, row []string, col string) (*int64, error) {
	if t.value(row, col) == "" {
		return nil, nil
	}
	n, err := t.integer(i, row, col)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (t *table) optionalString(row []string, col string) *string {
	v := t.value(row, col)
	if v == "" {
		return nil
	}
	return &v
}

func (t *table) date(i int, row []string, col, layout string) (time.Time, error) {
	raw := t.value(row, col)
	d, err := ParseDate(raw, layout)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s line %d: %s: %w", t.name, line(i), col, err)
	}
	return d, nil
}

// ParseDate parses raw with layout, falling back to YYYY-MM-DD. The result is
// a UTC calendar date.
func ParseDate(raw, layout string) (time.Time, error) {
	if layout == "" {
		layout = config.DefaultDateLayout
	}
	if d, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
		return d, nil
	}
	if d, err := time.ParseInLocation(isoDateLayout, raw, time.UTC); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// ReadProperties parses properties.csv content.
func ReadProperties(r io.Reader) ([]models.Property, error) {
	t, err := readTable(PropertiesFile, r, "property_id", "property_name")
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(t.rows))
	for i, row := range t.rows {
		id, err := t.integer(i, row, "property_id")
		if err != nil {
			return nil, err
		}
		properties = append(properties, models.Property{
			PropertyID:   id,
			PropertyName: t.value(row, "property_name"),
			Address:      t.value(row, "address"),
		})
	}
	return properties, nil
}

// ReadUnits parses units.csv content. size and type may be empty.
func ReadUnits(r io.Reader) ([]models.Unit, error) {
	t, err := readTable(UnitsFile, r, "unit_id", "property_id", "unit_number")
	if err != nil {
		return nil, err
	}

	units := make([]models.Unit, 0, len(t.rows))
	for i, row := range t.rows {
		id, err := t.integer(i, row, "unit_id")
		if err != nil {
			return nil, err
		}
		propertyID, err := t.integer(i, row, "property_id")
		if err != nil {
			return nil, err
		}
		size, err := t.optionalInt64(i, row, "size")
		if err != nil {
			return nil, err
		}
		units = append(units, models.Unit{
			UnitID:     id,
			PropertyID: propertyID,
			UnitNumber: t.value(row, "unit_number"),
			Size:       size,
			Type:       t.optionalString(row, "type"),
		})
	}
	return units, nil
}

// ReadLeases parses leases.csv content with dates in layout.
func ReadLeases(r io.Reader, layout string) ([]models.Lease, error) {
	t, err := readTable(LeasesFile, r, "lease_id", "unit_id", "tenant_id", "start_date", "end_date")
	if err != nil {
		return nil, err
	}

	leases := make([]models.Lease, 0, len(t.rows))
	for i, row := range t.rows {
		var l models.Lease
		if l.LeaseID, err = t.integer(i, row, "lease_id"); err != nil {
			return nil, err
		}
		if l.UnitID, err = t.integer(i, row, "unit_id"); err != nil {
			return nil, err
		}
		if l.TenantID, err = t.integer(i, row, "tenant_id"); err != nil {
			return nil, err
		}
		if l.StartDate, err = t.date(i, row, "start_date", layout); err != nil {
			return nil, err
		}
		if l.EndDate, err = t.date(i, row, "end_date", layout); err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, nil
}

// LoadSnapshot reads the three CSV files from dir.
func LoadSnapshot(dir, dateLayout string) (*models.Snapshot, error) {
	var snap models.Snapshot

	err := withFile(dir, PropertiesFile, func(r io.Reader) (err error) {
		snap.Properties, err = ReadProperties(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = withFile(dir, UnitsFile, func(r io.Reader) (err error) {
		snap.Units, err = ReadUnits(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = withFile(dir, LeasesFile, func(r io.Reader) (err error) {
		snap.Leases, err = ReadLeases(r, dateLayout)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

func withFile(dir, name string, fn func(io.Reader) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path) //nolint:gosec // path is built from the configured data directory
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("file", path).Msg("Failed to close CSV file")
		}
	}()
	return fn(f)
}
