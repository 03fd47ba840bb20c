// Tenancy - Property Occupancy and Lease Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tenancy

package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		layout  string
		want    string
		wantErr bool
	}{
		{"day first", "31/01/2024", "02/01/2006", "2024-01-31", false},
		{"default layout", "01/02/2024", "", "2024-02-01", false},
		{"iso fallback", "2024-03-15", "02/01/2006", "2024-03-15", false},
		{"month first layout", "01/31/2024", "01/02/2006", "2024-01-31", false},
		{"not a date", "soon", "02/01/2006", "", true},
		{"empty", "", "02/01/2006", "", true},
		{"day out of range", "32/01/2024", "02/01/2006", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tt.raw, tt.layout)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.raw, err)
			}
			if got.Location() != time.UTC {
				t.Errorf("location = %v, want UTC", got.Location())
			}
			if s := got.Format("2006-01-02"); s != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.raw, s, tt.want)
			}
		})
	}
}

func TestReadProperties(t *testing.T) {
	t.Parallel()

	input := "\ufeffProperty_ID, property_name ,address\n" +
		"1,Harbor View,\"1 Quay Street, Dock Town\"\n" +
		"\n" +
		"2,Elm Court,22 Elm Road\n"

	got, err := ReadProperties(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadProperties() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d properties, want 2", len(got))
	}
	if got[0].PropertyID != 1 || got[0].Address != "1 Quay Street, Dock Town" {
		t.Errorf("first property = %+v", got[0])
	}
	if got[1].PropertyName != "Elm Court" {
		t.Errorf("second property = %+v", got[1])
	}
}

func TestReadUnits_OptionalColumns(t *testing.T) {
	t.Parallel()

	input := "unit_number,unit_id,property_id,size,type\n" +
		"101,1,1,850,apartment\n" +
		"102,2,1,,\n"

	got, err := ReadUnits(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadUnits() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d units, want 2", len(got))
	}
	if got[0].Size == nil || *got[0].Size != 850 || got[0].Type == nil || *got[0].Type != "apartment" {
		t.Errorf("unit 1 = %+v", got[0])
	}
	if got[1].Size != nil || got[1].Type != nil {
		t.Errorf("unit 2 optional fields should be nil: %+v", got[1])
	}

	// size and type columns may be absent entirely
	bare, err := ReadUnits(strings.NewReader("unit_id,property_id,unit_number\n3,1,103\n"))
	if err != nil {
		t.Fatalf("ReadUnits() without optional columns error = %v", err)
	}
	if len(bare) != 1 || bare[0].Size != nil {
		t.Errorf("bare units = %+v", bare)
	}
}

func TestReadLeases(t *testing.T) {
	t.Parallel()

	input := "lease_id,unit_id,tenant_id,start_date,end_date\n" +
		"5,1,100,01/01/2024,01/01/2024\n" +
		"6,2,101,2024-02-01,31/01/2025\n"

	got, err := ReadLeases(strings.NewReader(input), "02/01/2006")
	if err != nil {
		t.Fatalf("ReadLeases() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d leases, want 2", len(got))
	}
	if got[1].StartDate.Format("2006-01-02") != "2024-02-01" || got[1].EndDate.Format("2006-01-02") != "2025-01-31" {
		t.Errorf("lease 6 dates = %s..%s", got[1].StartDate, got[1].EndDate)
	}
}

func TestReadLeases_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "missing column",
			input:   "lease_id,unit_id,tenant_id,start_date\n1,1,1,01/01/2024\n",
			wantErr: ErrMissingColumn,
			wantMsg: "end_date",
		},
		{
			name:    "bad date",
			input:   "lease_id,unit_id,tenant_id,start_date,end_date\n1,1,1,01/01/2024,someday\n",
			wantErr: ErrInvalidDate,
			wantMsg: "line 2",
		},
		{
			name:    "bad integer",
			input:   "lease_id,unit_id,tenant_id,start_date,end_date\n1,1,1,01/01/2024,01/02/2024\nx,1,1,01/01/2024,01/02/2024\n",
			wantErr: ErrMalformedRecord,
			wantMsg: "line 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadLeases(strings.NewReader(tt.input), "02/01/2006")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

// writeDataDir writes the three CSV files into a temp directory.
func writeDataDir(t *testing.T, properties, units, leases string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range map[string]string{
		PropertiesFile: properties,
		UnitsFile:      units,
		LeasesFile:     leases,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

const (
	sampleProperties = "property_id,property_name,address\n1,Harbor View,1 Quay Street\n2,Elm Court,22 Elm Road\n"
	sampleUnits      = "unit_id,property_id,unit_number,size,type\n1,1,101,850,apartment\n2,1,102,,\n7,2,U7,,\n"
	sampleLeases     = "lease_id,unit_id,tenant_id,start_date,end_date\n5,1,100,01/01/2024,01/01/2024\n5,1,100,01/01/2024,01/01/2024\n"
)

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t, sampleProperties, sampleUnits, sampleLeases)
	snap, err := LoadSnapshot(dir, "02/01/2006")
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(snap.Properties) != 2 || len(snap.Units) != 3 || len(snap.Leases) != 2 {
		t.Errorf("snapshot sizes = %d/%d/%d", len(snap.Properties), len(snap.Units), len(snap.Leases))
	}
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PropertiesFile), []byte(sampleProperties), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnapshot(dir, "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSnapshot() error = %v, want not-exist", err)
	}
}
