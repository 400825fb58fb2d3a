// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/parkerlabs/simdash/services/dashboard/registry"
	"github.com/parkerlabs/simdash/services/dashboard/stats"
)

func sampleRun() *registry.Run {
	return &registry.Run{
		ID:        "run_1",
		Method:    "lineal",
		CreatedAt: time.Date(2026, 8, 31, 15, 45, 2, 0, time.UTC),
		State:     registry.StateCompleted,
		Numbers:   []float64{0.5, 0.6875, 0.625},
		Statistics: &stats.Summary{
			N:        3,
			Mean:     0.6041666666666666,
			Median:   0.625,
			Mode:     []float64{0.5, 0.625, 0.6875},
			StdDev:   0.0779514,
			Variance: 0.0060764,
			Min:      0.5,
			Max:      0.6875,
			Range:    0.1875,
			Q1:       0.5,
			Q3:       0.6875,
			IQR:      0.1875,
			Skewness: -0.525,
			Kurtosis: -1.5,
			CV:       0.1290229,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRun()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}

	wantHeader := []string{"Index", "Value", "Method", "Timestamp"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	wantFirst := []string{"0", "0.5", "lineal", "2026-08-31T15:45:02Z"}
	for i, col := range wantFirst {
		if rows[1][i] != col {
			t.Errorf("row 1 col %d = %q, want %q", i, rows[1][i], col)
		}
	}
	if rows[2][1] != "0.6875" {
		t.Errorf("row 2 value = %q, want 0.6875", rows[2][1])
	}
}

func TestWriteCSV_EmptySequence(t *testing.T) {
	var buf bytes.Buffer
	run := sampleRun()
	run.Numbers = nil

	if err := WriteCSV(&buf, run); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRun()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded registry.Run
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.ID != "run_1" || decoded.Method != "lineal" {
		t.Errorf("round trip lost identity: %+v", decoded)
	}
	if !reflect.DeepEqual(decoded.Numbers, sampleRun().Numbers) {
		t.Errorf("round trip lost numbers: %v", decoded.Numbers)
	}
	if decoded.Statistics == nil {
		t.Fatal("round trip lost statistics")
	}
	if !reflect.DeepEqual(decoded.Statistics, sampleRun().Statistics) {
		t.Errorf("statistics round trip mismatch:\n got %+v\nwant %+v",
			*decoded.Statistics, *sampleRun().Statistics)
	}
	for _, tag := range []string{`"metodo"`, `"estadisticas"`, `"media"`, `"moda"`} {
		if !bytes.Contains(buf.Bytes(), []byte(tag)) {
			t.Errorf("expected %s field name in the payload", tag)
		}
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleRun(), Format("xml"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteFile(path, sampleRun(), FormatCSV); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("Index,Value,Method,Timestamp")) {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestFormatValid(t *testing.T) {
	if !FormatCSV.Valid() || !FormatJSON.Valid() {
		t.Error("csv and json must be valid formats")
	}
	if Format("xlsx").Valid() {
		t.Error("xlsx must not be valid")
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 31, 15, 45, 2, 0, time.UTC)
	got := Filename("lineal", FormatCSV, at)
	want := "resultados_lineal_20260831_154502.csv"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatCSV); got != "text/csv" {
		t.Errorf("csv content type = %q", got)
	}
	if got := ContentType(FormatJSON); got != "application/json" {
		t.Errorf("json content type = %q", got)
	}
}
