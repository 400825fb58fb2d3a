// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package export encodes stored runs as CSV or JSON for download.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/parkerlabs/simdash/services/dashboard/registry"
)

// ErrUnsupportedFormat indicates an export format other than csv or json.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatJSON
}

// WriteCSV writes the run's sequence as CSV rows, one value per row.
// Timestamps use RFC3339 so re-imports parse without locale guessing.
func WriteCSV(w io.Writer, run *registry.Run) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Index", "Value", "Method", "Timestamp"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	ts := run.CreatedAt.Format(time.RFC3339)
	for i, v := range run.Numbers {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'g', -1, 64),
			run.Method,
			ts,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the full run record as indented JSON. The run's
// struct tags keep field order stable, so exports diff cleanly.
func WriteJSON(w io.Writer, run *registry.Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Write dispatches to the encoder for the given format.
func Write(w io.Writer, run *registry.Run, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, run)
	case FormatJSON:
		return WriteJSON(w, run)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile exports the run to a file at path.
func WriteFile(path string, run *registry.Run, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	return Write(file, run, format)
}

// Filename builds a download name like resultados_lineal_20260831_154502.csv.
func Filename(method string, format Format, at time.Time) string {
	return fmt.Sprintf("resultados_%s_%s.%s", method, at.Format("20060102_150405"), format)
}

// ContentType returns the MIME type for the format.
func ContentType(format Format) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "application/json"
}
