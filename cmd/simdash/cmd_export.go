// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/parkerlabs/simdash/services/dashboard/export"
	"github.com/parkerlabs/simdash/services/dashboard/registry"
)

// exportResult is the data payload for the export command.
type exportResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// runExport implements `simdash export`: generate a sequence with the
// flag parameters and write it straight to a file.
func runExport(cmd *cobra.Command, args []string) {
	start := time.Now()

	result, err := func() (*exportResult, error) {
		format := export.Format(exportFormat)
		if !format.Valid() {
			return nil, fmt.Errorf("unsupported format %q (want csv or json)", exportFormat)
		}

		gen, err := runLocalGeneration()
		if err != nil {
			return nil, err
		}

		run := &registry.Run{
			Method:     gen.Method,
			CreatedAt:  time.Now(),
			State:      registry.StateCompleted,
			Numbers:    gen.Numbers,
			Statistics: &gen.Statistics,
			Histogram:  &gen.Histogram,
		}

		path := exportOut
		if path == "" {
			path = export.Filename(gen.Method, format, run.CreatedAt)
		}
		if err := export.WriteFile(path, run, format); err != nil {
			return nil, err
		}

		return &exportResult{
			Path:   path,
			Format: string(format),
			Count:  len(gen.Numbers),
		}, nil
	}()

	os.Exit(OutputResult("export", start, result, err, func() {
		fmt.Printf("Wrote %d values to %s (%s)\n", result.Count, result.Path, result.Format)
	}))
}
