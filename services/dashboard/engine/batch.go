// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"fmt"

	"github.com/parkerlabs/simdash/services/dashboard/stats"
)

// DefaultBatchCount is the number of batches produced when the caller
// does not specify one.
const DefaultBatchCount = 5

// BatchResult holds the sequences and statistics for a multi-batch run.
// Each batch reuses the caller's parameters with the seed shifted by
// the batch index, so batch i runs with seed+i.
type BatchResult struct {
	Batches     [][]float64      `json:"lotes"`
	PerBatch    []*stats.Summary `json:"estadisticas_por_lote"`
	Global      *stats.Summary   `json:"estadisticas_globales"`
	Method      Method           `json:"metodo"`
	BatchCount  int              `json:"n_lotes"`
	TotalValues int              `json:"total_valores"`
}

// GenerateBatches runs the generator batches times, shifting the seed
// by one per batch, and computes per-batch and pooled statistics.
func GenerateBatches(method Method, params Params, batches int) (*BatchResult, error) {
	if batches <= 0 {
		batches = DefaultBatchCount
	}

	result := &BatchResult{
		Batches:    make([][]float64, 0, batches),
		PerBatch:   make([]*stats.Summary, 0, batches),
		Method:     method,
		BatchCount: batches,
	}

	pooled := make([]float64, 0, batches*int(params.Count))
	for i := 0; i < batches; i++ {
		p := params
		p.Seed = params.Seed + int64(i)

		seq, err := Generate(method, p)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", i, err)
		}
		summary, err := stats.Describe(seq)
		if err != nil {
			return nil, fmt.Errorf("batch %d statistics: %w", i, err)
		}

		result.Batches = append(result.Batches, seq)
		result.PerBatch = append(result.PerBatch, &summary)
		pooled = append(pooled, seq...)
	}

	global, err := stats.Describe(pooled)
	if err != nil {
		return nil, fmt.Errorf("global statistics: %w", err)
	}
	result.Global = &global
	result.TotalValues = len(pooled)
	return result, nil
}
