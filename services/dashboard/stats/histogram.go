// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stats

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBins is the bin count used when the caller passes 0.
const DefaultBins = 10

// ErrInvalidBins indicates a negative histogram bin count.
var ErrInvalidBins = errors.New("bin count must be positive")

// Histogram is a fixed-bin frequency count over a sequence.
//
// Bins are half-open ranges [edge[i], edge[i+1]), except the last bin
// which is closed on the right so the maximum value is counted.
type Histogram struct {
	// Counts holds the frequency of each bin.
	Counts []int `json:"frecuencias"`

	// Edges holds the bins+1 boundary values.
	Edges []float64 `json:"bins_edges"`

	// Centers holds the midpoint of each bin.
	Centers []float64 `json:"bins_centers"`

	// Ranges holds printable "lo-hi" labels for each bin.
	Ranges []string `json:"bins_ranges"`

	// Width is the common bin width, 0 for a constant sequence.
	Width float64 `json:"ancho_bin"`
}

// BuildHistogram counts seq into bins equal-width bins spanning
// [min, max].
//
// The bin index for a value v is min(floor((v-min)/width), bins-1); the
// clamp keeps the maximum inside the last bin. A constant sequence
// (max == min) degenerates to width 0 with every value in bin 0 rather
// than dividing by zero.
func BuildHistogram(seq []float64, bins int) (Histogram, error) {
	if len(seq) == 0 {
		return Histogram{}, ErrEmptySequence
	}
	if bins < 0 {
		return Histogram{}, fmt.Errorf("bins=%d: %w", bins, ErrInvalidBins)
	}
	if bins == 0 {
		bins = DefaultBins
	}

	minV, maxV := seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	h := Histogram{
		Counts:  make([]int, bins),
		Edges:   make([]float64, bins+1),
		Centers: make([]float64, bins),
		Ranges:  make([]string, bins),
	}

	if maxV > minV {
		h.Width = (maxV - minV) / float64(bins)
	}
	for i := 0; i <= bins; i++ {
		h.Edges[i] = minV + h.Width*float64(i)
	}
	// Guard against float rounding leaving the top edge short of max.
	h.Edges[bins] = maxV
	for i := 0; i < bins; i++ {
		h.Centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
		h.Ranges[i] = fmt.Sprintf("%.3f-%.3f", h.Edges[i], h.Edges[i+1])
	}

	for _, v := range seq {
		idx := 0
		if h.Width > 0 {
			idx = int(math.Floor((v - minV) / h.Width))
			if idx >= bins {
				idx = bins - 1
			}
		}
		h.Counts[idx]++
	}

	return h, nil
}
