// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stats

import (
	"errors"
	"testing"
)

func TestBuildHistogram_MaxFallsInLastBin(t *testing.T) {
	h, err := BuildHistogram([]float64{0.05, 0.15, 0.95, 0.99}, 10)
	if err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}

	if len(h.Counts) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(h.Counts))
	}
	// 0.99 is the max; the clamp keeps it in bin 9, not a phantom bin 10.
	if h.Counts[9] != 2 {
		t.Errorf("expected 2 values in last bin, got %d", h.Counts[9])
	}
	if h.Counts[0] != 1 || h.Counts[1] != 1 {
		t.Errorf("expected one value in each of the first two bins, got %v", h.Counts)
	}

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 4 {
		t.Errorf("counts must sum to the sequence length, got %d", total)
	}
}

func TestBuildHistogram_EdgesAndCenters(t *testing.T) {
	h, err := BuildHistogram([]float64{0, 1, 2, 3, 4}, 4)
	if err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}

	if len(h.Edges) != 5 {
		t.Fatalf("expected 5 edges, got %d", len(h.Edges))
	}
	if h.Edges[0] != 0 || h.Edges[4] != 4 {
		t.Errorf("edges should span min to max, got %v", h.Edges)
	}
	if h.Width != 1 {
		t.Errorf("expected width 1, got %v", h.Width)
	}
	if h.Centers[0] != 0.5 || h.Centers[3] != 3.5 {
		t.Errorf("unexpected centers %v", h.Centers)
	}
	if h.Ranges[0] != "0.000-1.000" {
		t.Errorf("unexpected range label %q", h.Ranges[0])
	}

	// [0,1) [1,2) [2,3) [3,4] -> 1,1,1,2
	want := []int{1, 1, 1, 2}
	for i := range want {
		if h.Counts[i] != want[i] {
			t.Fatalf("expected counts %v, got %v", want, h.Counts)
		}
	}
}

func TestBuildHistogram_ConstantSequence(t *testing.T) {
	h, err := BuildHistogram([]float64{0.5, 0.5, 0.5}, 10)
	if err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}
	if h.Width != 0 {
		t.Errorf("expected width 0 for constant sequence, got %v", h.Width)
	}
	if h.Counts[0] != 3 {
		t.Errorf("expected all values in bin 0, got %v", h.Counts)
	}
}

func TestBuildHistogram_DefaultBins(t *testing.T) {
	h, err := BuildHistogram([]float64{0.1, 0.9}, 0)
	if err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}
	if len(h.Counts) != DefaultBins {
		t.Errorf("expected %d bins, got %d", DefaultBins, len(h.Counts))
	}
}

func TestBuildHistogram_Errors(t *testing.T) {
	if _, err := BuildHistogram(nil, 10); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
	if _, err := BuildHistogram([]float64{1}, -3); !errors.Is(err, ErrInvalidBins) {
		t.Errorf("expected ErrInvalidBins, got %v", err)
	}
}
