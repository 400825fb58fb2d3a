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

	"github.com/parkerlabs/simdash/pkg/validation"
	"github.com/parkerlabs/simdash/services/dashboard/engine"
	"github.com/parkerlabs/simdash/services/dashboard/stats"
)

// generateResult is the data payload for the generate command.
type generateResult struct {
	Method     string          `json:"metodo"`
	Numbers    []float64       `json:"numeros"`
	Statistics stats.Summary   `json:"estadisticas"`
	Histogram  stats.Histogram `json:"histograma"`
}

// buildInput assembles the validation input from the generator flags,
// falling back to the configured default count. Flags always carry a
// value, so every field is present.
func buildInput() (engine.Method, validation.GeneratorInput) {
	count := genCount
	if count == 0 {
		count = config.Defaults.Count
	}
	return engine.Method(genMethod), validation.GeneratorInput{
		Seed:   &genSeed,
		A:      &genA,
		C:      &genC,
		M:      &genM,
		B:      &genB,
		CConst: &genCConst,
		Count:  &count,
	}
}

// runLocalGeneration validates flags, runs the generator, and computes
// statistics plus a histogram.
func runLocalGeneration() (*generateResult, error) {
	method, input := buildInput()

	if errores := validation.CheckGeneratorParams(method, input); len(errores) > 0 {
		for _, e := range errores {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		return nil, fmt.Errorf("invalid parameters (%d violations)", len(errores))
	}

	seq, err := engine.Generate(method, input.Params())
	if err != nil {
		return nil, err
	}
	summary, err := stats.Describe(seq)
	if err != nil {
		return nil, err
	}
	hist, err := stats.BuildHistogram(seq, config.Defaults.Bins)
	if err != nil {
		return nil, err
	}

	return &generateResult{
		Method:     string(method),
		Numbers:    seq,
		Statistics: summary,
		Histogram:  hist,
	}, nil
}

// runGenerate implements `simdash generate`.
func runGenerate(cmd *cobra.Command, args []string) {
	start := time.Now()
	result, err := runLocalGeneration()

	os.Exit(OutputResult("generate", start, result, err, func() {
		s := result.Statistics
		fmt.Printf("Method:     %s\n", result.Method)
		fmt.Printf("Count:      %d\n", s.N)
		fmt.Printf("Mean:       %.6f\n", s.Mean)
		fmt.Printf("Median:     %.6f\n", s.Median)
		fmt.Printf("Std dev:    %.6f\n", s.StdDev)
		fmt.Printf("Variance:   %.6f\n", s.Variance)
		fmt.Printf("Min/Max:    %.6f / %.6f\n", s.Min, s.Max)
		fmt.Printf("First 10:   %.4f\n", head(result.Numbers, 10))
	}))
}

// head returns at most n leading values.
func head(seq []float64, n int) []float64 {
	if len(seq) < n {
		n = len(seq)
	}
	return seq[:n]
}
