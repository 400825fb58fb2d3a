// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stats

import (
	"fmt"
	"math"
)

// UniformityResult is the outcome of the chi-square goodness-of-fit test
// against the uniform distribution on [0, 1).
type UniformityResult struct {
	// ChiSquare is the test statistic sum((obs-exp)²/exp).
	ChiSquare float64 `json:"estadistico_chi2"`

	// DegreesOfFreedom is bins-1.
	DegreesOfFreedom int `json:"grados_libertad"`

	// Critical is the rejection threshold at the 0.05 significance level.
	Critical float64 `json:"valor_critico"`

	// Uniform is true when the statistic is below the critical value.
	Uniform bool `json:"uniforme"`

	// Interpretation is a human-readable verdict.
	Interpretation string `json:"interpretacion"`
}

// chiSquareCritical05 holds upper critical values of the chi-square
// distribution at significance 0.05, indexed by degrees of freedom 1..30.
var chiSquareCritical05 = []float64{
	3.841, 5.991, 7.815, 9.488, 11.070, 12.592, 14.067, 15.507, 16.919,
	18.307, 19.675, 21.026, 22.362, 23.685, 24.996, 26.296, 27.587,
	28.869, 30.144, 31.410, 32.671, 33.924, 35.172, 36.415, 37.652,
	38.885, 40.113, 41.337, 42.557, 43.773,
}

// TestUniformity runs a chi-square goodness-of-fit test of seq against
// the uniform distribution, binning values into bins equal-width bins
// over [0, 1). Pass 0 for the default bin count.
//
// Values in seq are expected in [0, 1); anything outside is clamped into
// the first or last bin.
func TestUniformity(seq []float64, bins int) (UniformityResult, error) {
	if len(seq) == 0 {
		return UniformityResult{}, ErrEmptySequence
	}
	if bins == 0 {
		bins = DefaultBins
	}
	if bins < 2 || bins-1 > len(chiSquareCritical05) {
		return UniformityResult{}, fmt.Errorf("bins=%d: %w", bins, ErrInvalidBins)
	}

	observed := make([]int, bins)
	for _, v := range seq {
		idx := int(v * float64(bins))
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		observed[idx]++
	}

	expected := float64(len(seq)) / float64(bins)
	chi2 := 0.0
	for _, obs := range observed {
		d := float64(obs) - expected
		chi2 += d * d / expected
	}

	r := UniformityResult{
		ChiSquare:        chi2,
		DegreesOfFreedom: bins - 1,
		Critical:         chiSquareCritical05[bins-2],
	}
	r.Uniform = chi2 < r.Critical
	verdict := "no uniformemente distribuidos"
	if r.Uniform {
		verdict = "uniformemente distribuidos"
	}
	r.Interpretation = fmt.Sprintf("Los números son %s (chi2=%.4f, critico=%.3f)",
		verdict, chi2, r.Critical)
	return r, nil
}

// SerialCorrelation computes the Pearson correlation between seq and a
// copy of itself shifted by lag positions. Returns 0 when the sequence
// is too short or either side has zero variance.
func SerialCorrelation(seq []float64, lag int) float64 {
	if lag <= 0 || len(seq) <= lag {
		return 0
	}

	x := seq[:len(seq)-lag]
	y := seq[lag:]
	n := float64(len(x))

	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// RunsTestResult is the outcome of the Wald-Wolfowitz runs test for
// randomness of a sequence around its median.
type RunsTestResult struct {
	// Runs is the observed number of runs above/below the median.
	Runs int `json:"numero_rachas"`

	// Z is the normal-approximation test statistic.
	Z float64 `json:"estadistico_z"`

	// PValue is the two-tailed p-value of Z.
	PValue float64 `json:"p_valor"`

	// Random is true when PValue > 0.05.
	Random bool `json:"aleatorio"`

	// Interpretation is a human-readable verdict.
	Interpretation string `json:"interpretacion"`
}

// TestRuns applies the runs test: the sequence is reduced to above/below
// its median, runs of equal signs are counted, and the count is compared
// to its expectation under randomness via a normal approximation.
func TestRuns(seq []float64) (RunsTestResult, error) {
	if len(seq) == 0 {
		return RunsTestResult{}, ErrEmptySequence
	}

	med, err := Percentile(seq, 50)
	if err != nil {
		return RunsTestResult{}, err
	}

	signs := make([]bool, len(seq))
	for i, v := range seq {
		signs[i] = v > med
	}

	runs := 1
	var n1 int
	if signs[0] {
		n1 = 1
	}
	for i := 1; i < len(signs); i++ {
		if signs[i] != signs[i-1] {
			runs++
		}
		if signs[i] {
			n1++
		}
	}
	n2 := len(signs) - n1

	r := RunsTestResult{Runs: runs}
	total := float64(n1 + n2)
	if n1 > 0 && n2 > 0 && total > 1 {
		mean := 2*float64(n1)*float64(n2)/total + 1
		variance := (2 * float64(n1) * float64(n2) *
			(2*float64(n1)*float64(n2) - total)) /
			(total * total * (total - 1))
		if variance > 0 {
			r.Z = (float64(runs) - mean) / math.Sqrt(variance)
		}
	}

	// Two-tailed p-value from the standard normal distribution.
	r.PValue = math.Erfc(math.Abs(r.Z) / math.Sqrt2)
	r.Random = r.PValue > 0.05
	verdict := "no aleatoria"
	if r.Random {
		verdict = "aleatoria"
	}
	r.Interpretation = fmt.Sprintf("La secuencia es %s (p=%.4f)", verdict, r.PValue)
	return r, nil
}
