// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package stats computes descriptive statistics, histograms, and sequence
// quality tests over the sequences produced by the simulation engine.
//
// All functions are pure: they never modify the input sequence and carry
// no state between calls. Variance is the population variance (divide by
// n), matching the numpy defaults the original dashboard relied on.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptySequence indicates a statistics request over zero values.
var ErrEmptySequence = errors.New("sequence is empty")

// Summary holds descriptive statistics for one sequence.
type Summary struct {
	N        int       `json:"n"`
	Mean     float64   `json:"media"`
	Median   float64   `json:"mediana"`
	Mode     []float64 `json:"moda"`
	StdDev   float64   `json:"desviacion_estandar"`
	Variance float64   `json:"varianza"`
	Min      float64   `json:"minimo"`
	Max      float64   `json:"maximo"`
	Range    float64   `json:"rango"`
	Q1       float64   `json:"primer_cuartil"`
	Q3       float64   `json:"tercer_cuartil"`
	IQR      float64   `json:"rango_intercuartil"`
	Skewness float64   `json:"asimetria"`
	Kurtosis float64   `json:"curtosis"`

	// CV is the coefficient of variation (StdDev/Mean), 0 when Mean is 0.
	CV float64 `json:"coeficiente_variacion"`
}

// Describe computes the full descriptive summary of seq.
//
// The median is the element at index floor(n/2) of the ascending-sorted
// copy, also for even-length input. The original dashboard reports this
// single-element median and downstream material depends on it; do not
// change it to the average-of-two-middles convention.
func Describe(seq []float64) (Summary, error) {
	n := len(seq)
	if n == 0 {
		return Summary{}, ErrEmptySequence
	}

	sorted := make([]float64, n)
	copy(sorted, seq)
	sort.Float64s(sorted)

	s := Summary{
		N:      n,
		Median: sorted[n/2],
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
	s.Range = s.Max - s.Min

	sum := 0.0
	for _, v := range seq {
		sum += v
	}
	s.Mean = sum / float64(n)

	var m2, m3, m4 float64
	for _, v := range seq {
		d := v - s.Mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	s.Variance = m2 / float64(n)
	s.StdDev = math.Sqrt(s.Variance)

	if n >= 3 && s.StdDev > 0 {
		s.Skewness = (m3 / float64(n)) / math.Pow(s.StdDev, 3)
	}
	if n >= 4 && s.StdDev > 0 {
		// Excess kurtosis: 0 for a normal distribution.
		s.Kurtosis = (m4/float64(n))/math.Pow(s.StdDev, 4) - 3
	}
	if s.Mean != 0 {
		s.CV = s.StdDev / s.Mean
	}

	s.Q1 = percentileSorted(sorted, 25)
	s.Q3 = percentileSorted(sorted, 75)
	s.IQR = s.Q3 - s.Q1
	s.Mode = mode(seq)

	return s, nil
}

// Percentile returns the p-th percentile of seq using linear
// interpolation between the two nearest ranks (numpy's default).
func Percentile(seq []float64, p float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	sorted := make([]float64, len(seq))
	copy(sorted, seq)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p), nil
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// mode returns every value that occurs with the maximum frequency,
// in ascending order.
func mode(seq []float64) []float64 {
	counts := make(map[float64]int, len(seq))
	maxCount := 0
	for _, v := range seq {
		counts[v]++
		if counts[v] > maxCount {
			maxCount = counts[v]
		}
	}

	var modes []float64
	for v, c := range counts {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	return modes
}
