// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestEstimatePi_Converges(t *testing.T) {
	est, err := EstimatePi(200000, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("EstimatePi failed: %v", err)
	}

	if est.Samples != 200000 {
		t.Errorf("expected 200000 samples, got %d", est.Samples)
	}
	if est.Inside+est.Outside != est.Samples {
		t.Errorf("inside %d + outside %d != samples %d", est.Inside, est.Outside, est.Samples)
	}

	want := 4 * float64(est.Inside) / float64(est.Samples)
	if est.Estimate != want {
		t.Errorf("estimate %v inconsistent with counts (want %v)", est.Estimate, want)
	}

	// 200k samples land well within 0.05 of π for any seed.
	if math.Abs(est.Estimate-math.Pi) > 0.05 {
		t.Errorf("estimate %v too far from π", est.Estimate)
	}
	if est.AbsError != math.Abs(math.Pi-est.Estimate) {
		t.Errorf("abs error %v inconsistent", est.AbsError)
	}
}

// The estimator error shrinks like 1/sqrt(n). Each 16x sample increase
// cuts the expected error by 4x, which dwarfs the trial-to-trial noise
// once errors are averaged, so the averaged errors must step downward.
func TestEstimatePi_ErrorShrinksWithSamples(t *testing.T) {
	const trials = 20
	sizes := []int{1000, 16000, 256000}

	rng := rand.New(rand.NewSource(99))
	avgErr := make([]float64, len(sizes))
	for i, n := range sizes {
		var sum float64
		for trial := 0; trial < trials; trial++ {
			est, err := EstimatePi(n, rng)
			if err != nil {
				t.Fatalf("EstimatePi(%d) failed: %v", n, err)
			}
			sum += est.AbsError
		}
		avgErr[i] = sum / trials
	}

	for i := 1; i < len(sizes); i++ {
		if avgErr[i] >= avgErr[i-1] {
			t.Errorf("average error did not shrink from n=%d (%v) to n=%d (%v)",
				sizes[i-1], avgErr[i-1], sizes[i], avgErr[i])
		}
	}
}

func TestEstimatePi_RetainsBoundedPoints(t *testing.T) {
	est, err := EstimatePi(5000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("EstimatePi failed: %v", err)
	}
	if len(est.Points) != maxRetainedPoints {
		t.Errorf("expected %d retained points, got %d", maxRetainedPoints, len(est.Points))
	}

	small, err := EstimatePi(10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("EstimatePi failed: %v", err)
	}
	if len(small.Points) != 10 {
		t.Errorf("expected 10 retained points, got %d", len(small.Points))
	}
	for _, p := range small.Points {
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			t.Errorf("point (%v, %v) outside [-1,1]²", p.X, p.Y)
		}
		if p.Inside != (p.X*p.X+p.Y*p.Y <= 1) {
			t.Errorf("point (%v, %v) inside flag wrong", p.X, p.Y)
		}
	}
}

func TestEstimatePi_Reproducible(t *testing.T) {
	a, _ := EstimatePi(1000, rand.New(rand.NewSource(7)))
	b, _ := EstimatePi(1000, rand.New(rand.NewSource(7)))
	if a.Estimate != b.Estimate || a.Inside != b.Inside {
		t.Error("same seed should reproduce the same estimate")
	}
}

func TestEstimatePi_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := EstimatePi(n, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNonPositiveCount) {
			t.Errorf("n=%d: expected ErrNonPositiveCount, got %v", n, err)
		}
	}
}

func TestIntegrate_ConstantFunction(t *testing.T) {
	// A constant integrand is exact regardless of sampling.
	est, err := Integrate(func(float64) float64 { return 2 }, 1, 4, 100, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if math.Abs(est.Estimate-6) > 1e-12 {
		t.Errorf("expected 6, got %v", est.Estimate)
	}
}

func TestIntegrate_DefaultIntegrand(t *testing.T) {
	// ∫ x² dx over [0,1] = 1/3.
	est, err := Integrate(DefaultIntegrand, 0, 1, 200000, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if math.Abs(est.Estimate-1.0/3.0) > 0.01 {
		t.Errorf("expected about 1/3, got %v", est.Estimate)
	}
}

func TestIntegrate_ReversedBounds(t *testing.T) {
	fwd, _ := Integrate(func(float64) float64 { return 1 }, 0, 2, 100, rand.New(rand.NewSource(5)))
	rev, _ := Integrate(func(float64) float64 { return 1 }, 2, 0, 100, rand.New(rand.NewSource(5)))
	if math.Abs(fwd.Estimate-2) > 1e-12 {
		t.Errorf("forward: expected 2, got %v", fwd.Estimate)
	}
	if math.Abs(rev.Estimate+2) > 1e-12 {
		t.Errorf("reversed: expected -2, got %v", rev.Estimate)
	}
}

func TestIntegrate_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := Integrate(nil, 0, 1, 10, rng); !errors.Is(err, ErrNilIntegrand) {
		t.Errorf("expected ErrNilIntegrand, got %v", err)
	}
	if _, err := Integrate(DefaultIntegrand, 0, 1, 0, rng); !errors.Is(err, ErrNonPositiveCount) {
		t.Errorf("expected ErrNonPositiveCount, got %v", err)
	}
}

func TestGenerateBatches(t *testing.T) {
	params := Params{Seed: 3, A: 5, C: 3, M: 8191, Count: 50}

	result, err := GenerateBatches(MethodLinear, params, 4)
	if err != nil {
		t.Fatalf("GenerateBatches failed: %v", err)
	}

	if result.BatchCount != 4 || len(result.Batches) != 4 || len(result.PerBatch) != 4 {
		t.Fatalf("expected 4 batches, got %d/%d/%d",
			result.BatchCount, len(result.Batches), len(result.PerBatch))
	}
	if result.TotalValues != 200 {
		t.Errorf("expected 200 pooled values, got %d", result.TotalValues)
	}
	if result.Global == nil || result.Global.N != 200 {
		t.Error("global statistics should cover the pooled values")
	}

	// Shifted seeds must produce distinct batches.
	if result.Batches[0][0] == result.Batches[1][0] {
		t.Error("batches with different seeds should differ")
	}

	// Each batch matches a standalone run with the shifted seed.
	p1 := params
	p1.Seed = params.Seed + 1
	standalone, err := Generate(MethodLinear, p1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i := range standalone {
		if result.Batches[1][i] != standalone[i] {
			t.Fatalf("batch 1 value %d differs from standalone run", i)
		}
	}
}

func TestGenerateBatches_DefaultCount(t *testing.T) {
	params := Params{Seed: 3, A: 5, C: 3, M: 8191, Count: 20}
	result, err := GenerateBatches(MethodLinear, params, 0)
	if err != nil {
		t.Fatalf("GenerateBatches failed: %v", err)
	}
	if result.BatchCount != DefaultBatchCount {
		t.Errorf("expected %d batches, got %d", DefaultBatchCount, result.BatchCount)
	}
}

func TestGenerateBatches_PropagatesErrors(t *testing.T) {
	params := Params{Seed: 3, A: 5, C: 3, M: 0, Count: 20}
	if _, err := GenerateBatches(MethodLinear, params, 2); !errors.Is(err, ErrZeroModulus) {
		t.Errorf("expected ErrZeroModulus, got %v", err)
	}
}
