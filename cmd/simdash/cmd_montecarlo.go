// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/parkerlabs/simdash/services/dashboard/engine"
	"github.com/parkerlabs/simdash/services/dashboard/expr"
)

// mcRand builds the RNG for Monte Carlo commands.
func mcRand() *rand.Rand {
	seed := mcSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// runPi implements `simdash pi`.
func runPi(cmd *cobra.Command, args []string) {
	start := time.Now()
	estimate, err := engine.EstimatePi(mcSamples, mcRand())

	os.Exit(OutputResult("pi", start, estimate, err, func() {
		fmt.Printf("Samples:    %d\n", estimate.Samples)
		fmt.Printf("Inside:     %d\n", estimate.Inside)
		fmt.Printf("Estimate:   %.8f\n", estimate.Estimate)
		fmt.Printf("Abs error:  %.8f\n", estimate.AbsError)
		fmt.Printf("Pct error:  %.5f%%\n", estimate.PctError)
	}))
}

// integrateResult is the data payload for the integrate command.
type integrateResult struct {
	Expression string `json:"funcion"`
	Fallback   bool   `json:"funcion_fallback"`
	engine.IntegralEstimate
}

// runIntegrate implements `simdash integrate`.
func runIntegrate(cmd *cobra.Command, args []string) {
	start := time.Now()

	integrand := engine.Integrand(engine.DefaultIntegrand)
	expression := mcExpression
	fallback := false
	if f, err := expr.Compile(expr.Normalize(mcExpression)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, falling back to x^2\n", err)
		expression = "x^2"
		fallback = true
	} else {
		integrand = engine.Integrand(f)
	}

	estimate, err := engine.Integrate(integrand, mcLo, mcHi, mcSamples, mcRand())
	result := integrateResult{
		Expression:       expression,
		Fallback:         fallback,
		IntegralEstimate: estimate,
	}

	os.Exit(OutputResult("integrate", start, result, err, func() {
		fmt.Printf("Integrand:  %s\n", result.Expression)
		fmt.Printf("Bounds:     [%g, %g]\n", estimate.Lo, estimate.Hi)
		fmt.Printf("Samples:    %d\n", estimate.Samples)
		fmt.Printf("Estimate:   %.8f\n", estimate.Estimate)
	}))
}
