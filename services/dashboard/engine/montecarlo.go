// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// maxRetainedPoints caps how many sampled points are kept on the result
// for chart rendering. Estimation always uses all n samples.
const maxRetainedPoints = 1000

// Point2 is a sampled point in the plane.
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Inside marks whether the point fell inside the unit circle.
	Inside bool `json:"inside"`
}

// PiEstimate is the result of a Monte Carlo estimation of π.
type PiEstimate struct {
	// Samples is the number of points drawn.
	Samples int `json:"samples"`

	// Inside counts points with x²+y² ≤ 1.
	Inside int `json:"inside"`

	// Outside counts the remaining points.
	Outside int `json:"outside"`

	// Estimate is 4 * Inside / Samples.
	Estimate float64 `json:"estimate"`

	// AbsError is |π - Estimate|.
	AbsError float64 `json:"abs_error"`

	// PctError is AbsError / π * 100.
	PctError float64 `json:"pct_error"`

	// Points holds up to maxRetainedPoints sampled points for plotting.
	Points []Point2 `json:"points,omitempty"`
}

// EstimatePi estimates π by sampling n uniform points in [-1,1]² and
// counting how many land inside the unit circle.
//
// The rng is required so callers control determinism; seed it from the
// request for reproducible runs or from the clock for fresh ones.
func EstimatePi(n int, rng *rand.Rand) (PiEstimate, error) {
	if n <= 0 {
		return PiEstimate{}, fmt.Errorf("n=%d: %w", n, ErrNonPositiveCount)
	}

	result := PiEstimate{Samples: n}
	retain := n
	if retain > maxRetainedPoints {
		retain = maxRetainedPoints
	}
	result.Points = make([]Point2, 0, retain)

	for i := 0; i < n; i++ {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		inside := x*x+y*y <= 1
		if inside {
			result.Inside++
		}
		if i < retain {
			result.Points = append(result.Points, Point2{X: x, Y: y, Inside: inside})
		}
	}

	result.Outside = n - result.Inside
	result.Estimate = 4 * float64(result.Inside) / float64(n)
	result.AbsError = math.Abs(math.Pi - result.Estimate)
	result.PctError = result.AbsError / math.Pi * 100
	return result, nil
}

// Integrand is a single-variable real function to integrate.
type Integrand func(x float64) float64

// DefaultIntegrand is the fallback function f(x) = x², used when a
// user-supplied expression cannot be evaluated.
func DefaultIntegrand(x float64) float64 { return x * x }

// IntegralEstimate is the result of Monte Carlo numeric integration.
type IntegralEstimate struct {
	// Lo and Hi are the integration bounds.
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`

	// Samples is the number of x-values drawn.
	Samples int `json:"samples"`

	// Estimate is (Hi-Lo) * mean(f(x)).
	Estimate float64 `json:"estimate"`

	// Xs and Ys hold up to maxRetainedPoints sampled evaluations for plotting.
	Xs []float64 `json:"xs,omitempty"`
	Ys []float64 `json:"ys,omitempty"`
}

// Integrate estimates the definite integral of f over [lo, hi] by
// averaging f at n uniform sample points and scaling by the interval
// width. Reversed bounds yield the negated integral, matching the usual
// convention.
func Integrate(f Integrand, lo, hi float64, n int, rng *rand.Rand) (IntegralEstimate, error) {
	if f == nil {
		return IntegralEstimate{}, ErrNilIntegrand
	}
	if n <= 0 {
		return IntegralEstimate{}, fmt.Errorf("n=%d: %w", n, ErrNonPositiveCount)
	}

	result := IntegralEstimate{Lo: lo, Hi: hi, Samples: n}
	retain := n
	if retain > maxRetainedPoints {
		retain = maxRetainedPoints
	}
	result.Xs = make([]float64, 0, retain)
	result.Ys = make([]float64, 0, retain)

	sum := 0.0
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*rng.Float64()
		y := f(x)
		sum += y
		if i < retain {
			result.Xs = append(result.Xs, x)
			result.Ys = append(result.Ys, y)
		}
	}

	result.Estimate = (hi - lo) * (sum / float64(n))
	return result, nil
}
