// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package engine implements the numeric core of the simulation dashboard:
// congruential pseudo-random generators and Monte Carlo estimators.
//
// All generators are deterministic: the same method and parameters always
// produce the same sequence. Emitted values are normalized to [0, 1) by
// dividing each state by the modulus.
package engine

import (
	"fmt"
	"math/bits"
)

// Method identifies a congruential generator variant.
//
// The method names match the original dashboard's form values and are
// used verbatim in the HTTP API and CSV exports.
type Method string

const (
	// MethodLinear is the mixed linear congruential generator:
	// x[i] = (a*x[i-1] + c) mod m.
	MethodLinear Method = "lineal"

	// MethodMultiplicative drops the additive constant:
	// x[i] = (a*x[i-1]) mod m.
	MethodMultiplicative Method = "multiplicativo"

	// MethodQuadratic adds a quadratic term:
	// x[i] = (a*x[i-1]^2 + b*x[i-1] + c) mod m.
	MethodQuadratic Method = "cuadratico"
)

// Valid reports whether m names a known generator method.
func (m Method) Valid() bool {
	switch m {
	case MethodLinear, MethodMultiplicative, MethodQuadratic:
		return true
	}
	return false
}

// Params holds the numeric parameters for a congruential generator run.
//
// Field names mirror the original dashboard's parameter record. Not every
// field applies to every method: C is linear-only, B and CConst are
// quadratic-only. Unused fields are ignored.
type Params struct {
	// Seed is the initial state x[0].
	Seed int64 `json:"semilla"`

	// A is the multiplier (linear, multiplicative) or the quadratic
	// coefficient (quadratic).
	A int64 `json:"a"`

	// C is the additive increment. Linear method only.
	C int64 `json:"c"`

	// M is the modulus. Must be positive for every method.
	M int64 `json:"m"`

	// B is the linear coefficient of the quadratic recurrence.
	B int64 `json:"b"`

	// CConst is the constant term of the quadratic recurrence.
	CConst int64 `json:"c_const"`

	// Count is the number of values to emit.
	Count int64 `json:"cantidad"`
}

// Generate runs the named congruential generator for exactly params.Count
// iterations and returns the normalized sequence.
//
// The returned slice is freshly allocated on every call; callers may treat
// it as immutable. A zero modulus fails with ErrZeroModulus before any
// value is produced, so a partial sequence is never returned.
func Generate(method Method, params Params) ([]float64, error) {
	if params.M <= 0 {
		return nil, fmt.Errorf("m=%d: %w", params.M, ErrZeroModulus)
	}
	if params.Count <= 0 {
		return nil, fmt.Errorf("cantidad=%d: %w", params.Count, ErrNonPositiveCount)
	}
	if params.Seed < 0 || params.A < 0 || params.C < 0 || params.B < 0 || params.CConst < 0 {
		return nil, ErrNegativeParameter
	}

	m := uint64(params.M)
	a := uint64(params.A) % m
	x := uint64(params.Seed) % m
	out := make([]float64, params.Count)

	switch method {
	case MethodLinear:
		c := uint64(params.C) % m
		for i := range out {
			x = addMod(mulMod(a, x, m), c, m)
			out[i] = float64(x) / float64(m)
		}
	case MethodMultiplicative:
		for i := range out {
			x = mulMod(a, x, m)
			out[i] = float64(x) / float64(m)
		}
	case MethodQuadratic:
		b := uint64(params.B) % m
		c := uint64(params.CConst) % m
		for i := range out {
			sq := mulMod(x, x, m)
			x = addMod(addMod(mulMod(a, sq, m), mulMod(b, x, m), m), c, m)
			out[i] = float64(x) / float64(m)
		}
	default:
		return nil, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}

	return out, nil
}

// mulMod computes (a * b) mod m without overflowing, using the full
// 128-bit product. Both operands must already be reduced below m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// addMod computes (a + b) mod m for reduced operands a, b < m.
func addMod(a, b, m uint64) uint64 {
	// a+b < 2m, so at most one subtraction is needed. The comparison is
	// written to avoid overflow when m is close to 2^64.
	if b >= m-a {
		return b - (m - a)
	}
	return a + b
}
