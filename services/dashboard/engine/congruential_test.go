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
	"testing"
)

func TestGenerate_LinearKnownSequence(t *testing.T) {
	// x0=1, a=5, c=3, m=16 walks 8, 11, 10, 5, 12.
	params := Params{Seed: 1, A: 5, C: 3, M: 16, Count: 5}

	got, err := Generate(MethodLinear, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []float64{0.5, 0.6875, 0.625, 0.3125, 0.75}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGenerate_Multiplicative(t *testing.T) {
	// x0=3, a=7, m=11: 21 mod 11 = 10, 70 mod 11 = 4, 28 mod 11 = 6
	params := Params{Seed: 3, A: 7, M: 11, Count: 3}

	got, err := Generate(MethodMultiplicative, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []float64{10.0 / 11, 4.0 / 11, 6.0 / 11}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGenerate_Quadratic(t *testing.T) {
	// x0=2, a=1, b=1, c=1, m=7: 4+2+1=7 -> 0, 0+0+1=1, 1+1+1=3
	params := Params{Seed: 2, A: 1, B: 1, CConst: 1, M: 7, Count: 3}

	got, err := Generate(MethodQuadratic, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []float64{0, 1.0 / 7, 3.0 / 7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGenerate_ValuesInUnitInterval(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		params Params
	}{
		{"linear small modulus", MethodLinear, Params{Seed: 1, A: 5, C: 3, M: 16, Count: 100}},
		{"linear large modulus", MethodLinear, Params{Seed: 7, A: 1103515245, C: 12345, M: 1 << 31, Count: 500}},
		{"multiplicative", MethodMultiplicative, Params{Seed: 13, A: 16807, M: 2147483647, Count: 500}},
		{"quadratic", MethodQuadratic, Params{Seed: 5, A: 3, B: 7, CConst: 11, M: 1000003, Count: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Generate(tt.method, tt.params)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if len(seq) != int(tt.params.Count) {
				t.Fatalf("expected %d values, got %d", tt.params.Count, len(seq))
			}
			for i, v := range seq {
				if v < 0 || v >= 1 {
					t.Fatalf("value %d = %v outside [0,1)", i, v)
				}
			}
		})
	}
}

func TestGenerate_LargeModulusNoOverflow(t *testing.T) {
	// a*x would overflow int64 multiplication without 128-bit reduction.
	params := Params{
		Seed:  (1 << 62) - 1,
		A:     6364136223846793005,
		C:     1442695040888963407,
		M:     (1 << 62) + 57,
		Count: 50,
	}

	seq, err := Generate(MethodLinear, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, v := range seq {
		if v < 0 || v >= 1 {
			t.Fatalf("value %d = %v outside [0,1)", i, v)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		params  Params
		wantErr error
	}{
		{"zero modulus", MethodLinear, Params{Seed: 1, A: 5, C: 3, M: 0, Count: 5}, ErrZeroModulus},
		{"negative modulus", MethodLinear, Params{Seed: 1, A: 5, C: 3, M: -4, Count: 5}, ErrZeroModulus},
		{"zero count", MethodLinear, Params{Seed: 1, A: 5, C: 3, M: 16, Count: 0}, ErrNonPositiveCount},
		{"negative count", MethodLinear, Params{Seed: 1, A: 5, C: 3, M: 16, Count: -1}, ErrNonPositiveCount},
		{"unknown method", Method("fibonacci"), Params{Seed: 1, A: 5, C: 3, M: 16, Count: 5}, ErrUnknownMethod},
		{"negative seed", MethodLinear, Params{Seed: -1, A: 5, C: 3, M: 16, Count: 5}, ErrNegativeParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.method, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMethod_Valid(t *testing.T) {
	for _, m := range []Method{MethodLinear, MethodMultiplicative, MethodQuadratic} {
		if !m.Valid() {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if Method("mersenne").Valid() {
		t.Error("expected unknown method to be invalid")
	}
}

func TestMulMod(t *testing.T) {
	tests := []struct {
		a, b, m, want uint64
	}{
		{5, 3, 16, 15},
		{0, 99, 7, 0},
		{math.MaxUint64, math.MaxUint64, 1000000007, 114944269},
		{1 << 63, 2, 3, ((1 << 63) % 3 * 2) % 3},
	}

	for _, tt := range tests {
		if got := mulMod(tt.a, tt.b, tt.m); got != tt.want {
			t.Errorf("mulMod(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.m, got, tt.want)
		}
	}
}
