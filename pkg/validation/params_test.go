// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validation

import (
	"testing"

	"github.com/parkerlabs/simdash/services/dashboard/engine"
)

func i64(v int64) *int64 { return &v }

func validLinear() GeneratorInput {
	return GeneratorInput{Seed: i64(7), A: i64(3), C: i64(5), M: i64(16), Count: i64(100)}
}

func TestCheckGeneratorParams_Valid(t *testing.T) {
	tests := []struct {
		name   string
		method engine.Method
		input  GeneratorInput
	}{
		{"linear", engine.MethodLinear, validLinear()},
		{"multiplicative", engine.MethodMultiplicative,
			GeneratorInput{Seed: i64(3), A: i64(7), M: i64(11), Count: i64(50)}},
		{"quadratic", engine.MethodQuadratic,
			GeneratorInput{Seed: i64(2), A: i64(1), B: i64(1), CConst: i64(1), M: i64(7), Count: i64(20)}},
		{"quadratic zero linear coefficients", engine.MethodQuadratic,
			GeneratorInput{Seed: i64(2), A: i64(1), B: i64(0), CConst: i64(0), M: i64(7), Count: i64(20)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckGeneratorParams(tc.method, tc.input); len(got) != 0 {
				t.Errorf("expected no violations, got %v", got)
			}
		})
	}
}

func TestCheckGeneratorParams_Violations(t *testing.T) {
	tests := []struct {
		name    string
		method  engine.Method
		mutate  func(*GeneratorInput)
		message string
	}{
		{
			"zero seed", engine.MethodLinear,
			func(in *GeneratorInput) { in.Seed = i64(0) },
			"La semilla debe ser un número positivo",
		},
		{
			"missing seed", engine.MethodLinear,
			func(in *GeneratorInput) { in.Seed = nil },
			"La semilla debe ser un número positivo",
		},
		{
			"count too small", engine.MethodLinear,
			func(in *GeneratorInput) { in.Count = i64(9) },
			"La cantidad de números debe estar entre 10 y 100,000",
		},
		{
			"count too large", engine.MethodLinear,
			func(in *GeneratorInput) { in.Count = i64(100001) },
			"La cantidad de números debe estar entre 10 y 100,000",
		},
		{
			"missing count", engine.MethodLinear,
			func(in *GeneratorInput) { in.Count = nil },
			"La cantidad de números debe estar entre 10 y 100,000",
		},
		{
			"zero modulus", engine.MethodLinear,
			func(in *GeneratorInput) { in.M = i64(0) },
			"El módulo m debe ser un número positivo",
		},
		{
			"missing modulus", engine.MethodLinear,
			func(in *GeneratorInput) { in.M = nil },
			"El módulo m debe ser un número positivo",
		},
		{
			"missing multiplier", engine.MethodLinear,
			func(in *GeneratorInput) { in.A = nil },
			"El multiplicador 'a' es requerido",
		},
		{
			"non-positive multiplier", engine.MethodLinear,
			func(in *GeneratorInput) { in.A = i64(0) },
			"El multiplicador 'a' debe ser positivo",
		},
		{
			"missing increment", engine.MethodLinear,
			func(in *GeneratorInput) { in.C = nil },
			"El incremento 'c' es requerido",
		},
		{
			"negative increment", engine.MethodLinear,
			func(in *GeneratorInput) { in.C = i64(-1) },
			"El incremento 'c' debe ser no negativo",
		},
		{
			"modulus not above seed", engine.MethodLinear,
			func(in *GeneratorInput) { in.Seed = i64(16) },
			"El módulo m debe ser mayor que la semilla",
		},
		{
			"multiplicative multiplier", engine.MethodMultiplicative,
			func(in *GeneratorInput) { in.A = i64(-2) },
			"El multiplicador 'a' debe ser positivo",
		},
		{
			"quadratic zero coefficient", engine.MethodQuadratic,
			func(in *GeneratorInput) { in.A = i64(0) },
			"El coeficiente cuadrático 'a' es requerido y no puede ser cero",
		},
		{
			"quadratic missing linear coefficient", engine.MethodQuadratic,
			func(in *GeneratorInput) { in.B = nil },
			"El coeficiente lineal 'b' es requerido",
		},
		{
			"quadratic missing constant term", engine.MethodQuadratic,
			func(in *GeneratorInput) { in.CConst = nil },
			"El término constante 'c' es requerido",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validLinear()
			tc.mutate(&input)
			got := CheckGeneratorParams(tc.method, input)
			if !contains(got, tc.message) {
				t.Errorf("expected %q in %v", tc.message, got)
			}
		})
	}
}

func TestCheckGeneratorParams_UnknownMethod(t *testing.T) {
	got := CheckGeneratorParams(engine.Method("fibonacci"), validLinear())
	if !contains(got, "Tipo de generador no válido: fibonacci") {
		t.Errorf("expected unknown-method violation, got %v", got)
	}
}

func TestCheckGeneratorParams_CollectsAll(t *testing.T) {
	got := CheckGeneratorParams(engine.MethodLinear, GeneratorInput{})
	if len(got) < 3 {
		t.Errorf("expected every violation reported at once, got %v", got)
	}
}

// Zero, unlike missing, must reach the value checks: a zero modulus or
// seed gets its positive-value message and must not also trip the
// modulus-versus-seed comparison.
func TestCheckGeneratorParams_ZeroValuesReachValueChecks(t *testing.T) {
	input := validLinear()
	input.Seed = i64(0)
	input.M = i64(0)

	got := CheckGeneratorParams(engine.MethodLinear, input)

	for _, want := range []string{
		"La semilla debe ser un número positivo",
		"El módulo m debe ser un número positivo",
	} {
		if !contains(got, want) {
			t.Errorf("expected %q in %v", want, got)
		}
	}
	if contains(got, "El módulo m debe ser mayor que la semilla") {
		t.Errorf("modulus-versus-seed rule should not fire on zeros, got %v", got)
	}
}

func TestGeneratorInputParams(t *testing.T) {
	in := validLinear()
	want := engine.Params{Seed: 7, A: 3, C: 5, M: 16, Count: 100}
	if got := in.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	if got := (GeneratorInput{}).Params(); got != (engine.Params{}) {
		t.Errorf("empty input should convert to zero params, got %+v", got)
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		hasMin   bool
		hasMax   bool
		ok       bool
	}{
		{"inside", 5, 0, 10, true, true, true},
		{"below min", -1, 0, 10, true, true, false},
		{"above max", 11, 0, 10, true, true, false},
		{"no bounds", 1e9, 0, 0, false, false, true},
		{"min only", -1, 0, 0, true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := CheckRange(tc.value, tc.min, tc.max, tc.hasMin, tc.hasMax)
			if ok != tc.ok {
				t.Errorf("ok = %v, want %v (msg %q)", ok, tc.ok, msg)
			}
			if !ok && msg == "" {
				t.Error("violation should carry a message")
			}
			if ok && msg != "" {
				t.Errorf("unexpected message %q", msg)
			}
		})
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
