// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation checks user-provided simulation parameters before
// any computation starts. Validation returns the FULL list of problems,
// not just the first, so students can fix a form in one pass.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/parkerlabs/simdash/services/dashboard/engine"
)

// MinCount and MaxCount bound the sequence length a single run may ask for.
const (
	MinCount = 10
	MaxCount = 100000
)

var validate = validator.New()

// GeneratorInput is the raw parameter set as submitted, before any
// defaulting. Nil fields were absent from the request; the distinction
// matters because zero is a reportable value for some parameters and a
// missing one for others ("es requerido" versus "debe ser positivo").
type GeneratorInput struct {
	Seed   *int64 `validate:"omitempty,min=0"`
	A      *int64
	C      *int64
	M      *int64
	B      *int64
	CConst *int64
	Count  *int64 `validate:"omitempty,min=1"`
}

// Params converts the input to engine parameters, treating absent
// fields as zero. Call only after CheckGeneratorParams passed.
func (in GeneratorInput) Params() engine.Params {
	return engine.Params{
		Seed:   deref(in.Seed),
		A:      deref(in.A),
		C:      deref(in.C),
		M:      deref(in.M),
		B:      deref(in.B),
		CConst: deref(in.CConst),
		Count:  deref(in.Count),
	}
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// CheckGeneratorParams validates the input for the given method and
// returns every violation as a human-readable message. An empty slice
// means the parameters are acceptable.
func CheckGeneratorParams(method engine.Method, in GeneratorInput) []string {
	var errores []string

	if err := validate.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				errores = append(errores, fmt.Sprintf("Parámetro %s fuera de rango", fe.Field()))
			}
		}
	}

	if in.Seed == nil || *in.Seed <= 0 {
		errores = append(errores, "La semilla debe ser un número positivo")
	}
	count := int64(1)
	if in.Count != nil {
		count = *in.Count
	}
	if count < MinCount || count > MaxCount {
		errores = append(errores, "La cantidad de números debe estar entre 10 y 100,000")
	}
	if in.M == nil || *in.M <= 0 {
		errores = append(errores, "El módulo m debe ser un número positivo")
	}

	switch method {
	case engine.MethodLinear:
		switch {
		case in.A == nil:
			errores = append(errores, "El multiplicador 'a' es requerido")
		case *in.A <= 0:
			errores = append(errores, "El multiplicador 'a' debe ser positivo")
		}
		switch {
		case in.C == nil:
			errores = append(errores, "El incremento 'c' es requerido")
		case *in.C < 0:
			errores = append(errores, "El incremento 'c' debe ser no negativo")
		}
		if modulusNotAboveSeed(in) {
			errores = append(errores, "El módulo m debe ser mayor que la semilla")
		}

	case engine.MethodMultiplicative:
		switch {
		case in.A == nil:
			errores = append(errores, "El multiplicador 'a' es requerido")
		case *in.A <= 0:
			errores = append(errores, "El multiplicador 'a' debe ser positivo")
		}
		if modulusNotAboveSeed(in) {
			errores = append(errores, "El módulo m debe ser mayor que la semilla")
		}

	case engine.MethodQuadratic:
		if in.A == nil || *in.A == 0 {
			errores = append(errores, "El coeficiente cuadrático 'a' es requerido y no puede ser cero")
		}
		if in.B == nil {
			errores = append(errores, "El coeficiente lineal 'b' es requerido")
		}
		if in.CConst == nil {
			errores = append(errores, "El término constante 'c' es requerido")
		}

	default:
		errores = append(errores, fmt.Sprintf("Tipo de generador no válido: %s", method))
	}

	return errores
}

// modulusNotAboveSeed guards the m > semilla rule. It only fires when
// both values were supplied and non-zero, so the missing-value and
// non-positive messages are not duplicated.
func modulusNotAboveSeed(in GeneratorInput) bool {
	return in.M != nil && *in.M != 0 && in.Seed != nil && *in.Seed != 0 && *in.M <= *in.Seed
}

// CheckRange verifies a numeric value sits inside [min, max]. The
// hasMin/hasMax flags mark which bounds apply.
func CheckRange(value float64, min, max float64, hasMin, hasMax bool) (bool, string) {
	if hasMin && value < min {
		return false, fmt.Sprintf("El valor debe ser mayor o igual a %g", min)
	}
	if hasMax && value > max {
		return false, fmt.Sprintf("El valor debe ser menor o igual a %g", max)
	}
	return true, ""
}
