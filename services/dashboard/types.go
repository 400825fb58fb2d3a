// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package dashboard

import (
	"github.com/parkerlabs/simdash/pkg/validation"
	"github.com/parkerlabs/simdash/services/dashboard/engine"
	"github.com/parkerlabs/simdash/services/dashboard/registry"
	"github.com/parkerlabs/simdash/services/dashboard/stats"
)

// GenerateRequest is the request body for POST /v1/generators/run.
// Numeric fields are pointers so a submitted zero reaches validation
// and gets its own message instead of a generic binding failure.
type GenerateRequest struct {
	// Method selects the generator: lineal, multiplicativo, cuadratico.
	// Required.
	Method string `json:"metodo" binding:"required"`

	// Seed is the starting value x0. Must be positive.
	Seed *int64 `json:"semilla"`

	// A is the multiplier (lineal, multiplicativo) or quadratic
	// coefficient (cuadratico).
	A *int64 `json:"a"`

	// C is the additive increment (lineal only).
	C *int64 `json:"c"`

	// M is the modulus. Must be positive.
	M *int64 `json:"m"`

	// B is the linear coefficient (cuadratico only).
	B *int64 `json:"b"`

	// CConst is the constant term (cuadratico only).
	CConst *int64 `json:"c_const"`

	// Count is how many numbers to generate, 10 to 100000.
	Count *int64 `json:"cantidad"`

	// Bins is the histogram bin count. Default: 10.
	Bins int `json:"bins"`
}

// input converts the request for validation, preserving which fields
// were absent from the body.
func (r *GenerateRequest) input() validation.GeneratorInput {
	return validation.GeneratorInput{
		Seed:   r.Seed,
		A:      r.A,
		C:      r.C,
		M:      r.M,
		B:      r.B,
		CConst: r.CConst,
		Count:  r.Count,
	}
}

// GenerateResponse is the response for POST /v1/generators/run.
type GenerateResponse struct {
	// RunID identifies the stored run in the registry.
	RunID string `json:"run_id"`

	// Method echoes the generator method.
	Method string `json:"metodo"`

	// Numbers is the generated sequence, all values in [0,1).
	Numbers []float64 `json:"numeros"`

	// Statistics summarizes the sequence.
	Statistics *stats.Summary `json:"estadisticas"`

	// Histogram is the binned view of the sequence.
	Histogram *stats.Histogram `json:"histograma"`
}

// ValidationErrorResponse is returned when parameters fail validation.
// Errores lists every violation so a form can be fixed in one pass.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Errores []string `json:"errores"`
}

// BatchRequest is the request body for POST /v1/generators/batch.
type BatchRequest struct {
	GenerateRequest

	// Batches is the number of batches to generate. Default: 5.
	// Batch i runs with semilla+i.
	Batches int `json:"n_lotes"`
}

// PiRequest is the request body for POST /v1/montecarlo/pi.
type PiRequest struct {
	// Samples is the number of random points to throw. Required.
	Samples int `json:"n" binding:"required"`

	// Seed seeds the RNG for reproducible runs. Default: time-based.
	Seed int64 `json:"semilla"`
}

// PiResponse is the response for POST /v1/montecarlo/pi.
type PiResponse struct {
	RunID string `json:"run_id"`
	*engine.PiEstimate
}

// IntegrateRequest is the request body for POST /v1/montecarlo/integrate.
type IntegrateRequest struct {
	// Expression is the integrand in x, e.g. "x^2 + 1". When it does
	// not parse, f(x) = x^2 is used and the response flags the fallback.
	Expression string `json:"funcion"`

	// Lo is the lower integration bound. Required.
	Lo *float64 `json:"a" binding:"required"`

	// Hi is the upper integration bound. Required, must exceed Lo.
	Hi *float64 `json:"b" binding:"required"`

	// Samples is the number of sample points. Required.
	Samples int `json:"n" binding:"required"`

	// Seed seeds the RNG for reproducible runs. Default: time-based.
	Seed int64 `json:"semilla"`
}

// IntegrateResponse is the response for POST /v1/montecarlo/integrate.
type IntegrateResponse struct {
	RunID string `json:"run_id"`

	// Expression is the integrand actually evaluated.
	Expression string `json:"funcion"`

	// Fallback is true when the submitted expression failed to parse
	// and the default f(x) = x^2 was used instead.
	Fallback bool `json:"funcion_fallback"`

	*engine.IntegralEstimate
}

// QualityResponse is the response for POST /v1/runs/:runId/quality.
type QualityResponse struct {
	RunID string `json:"run_id"`

	// Uniformity is the chi-square uniformity test over 10 bins.
	Uniformity *stats.UniformityResult `json:"uniformidad"`

	// SerialCorrelation is the lag-1 Pearson correlation.
	SerialCorrelation float64 `json:"correlacion_serial"`

	// Runs is the runs test for randomness around the median.
	Runs *stats.RunsTestResult `json:"prueba_rachas"`
}

// ListRunsResponse is the response for GET /v1/runs.
type ListRunsResponse struct {
	Runs  []registry.Summary `json:"runs"`
	Total int                `json:"total"`
}

// ClearRunsResponse is the response for DELETE /v1/runs.
type ClearRunsResponse struct {
	Deleted int `json:"deleted"`
}

// AlgorithmDoc describes one algorithm for GET /v1/docs/algorithms.
type AlgorithmDoc struct {
	// Name is the method identifier used by the API.
	Name string `json:"nombre"`

	// Title is the human-readable algorithm name.
	Title string `json:"titulo"`

	// Formula is the recurrence or estimator formula.
	Formula string `json:"formula"`

	// Description explains the algorithm and its parameters.
	Description string `json:"descripcion"`

	// Parameters lists the accepted parameters.
	Parameters []string `json:"parametros"`

	// Application names typical use cases.
	Application string `json:"aplicacion"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Runs    int    `json:"runs"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the error code (optional).
	Code string `json:"code,omitempty"`
}
