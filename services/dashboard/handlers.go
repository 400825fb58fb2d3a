// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package dashboard

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/parkerlabs/simdash/pkg/validation"
	"github.com/parkerlabs/simdash/services/dashboard/engine"
	"github.com/parkerlabs/simdash/services/dashboard/export"
	"github.com/parkerlabs/simdash/services/dashboard/expr"
	"github.com/parkerlabs/simdash/services/dashboard/observability"
	"github.com/parkerlabs/simdash/services/dashboard/registry"
	"github.com/parkerlabs/simdash/services/dashboard/stats"
)

// ServiceVersion is the dashboard service version.
const ServiceVersion = "0.1.0"

// Handlers contains the HTTP handlers for the dashboard.
type Handlers struct {
	registry *registry.Registry
	metrics  *observability.SimulationMetrics
}

// NewHandlers creates handlers backed by the given run registry.
// metrics may be nil when metrics are disabled.
func NewHandlers(reg *registry.Registry, metrics *observability.SimulationMetrics) *Handlers {
	return &Handlers{registry: reg, metrics: metrics}
}

// HandleGenerate handles POST /v1/generators/run.
//
// Description:
//
//	Validates the parameters, runs the congruential generator, computes
//	descriptive statistics and a histogram, and stores the run.
//
// Request Body:
//
//	GenerateRequest
//
// Response:
//
//	200 OK: GenerateResponse
//	400 Bad Request: ValidationErrorResponse
//	500 Internal Server Error: Processing error
func (h *Handlers) HandleGenerate(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleGenerate")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	method := engine.Method(req.Method)
	input := req.input()

	if errores := validation.CheckGeneratorParams(method, input); len(errores) > 0 {
		logger.Warn("Parameter validation failed", "method", req.Method, "violations", len(errores))
		if h.metrics != nil {
			h.metrics.ValidationFailuresTotal.WithLabelValues(req.Method).Inc()
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Parámetros inválidos",
			Code:    "INVALID_PARAMS",
			Errores: errores,
		})
		return
	}

	start := time.Now()
	run, resp, err := h.runGenerator(method, input.Params(), req.Bins)
	if err != nil {
		logger.Error("Generation failed", "error", err)
		if h.metrics != nil {
			h.metrics.RunsTotal.WithLabelValues(req.Method, observability.StatusError).Inc()
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "GENERATION_FAILED",
		})
		return
	}

	h.recordRun(run, req.Method, time.Since(start))
	resp.RunID = run.ID

	logger.Info("Run stored",
		"run_id", run.ID,
		"method", req.Method,
		"count", len(run.Numbers))

	c.JSON(http.StatusOK, resp)
}

// runGenerator produces the sequence, statistics, and histogram for a
// single run and builds the registry record for it.
func (h *Handlers) runGenerator(method engine.Method, params engine.Params, bins int) (*registry.Run, *GenerateResponse, error) {
	seq, err := engine.Generate(method, params)
	if err != nil {
		return nil, nil, err
	}

	summary, err := stats.Describe(seq)
	if err != nil {
		return nil, nil, err
	}

	if bins <= 0 {
		bins = stats.DefaultBins
	}
	hist, err := stats.BuildHistogram(seq, bins)
	if err != nil {
		return nil, nil, err
	}

	run := &registry.Run{
		Method:     string(method),
		State:      registry.StateCompleted,
		Params:     &params,
		Numbers:    seq,
		Statistics: &summary,
		Histogram:  &hist,
	}

	resp := &GenerateResponse{
		Method:     string(method),
		Numbers:    seq,
		Statistics: &summary,
		Histogram:  &hist,
	}
	return run, resp, nil
}

// HandleBatch handles POST /v1/generators/batch.
//
// Description:
//
//	Runs the generator n_lotes times with the seed shifted per batch
//	and returns per-batch plus pooled statistics.
//
// Request Body:
//
//	BatchRequest
//
// Response:
//
//	200 OK: engine.BatchResult
//	400 Bad Request: ValidationErrorResponse
func (h *Handlers) HandleBatch(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleBatch")

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	method := engine.Method(req.Method)
	input := req.input()

	if errores := validation.CheckGeneratorParams(method, input); len(errores) > 0 {
		logger.Warn("Parameter validation failed", "method", req.Method, "violations", len(errores))
		if h.metrics != nil {
			h.metrics.ValidationFailuresTotal.WithLabelValues(req.Method).Inc()
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Parámetros inválidos",
			Code:    "INVALID_PARAMS",
			Errores: errores,
		})
		return
	}

	result, err := engine.GenerateBatches(method, input.Params(), req.Batches)
	if err != nil {
		logger.Error("Batch generation failed", "error", err)
		if h.metrics != nil {
			h.metrics.RunsTotal.WithLabelValues(req.Method, observability.StatusError).Inc()
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "GENERATION_FAILED",
		})
		return
	}

	if h.metrics != nil {
		h.metrics.RunsTotal.WithLabelValues(req.Method, observability.StatusSuccess).Inc()
	}

	logger.Info("Batch generated",
		"method", req.Method,
		"batches", result.BatchCount,
		"total_values", result.TotalValues)

	c.JSON(http.StatusOK, result)
}

// HandlePi handles POST /v1/montecarlo/pi.
//
// Response:
//
//	200 OK: PiResponse
//	400 Bad Request: Validation error
func (h *Handlers) HandlePi(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandlePi")

	var req PiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	start := time.Now()
	estimate, err := engine.EstimatePi(req.Samples, newRand(req.Seed))
	if err != nil {
		logger.Warn("Pi estimation rejected", "error", err)
		if h.metrics != nil {
			h.metrics.RunsTotal.WithLabelValues("pi", observability.StatusError).Inc()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_SAMPLE_COUNT",
		})
		return
	}

	run := &registry.Run{
		Method: "pi",
		State:  registry.StateCompleted,
		Pi:     &estimate,
	}
	h.recordRun(run, "pi", time.Since(start))

	logger.Info("Pi estimated",
		"run_id", run.ID,
		"samples", estimate.Samples,
		"estimate", estimate.Estimate)

	c.JSON(http.StatusOK, PiResponse{RunID: run.ID, PiEstimate: &estimate})
}

// HandleIntegrate handles POST /v1/montecarlo/integrate.
//
// Description:
//
//	Compiles the integrand expression and estimates the integral by
//	Monte Carlo mean sampling. An expression that fails to compile is
//	replaced with f(x) = x^2 and the response flags the fallback.
//
// Response:
//
//	200 OK: IntegrateResponse
//	400 Bad Request: Validation error
func (h *Handlers) HandleIntegrate(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleIntegrate")

	var req IntegrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	lo, hi := *req.Lo, *req.Hi
	if lo >= hi {
		logger.Warn("Invalid bounds", "lo", lo, "hi", hi)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrInvalidBounds.Error(),
			Code:  "INVALID_BOUNDS",
		})
		return
	}

	integrand := engine.Integrand(engine.DefaultIntegrand)
	expression := req.Expression
	fallback := false
	if expression != "" {
		f, err := expr.Compile(expr.Normalize(expression))
		if err != nil {
			logger.Warn("Expression rejected, using default integrand",
				"expression", expression, "error", err)
			expression = "x^2"
			fallback = true
		} else {
			integrand = engine.Integrand(f)
		}
	} else {
		expression = "x^2"
	}

	start := time.Now()
	estimate, err := engine.Integrate(integrand, lo, hi, req.Samples, newRand(req.Seed))
	if err != nil {
		logger.Warn("Integration rejected", "error", err)
		if h.metrics != nil {
			h.metrics.RunsTotal.WithLabelValues("integral", observability.StatusError).Inc()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_SAMPLE_COUNT",
		})
		return
	}

	run := &registry.Run{
		Method:   "integral",
		State:    registry.StateCompleted,
		Integral: &estimate,
	}
	h.recordRun(run, "integral", time.Since(start))

	logger.Info("Integral estimated",
		"run_id", run.ID,
		"expression", expression,
		"fallback", fallback,
		"estimate", estimate.Estimate)

	c.JSON(http.StatusOK, IntegrateResponse{
		RunID:            run.ID,
		Expression:       expression,
		Fallback:         fallback,
		IntegralEstimate: &estimate,
	})
}

// HandleQuality handles POST /v1/runs/:runId/quality.
//
// Description:
//
//	Runs the chi-square uniformity test, lag-1 serial correlation, and
//	the runs test against a stored sequence.
//
// Response:
//
//	200 OK: QualityResponse
//	404 Not Found: Unknown run ID
//	422 Unprocessable Entity: Run has no sequence to analyze
func (h *Handlers) HandleQuality(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleQuality")

	run, err := h.registry.Get(c.Param("runId"))
	if err != nil {
		respondRunError(c, logger, err)
		return
	}

	if len(run.Numbers) == 0 {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "run has no sequence to analyze",
			Code:  "NO_SEQUENCE",
		})
		return
	}

	uniformity, err := stats.TestUniformity(run.Numbers, stats.DefaultBins)
	if err != nil {
		logger.Error("Uniformity test failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "QUALITY_FAILED",
		})
		return
	}

	corr := stats.SerialCorrelation(run.Numbers, 1)

	runs, err := stats.TestRuns(run.Numbers)
	if err != nil {
		logger.Error("Runs test failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "QUALITY_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, QualityResponse{
		RunID:             run.ID,
		Uniformity:        &uniformity,
		SerialCorrelation: corr,
		Runs:              &runs,
	})
}

// ListRuns handles GET /v1/runs.
func (h *Handlers) ListRuns(c *gin.Context) {
	runs := h.registry.List()
	c.JSON(http.StatusOK, ListRunsResponse{Runs: runs, Total: len(runs)})
}

// GetRun handles GET /v1/runs/:runId.
func (h *Handlers) GetRun(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "GetRun")

	run, err := h.registry.Get(c.Param("runId"))
	if err != nil {
		respondRunError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// DeleteRun handles DELETE /v1/runs/:runId.
func (h *Handlers) DeleteRun(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "DeleteRun")

	if err := h.registry.Delete(c.Param("runId")); err != nil {
		respondRunError(c, logger, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RegistrySize.Set(float64(h.registry.Len()))
	}
	c.Status(http.StatusNoContent)
}

// ClearRuns handles DELETE /v1/runs.
func (h *Handlers) ClearRuns(c *gin.Context) {
	deleted := h.registry.Clear()
	if h.metrics != nil {
		h.metrics.RegistrySize.Set(0)
	}
	c.JSON(http.StatusOK, ClearRunsResponse{Deleted: deleted})
}

// HandleExport handles GET /v1/runs/:runId/export.
//
// Description:
//
//	Streams the stored run as a CSV or JSON attachment. The format
//	query parameter selects the encoding; default is csv.
//
// Response:
//
//	200 OK: file attachment
//	400 Bad Request: Unsupported format
//	404 Not Found: Unknown run ID
func (h *Handlers) HandleExport(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleExport")

	format := export.Format(c.DefaultQuery("format", "csv"))
	if !format.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrInvalidFormat.Error(),
			Code:  "INVALID_FORMAT",
		})
		return
	}

	run, err := h.registry.Get(c.Param("runId"))
	if err != nil {
		respondRunError(c, logger, err)
		return
	}

	filename := export.Filename(run.Method, format, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", export.ContentType(format))

	if err := export.Write(c.Writer, run, format); err != nil {
		logger.Error("Export failed", "run_id", run.ID, "format", format, "error", err)
		return
	}

	if h.metrics != nil {
		h.metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	}
	logger.Info("Run exported", "run_id", run.ID, "format", format)
}

// HandleDocs handles GET /v1/docs/algorithms.
func (h *Handlers) HandleDocs(c *gin.Context) {
	c.JSON(http.StatusOK, algorithmCatalog)
}

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "dashboard",
		Version: ServiceVersion,
		Runs:    h.registry.Len(),
	})
}

// recordRun inserts the run and updates run metrics.
func (h *Handlers) recordRun(run *registry.Run, method string, elapsed time.Duration) {
	h.registry.Insert(run)
	if h.metrics == nil {
		return
	}
	h.metrics.RunsTotal.WithLabelValues(method, observability.StatusSuccess).Inc()
	h.metrics.RunDurationSeconds.WithLabelValues(method).Observe(elapsed.Seconds())
	if n := len(run.Numbers); n > 0 {
		h.metrics.SequenceLength.WithLabelValues(method).Observe(float64(n))
	}
	h.metrics.RegistrySize.Set(float64(h.registry.Len()))
}

// respondRunError maps registry errors to HTTP responses.
func respondRunError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, registry.ErrRunNotFound) {
		logger.Warn("Run not found", "error", err)
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: err.Error(),
			Code:  "RUN_NOT_FOUND",
		})
		return
	}
	logger.Error("Registry lookup failed", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
		Code:  "INTERNAL",
	})
}

// getOrCreateRequestID returns the X-Request-ID header, generating one
// when absent, and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// newRand builds a reproducible RNG when seed is non-zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// algorithmCatalog backs GET /v1/docs/algorithms.
var algorithmCatalog = []AlgorithmDoc{
	{
		Name:        "lineal",
		Title:       "Congruencial lineal",
		Formula:     "X(n+1) = (a * X(n) + c) mod m",
		Description: "Generador de números pseudoaleatorios usando el método congruencial lineal",
		Parameters:  []string{"semilla", "a", "c", "m", "cantidad"},
		Application: "Simulación básica, juegos, pruebas iniciales",
	},
	{
		Name:        "multiplicativo",
		Title:       "Congruencial multiplicativo",
		Formula:     "X(n+1) = (a * X(n)) mod m",
		Description: "Versión del congruencial sin constante aditiva",
		Parameters:  []string{"semilla", "a", "m", "cantidad"},
		Application: "Cuando se requiere mayor eficiencia",
	},
	{
		Name:        "cuadratico",
		Title:       "Congruencial cuadrático",
		Formula:     "X(n+1) = (a * X(n)^2 + b * X(n) + c) mod m",
		Description: "Generador congruencial con término cuadrático",
		Parameters:  []string{"semilla", "a", "b", "c_const", "m", "cantidad"},
		Application: "Ejercicios de comparación de generadores",
	},
	{
		Name:        "pi",
		Title:       "Monte Carlo: estimación de π",
		Formula:     "π ≈ 4 * (puntos dentro del círculo) / n",
		Description: "Método estadístico para aproximar valores mediante simulación",
		Parameters:  []string{"n", "semilla"},
		Application: "Integración numérica, finanzas, física",
	},
	{
		Name:        "integral",
		Title:       "Monte Carlo: integración numérica",
		Formula:     "∫f(x)dx ≈ (b - a) * media(f(x_i))",
		Description: "Integración por muestreo aleatorio del integrando en [a, b]",
		Parameters:  []string{"funcion", "a", "b", "n", "semilla"},
		Application: "Integrales sin forma cerrada, docencia",
	},
}
