// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the dashboard.
//
// # Description
//
// Metrics cover simulation runs (by method and status), run durations,
// sequence lengths, registry occupancy, and exports. They are exposed
// via the /metrics endpoint for Prometheus + Grafana.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "simdash"

// Subsystem for simulation metrics
const simulationSubsystem = "simulation"

// SimulationMetrics holds all Prometheus metrics for simulation operations.
//
// Initialize once at startup via InitMetrics().
type SimulationMetrics struct {
	// RunsTotal counts simulation runs by method and status.
	// Labels: method (lineal, multiplicativo, cuadratico, pi, integral),
	// status (success, error)
	RunsTotal *prometheus.CounterVec

	// RunDurationSeconds measures wall time per run.
	// Labels: method
	RunDurationSeconds *prometheus.HistogramVec

	// SequenceLength measures the number of values produced per run.
	// Labels: method
	SequenceLength *prometheus.HistogramVec

	// RegistrySize tracks the number of runs currently stored.
	RegistrySize prometheus.Gauge

	// ExportsTotal counts run exports by format.
	// Labels: format (csv, json)
	ExportsTotal *prometheus.CounterVec

	// ValidationFailuresTotal counts rejected parameter sets by method.
	// Labels: method
	ValidationFailuresTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance of SimulationMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *SimulationMetrics

// InitMetrics initializes the default metrics instance.
//
// Creates and registers all Prometheus metrics. Should be called once
// at application startup; panics if called twice (duplicate
// registration against the default registry).
func InitMetrics() *SimulationMetrics {
	DefaultMetrics = &SimulationMetrics{
		RunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: simulationSubsystem,
				Name:      "runs_total",
				Help:      "Total number of simulation runs by method and status",
			},
			[]string{"method", "status"},
		),

		RunDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: simulationSubsystem,
				Name:      "run_duration_seconds",
				Help:      "Wall time per simulation run in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"method"},
		),

		SequenceLength: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: simulationSubsystem,
				Name:      "sequence_length",
				Help:      "Number of values produced per run",
				Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 100000},
			},
			[]string{"method"},
		),

		RegistrySize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: simulationSubsystem,
				Name:      "registry_size",
				Help:      "Number of runs currently stored in the registry",
			},
		),

		ExportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: simulationSubsystem,
				Name:      "exports_total",
				Help:      "Total run exports by format",
			},
			[]string{"format"},
		),

		ValidationFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: simulationSubsystem,
				Name:      "validation_failures_total",
				Help:      "Total rejected parameter sets by method",
			},
			[]string{"method"},
		),
	}

	return DefaultMetrics
}

// Status values for the RunsTotal counter.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
