// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package registry keeps simulation runs in memory for later inspection
// and export. There is no persistence: restarting the service clears the
// registry, which matches the lifetime of a teaching session.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/parkerlabs/simdash/services/dashboard/engine"
	"github.com/parkerlabs/simdash/services/dashboard/stats"
)

// ErrRunNotFound indicates the requested run ID is not in the registry.
var ErrRunNotFound = errors.New("run not found")

// DefaultMaxRuns bounds the registry before the oldest runs are evicted.
const DefaultMaxRuns = 200

// RunState tracks the lifecycle of a stored run.
type RunState string

const (
	StateRunning   RunState = "running"
	StateCompleted RunState = "completed"
	StateFailed    RunState = "failed"
)

// Run is a completed (or failed) simulation stored in the registry.
type Run struct {
	// ID is the unique run identifier.
	ID string `json:"id"`

	// Method names the generator or estimator that produced the run.
	Method string `json:"metodo"`

	// CreatedAt is when the run was recorded.
	CreatedAt time.Time `json:"creado_en"`

	// State is the run lifecycle state.
	State RunState `json:"estado"`

	// Params holds the generator parameters, when applicable.
	Params *engine.Params `json:"parametros,omitempty"`

	// Numbers is the generated sequence.
	Numbers []float64 `json:"numeros,omitempty"`

	// Statistics summarizes the sequence.
	Statistics *stats.Summary `json:"estadisticas,omitempty"`

	// Histogram is the binned view of the sequence.
	Histogram *stats.Histogram `json:"histograma,omitempty"`

	// Pi holds a Monte Carlo π estimate, when applicable.
	Pi *engine.PiEstimate `json:"pi,omitempty"`

	// Integral holds a Monte Carlo integration result, when applicable.
	Integral *engine.IntegralEstimate `json:"integral,omitempty"`

	// Error describes why a failed run failed.
	Error string `json:"error,omitempty"`
}

// Summary is the listing view of a run, without the bulk payloads.
type Summary struct {
	ID        string    `json:"id"`
	Method    string    `json:"metodo"`
	CreatedAt time.Time `json:"creado_en"`
	State     RunState  `json:"estado"`
	Count     int       `json:"cantidad"`
}

// Registry is a bounded in-memory run store.
//
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	runs    []*Run
	maxRuns int
}

// New creates a registry that evicts the oldest run once maxRuns is
// exceeded. Non-positive maxRuns falls back to DefaultMaxRuns.
func New(maxRuns int) *Registry {
	if maxRuns <= 0 {
		maxRuns = DefaultMaxRuns
	}
	return &Registry{
		runs:    make([]*Run, 0, maxRuns),
		maxRuns: maxRuns,
	}
}

// Insert stores a run, assigning an ID and timestamp when missing, and
// returns the stored run's ID.
func (r *Registry) Insert(run *Run) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.ID == "" {
		run.ID = generateRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.State == "" {
		run.State = StateCompleted
	}

	r.runs = append(r.runs, run)

	// Keep most recent
	if len(r.runs) > r.maxRuns {
		r.runs = r.runs[len(r.runs)-r.maxRuns:]
	}

	return run.ID
}

// Get returns the run with the given ID.
func (r *Registry) Get(id string) (*Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, run := range r.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
}

// List returns run summaries, most recent first.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, Summary{
			ID:        run.ID,
			Method:    run.Method,
			CreatedAt: run.CreatedAt,
			State:     run.State,
			Count:     len(run.Numbers),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes the run with the given ID.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, run := range r.runs {
		if run.ID == id {
			r.runs = append(r.runs[:i], r.runs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRunNotFound, id)
}

// Clear removes every run and returns how many were removed.
func (r *Registry) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.runs)
	r.runs = make([]*Run, 0, r.maxRuns)
	return n
}

// Len reports the number of stored runs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runs)
}

// generateRunID generates a unique run ID.
func generateRunID() string {
	now := time.Now()
	return fmt.Sprintf("run_%d_%03d", now.UnixNano(), now.Nanosecond()%1000)
}
