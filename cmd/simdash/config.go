// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

// Config is the CLI configuration loaded from config.yaml.
type Config struct {
	// Server holds HTTP server settings for `simdash serve`.
	Server struct {
		// Port is the HTTP server port.
		Port int `yaml:"port"`

		// MaxRuns bounds the in-memory run registry.
		MaxRuns int `yaml:"max_runs"`

		// OTelEndpoint is the OpenTelemetry collector endpoint.
		// Empty disables tracing.
		OTelEndpoint string `yaml:"otel_endpoint"`

		// Metrics enables the Prometheus /metrics endpoint.
		Metrics bool `yaml:"metrics"`
	} `yaml:"server"`

	// Defaults holds fallback generation parameters for local commands.
	Defaults struct {
		// Count is the sequence length when --count is not given.
		Count int64 `yaml:"count"`

		// Bins is the histogram bin count.
		Bins int `yaml:"bins"`
	} `yaml:"defaults"`

	// Logging holds log settings.
	Logging struct {
		// Dir enables file logging when set.
		Dir string `yaml:"dir"`

		// Level is the minimum level: debug, info, warn, error.
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when config.yaml is
// missing or leaves fields unset.
func DefaultConfig() Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Server.MaxRuns = 200
	cfg.Server.Metrics = true
	cfg.Defaults.Count = 100
	cfg.Defaults.Bins = 10
	cfg.Logging.Level = "info"
	return cfg
}
