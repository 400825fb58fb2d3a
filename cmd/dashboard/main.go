// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command dashboard starts the simdash dashboard HTTP server.
//
// This is the main entry point for the containerized dashboard service.
// It reads configuration from environment variables and starts the server.
//
// # Environment Variables
//
//   - DASHBOARD_PORT: HTTP server port (default: 8080)
//   - DASHBOARD_MAX_RUNS: Run registry capacity (default: 200)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OpenTelemetry collector (optional)
//   - GIN_MODE: Gin framework mode - debug, release, test
//
// # Usage
//
//	# Build
//	go build -o dashboard ./cmd/dashboard
//
//	# Run
//	./dashboard
package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/parkerlabs/simdash/services/dashboard"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Build configuration from environment variables
	cfg := dashboard.Config{
		Port:          getEnvInt("DASHBOARD_PORT", 8080),
		MaxRuns:       getEnvInt("DASHBOARD_MAX_RUNS", 200),
		OTelEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		EnableMetrics: true,
	}

	slog.Info("Starting dashboard",
		"port", cfg.Port,
		"max_runs", cfg.MaxRuns,
		"otel_endpoint", cfg.OTelEndpoint,
	)

	svc, err := dashboard.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create dashboard: %v", err)
	}

	// Run the server (blocks until shutdown)
	if err := svc.Run(); err != nil {
		log.Fatalf("Dashboard error: %v", err)
	}
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
