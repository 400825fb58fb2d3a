// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/parkerlabs/simdash/pkg/logging"
	"github.com/parkerlabs/simdash/services/dashboard"
)

// runServe starts the dashboard HTTP server and blocks.
func runServe(cmd *cobra.Command, args []string) {
	logger := logging.New(logging.Config{
		Level:   parseLogLevel(config.Logging.Level),
		LogDir:  config.Logging.Dir,
		Service: "dashboard",
		Quiet:   outputQuiet,
	})
	defer logger.Close()

	cfg := dashboard.Config{
		Port:          config.Server.Port,
		MaxRuns:       config.Server.MaxRuns,
		OTelEndpoint:  config.Server.OTelEndpoint,
		EnableMetrics: config.Server.Metrics,
	}

	svc, err := dashboard.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create dashboard: %v", err)
	}

	logger.Info("Serving dashboard", "port", cfg.Port)
	if err := svc.Run(); err != nil {
		log.Fatalf("Dashboard error: %v", err)
	}
}

// parseLogLevel maps config strings to logging levels.
func parseLogLevel(level string) logging.Level {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
