// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command simdash is the CLI for the simulation dashboard.
//
// It can run the HTTP server, generate sequences locally, estimate π
// and integrals, and export sequences to CSV or JSON files without a
// server round-trip.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var config Config

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		config = DefaultConfig()

		yamlFile, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Error reading %s: %v", configPath, err)
			}
			// No config file: run with defaults
			return
		}

		if err := yaml.Unmarshal(yamlFile, &config); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
	}
}
