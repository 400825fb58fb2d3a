// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string

	// generator flags
	genMethod string
	genSeed   int64
	genA      int64
	genC      int64
	genM      int64
	genB      int64
	genCConst int64
	genCount  int64

	// monte carlo flags
	mcSamples    int
	mcSeed       int64
	mcExpression string
	mcLo         float64
	mcHi         float64

	// export flags
	exportFormat string
	exportOut    string

	// output flags
	outputJSON  bool
	outputQuiet bool

	rootCmd = &cobra.Command{
		Use:   "simdash",
		Short: "A cli for the Parker Labs simulation dashboard",
		Long: `Simdash runs congruential pseudo-random generators, descriptive
statistics, and Monte Carlo estimators, locally or as an HTTP service.`,
	}

	// --- Server ---
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Run:   runServe, // Defined in cmd_serve.go
	}

	// --- Local generation ---
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a pseudo-random sequence and print its statistics",
		Run:   runGenerate, // Defined in cmd_generate.go
	}

	// --- Monte Carlo ---
	piCmd = &cobra.Command{
		Use:   "pi",
		Short: "Estimate π by Monte Carlo sampling",
		Run:   runPi, // Defined in cmd_montecarlo.go
	}
	integrateCmd = &cobra.Command{
		Use:   "integrate",
		Short: "Estimate a definite integral by Monte Carlo sampling",
		Run:   runIntegrate, // Defined in cmd_montecarlo.go
	}

	// --- Export ---
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Generate a sequence and write it to a CSV or JSON file",
		Run:   runExport, // Defined in cmd_export.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&outputQuiet, "quiet", "q", false,
		"No output, exit code only")

	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(generateCmd)
	addGeneratorFlags(generateCmd)

	rootCmd.AddCommand(piCmd)
	piCmd.Flags().IntVarP(&mcSamples, "samples", "n", 10000, "Number of random points")
	piCmd.Flags().Int64Var(&mcSeed, "seed", 0, "RNG seed (0 for time-based)")

	rootCmd.AddCommand(integrateCmd)
	integrateCmd.Flags().StringVarP(&mcExpression, "function", "f", "x^2",
		"Integrand expression in x (numbers, x, + - * / ^, parentheses)")
	integrateCmd.Flags().Float64Var(&mcLo, "from", 0, "Lower integration bound")
	integrateCmd.Flags().Float64Var(&mcHi, "to", 1, "Upper integration bound")
	integrateCmd.Flags().IntVarP(&mcSamples, "samples", "n", 10000, "Number of sample points")
	integrateCmd.Flags().Int64Var(&mcSeed, "seed", 0, "RNG seed (0 for time-based)")

	rootCmd.AddCommand(exportCmd)
	addGeneratorFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"Output file path (default: resultados_<method>_<timestamp>.<format>)")
}

// addGeneratorFlags registers the shared congruential generator flags.
func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&genMethod, "method", "m", "lineal",
		"Generator method: lineal, multiplicativo, cuadratico")
	cmd.Flags().Int64Var(&genSeed, "seed", 7, "Seed x0 (must be positive)")
	cmd.Flags().Int64Var(&genA, "a", 1103515245, "Multiplier a")
	cmd.Flags().Int64Var(&genC, "c", 12345, "Increment c (lineal only)")
	cmd.Flags().Int64Var(&genM, "modulus", 2147483648, "Modulus m")
	cmd.Flags().Int64Var(&genB, "b", 0, "Linear coefficient b (cuadratico only)")
	cmd.Flags().Int64Var(&genCConst, "c-const", 0, "Constant term (cuadratico only)")
	cmd.Flags().Int64VarP(&genCount, "count", "n", 0,
		"How many numbers to generate (default from config)")
}
