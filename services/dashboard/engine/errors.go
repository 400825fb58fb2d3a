// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "errors"

// Sentinel errors for the engine package.
var (
	// ErrZeroModulus indicates the modulus m was zero, which would divide by zero.
	ErrZeroModulus = errors.New("modulus must be greater than zero")

	// ErrUnknownMethod indicates an unrecognized generator method name.
	ErrUnknownMethod = errors.New("unknown generator method")

	// ErrNonPositiveCount indicates a sample count of zero or less.
	ErrNonPositiveCount = errors.New("sample count must be positive")

	// ErrNegativeParameter indicates a parameter that must be non-negative was negative.
	ErrNegativeParameter = errors.New("parameter must be non-negative")

	// ErrNilIntegrand indicates Integrate was called without a function.
	ErrNilIntegrand = errors.New("integrand function is required")
)
