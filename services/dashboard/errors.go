// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package dashboard

import "errors"

// Sentinel errors for the dashboard service. Handlers map these to
// HTTP status codes via errors.Is.
var (
	// ErrInvalidFormat indicates an unsupported export format.
	ErrInvalidFormat = errors.New("invalid export format")

	// ErrInvalidBounds indicates integration bounds with lo >= hi.
	ErrInvalidBounds = errors.New("invalid integration bounds")
)
