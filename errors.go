// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package celllattice

import "errors"

var (
	// ErrInvalidArgument reports a non-positive spacing, extent or domain
	// size, or a negative displacement bound. No points are produced.
	ErrInvalidArgument = errors.New("celllattice: invalid argument")

	// ErrNilSampler reports a stochastic operation called without a
	// random source.
	ErrNilSampler = errors.New("celllattice: sampler is required")
)
