// SPDX-License-Identifier: MIT
// Package: roadflow/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Topology validation errors come from package topology and are wrapped, not
//     re-declared, so errors.Is(err, topology.ErrUnknownNode) works on Build results.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the generator's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator was called without an
// RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
