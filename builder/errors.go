// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; option constructors (WithX)
//     panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, partition)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyIDs indicates more tasks than the selected ID scheme can name.
var ErrTooManyIDs = errors.New("builder: id scheme cannot name every task")

// ErrConstructFailed indicates the target rejected an edge (typically a
// vertex index beyond the target size) or a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")
