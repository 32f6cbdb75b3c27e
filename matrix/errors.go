// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// and vector routines. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user-triggered error
// conditions; unchecked accessors are the documented exception.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with fmt.Errorf("<op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil input -> semiring -> dimensions -> shape agreement -> squareness -> index.

var (
	// ErrNilMatrix indicates a nil or released *Dense where a matrix was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates a nil vector argument.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrInvalidDimensions is returned when a requested shape is not positive.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows or MatVec with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates a row, column, or vertex index outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrOutOfMemory is returned when rows*stride does not fit the address space.
	ErrOutOfMemory = errors.New("matrix: allocation too large")

	// ErrBadStride is returned by Wrap when stride < cols or the buffer is short.
	ErrBadStride = errors.New("matrix: invalid stride")

	// ErrUnsupported is returned for semiring tags outside the defined set,
	// or for operations a semiring cannot express.
	ErrUnsupported = errors.New("matrix: unsupported semiring")
)

// Backward-compatibility alias.
var (
	// Deprecated: use ErrOutOfRange.
	ErrIndexOutOfBounds = ErrOutOfRange
)
