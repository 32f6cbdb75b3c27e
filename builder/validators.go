// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go - parameter checks shared by constructors. Each returns
// a sentinel-wrapped error carrying the method name and offending values.

package builder

import "fmt"

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validatePartition ensures both sides are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return fmt.Errorf("%s: partitions %d and %d (each must be ≥ %d): %w",
			method, n1, n2, MinPartition, ErrTooFewVertices)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
