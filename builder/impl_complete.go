// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); Complete(1) emits nothing.
//   • Emits every ordered pair i→j with i ≠ j, i then j ascending.
//
// Complexity: O(n²).

package builder

// Complete returns a Constructor for the complete directed graph on n
// vertices without self-loops.
func Complete(n int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, 1); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := emit(dst, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
