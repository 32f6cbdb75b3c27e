// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n).
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • Hub is CenterVertex; emits hub→i for i = 1..n-1 (a fan-out; combine
//     with WithSymmetric for spokes both ways).

package builder

// Star returns a Constructor for a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := emit(dst, cfg, MethodStar, CenterVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
