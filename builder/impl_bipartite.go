// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ MinPartition (else ErrTooFewVertices).
//   • Left side is 0..n1-1, right side n1..n1+n2-1.
//   • Emits every left→right pair, left then right ascending.

package builder

// CompleteBipartite returns a Constructor linking every vertex of the left
// partition to every vertex of the right one.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := emit(dst, cfg, MethodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
