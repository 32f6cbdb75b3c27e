// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices); Cycle(1) is a self-loop.
//   • Emits i→(i+1)%n for i ascending.
//
// Complexity: O(n).

package builder

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := emit(dst, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
