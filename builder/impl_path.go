// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n).
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Emits i→i+1 for i = 0..n-2.

package builder

// Path returns a Constructor for the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := emit(dst, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
