// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - Wheel(n).
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Rim is the ring 1→2→…→n-1→1, emitted first; then spokes hub→i.

package builder

// Wheel returns a Constructor for a rim of n-1 vertices plus a hub at
// CenterVertex.
func Wheel(n int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := emit(dst, cfg, MethodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := emit(dst, cfg, MethodWheel, CenterVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
