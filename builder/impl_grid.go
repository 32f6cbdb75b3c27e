// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   • rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Cell (r, c) is vertex r*cols + c (row-major).
//   • For each cell emits Right (r, c+1) then Down (r+1, c) where present.
//     The result is a DAG from the top-left to the bottom-right corner.

package builder

import "fmt"

// Grid returns a Constructor for a rows×cols lattice with right and down
// edges.
func Grid(rows, cols int) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := emit(dst, cfg, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(dst, cfg, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
