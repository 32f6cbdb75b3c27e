// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Kleene star A* = I ⊕ A ⊕ A² ⊕ ... by semiring Floyd–Warshall relaxation.
//   - One kernel serves all five semirings: shortest paths (min-plus),
//     longest paths (max-plus), widest paths (max-min), minimax paths
//     (min-max) and reachability (boolean).
//
// Contract:
//   - Square matrix; A[i][j] is the weight of edge i→j and A*[i][j] is the
//     optimal value over paths from i to j of any length ≥ 0.
//   - Loop order is fixed (k → i → j); row k is snapshotted per layer so
//     rows within a layer are independent.

package matrix

import (
	"github.com/katalvlaran/tropical/semiring"
)

// Operation name constants for unified error wrapping.
const (
	opClosure           = "Closure"
	opTransitiveClosure = "TransitiveClosure"
)

// relaxRows applies D[i][j] ⊕= D[i][k] ⊗ K[j] for i in [lo, hi).
func relaxRows(d *Dense, krow []semiring.Value, k int, s semiring.Semiring, lo, hi int) {
	zero := s.Zero()
	var (
		i, j int
		ik   semiring.Value
		row  []semiring.Value
	)
	for i = lo; i < hi; i++ {
		row = d.Row(i)
		ik = row[k] // read once per row
		if ik == zero {
			continue // i cannot reach k
		}
		for j = range row {
			row[j] = s.Add(row[j], s.Mul(ik, krow[j]))
		}
	}
}

// closureInPlace runs the reflexive step and n relaxation layers on d.
// Time: O(n³); extra space: O(n) for the row-k snapshot.
func closureInPlace(d *Dense, s semiring.Semiring, be Backend) {
	n := d.rows
	one := s.One()

	var i, k int
	for i = 0; i < n; i++ {
		d.data[i*d.stride+i] = s.Add(d.data[i*d.stride+i], one)
	}

	krow := make([]semiring.Value, n)
	for k = 0; k < n; k++ {
		copy(krow, d.Row(k))
		be.ForRows(n, n, func(lo, hi int) { relaxRows(d, krow, k, s, lo, hi) })
	}
}

// Closure returns the Kleene star A* of a square matrix.
//
// Under max-plus with a positive-weight cycle the true star diverges; the
// result is then the value reached after the n relaxation layers.
//
// Errors: ErrNilMatrix, ErrUnsupported, ErrNonSquare.
// Complexity: Time O(n³), extra space O(n²) for the result.
func Closure(a *Dense, s semiring.Semiring, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opClosure, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opClosure, err)
	}
	o := gatherOptions(opts...)
	d := a.Clone()
	closureInPlace(d, s, o.backend)

	return d, nil
}

// TransitiveClosure returns A⁺ = A* ⊗ A: paths of length ≥ 1 only.
func TransitiveClosure(a *Dense, s semiring.Semiring, opts ...Option) (*Dense, error) {
	star, err := Closure(a, s, opts...)
	if err != nil {
		return nil, matrixErrorf(opTransitiveClosure, err)
	}
	o := gatherOptions(opts...)
	mulInto(star, star, a, s, o.backend)

	return star, nil
}
