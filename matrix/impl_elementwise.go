// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Shape and element-wise operations: transpose, scalar ⊗, Hadamard ⊗.
//   - Each allocates exactly one owned result; operands are never mutated.
//
// Determinism:
//   - Fixed i → j traversal; results depend only on inputs.

package matrix

import "github.com/katalvlaran/tropical/semiring"

const (
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
)

// Transpose returns Aᵀ. Under the edge convention A[u][v] = w(u→v) the
// result describes the reversed graph.
//
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and space.
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(a.cols, a.rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var (
		i, j int
		row  []semiring.Value
	)
	for i = 0; i < a.rows; i++ {
		row = a.Row(i)
		for j = range row {
			res.data[j*res.stride+i] = row[j]
		}
	}

	return res, nil
}

// Scale returns λ ⊗ A, i.e. s.Mul(λ, A[i][j]) for every cell. Under
// max-plus, Scale(A, -λ) with λ the eigenvalue normalises A so that its
// critical cycles have mean zero.
//
// Errors: ErrNilMatrix, ErrUnsupported.
// Complexity: O(r·c).
func Scale(a *Dense, lambda semiring.Value, s semiring.Semiring) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var (
		i, j   int
		ar, rr []semiring.Value
	)
	for i = 0; i < a.rows; i++ {
		ar, rr = a.Row(i), res.Row(i)
		for j = range rr {
			rr[j] = s.Mul(lambda, ar[j])
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product C[i][j] = A[i][j] ⊗ B[i][j].
// Under max-plus this sums two weight layers and keeps a cell only where
// both layers have an edge.
//
// Errors: ErrNilMatrix, ErrUnsupported, ErrDimensionMismatch.
// Complexity: O(r·c).
func Hadamard(a, b *Dense, s semiring.Semiring) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := NewDense(a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	var (
		i, j       int
		ar, br, rr []semiring.Value
	)
	for i = 0; i < a.rows; i++ {
		ar, br, rr = a.Row(i), b.Row(i), res.Row(i)
		for j = range rr {
			rr[j] = s.Mul(ar[j], br[j])
		}
	}

	return res, nil
}
