// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const (
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opClosure = "Closure"
)

// Mul returns C = A ⊗ B in CSR form. Each output row is accumulated in a
// dense scratch row of width b.Cols and only non-zero cells are emitted.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch. A semiring
// mismatch matches both ErrSemiringMismatch and matrix.ErrDimensionMismatch.
// Complexity: O(Σ_i Σ_{k∈row i} nnz(B row k) + rows·cols) time.
func Mul(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opMul, matrix.ErrNilMatrix)
	}
	if a.s != b.s {
		return nil, fmt.Errorf("CSR.%s: %v vs %v: %w: %w", opMul, a.s, b.s, ErrSemiringMismatch, matrix.ErrDimensionMismatch)
	}
	if a.cols != b.rows {
		return nil, sparseErrorf(opMul, matrix.ErrDimensionMismatch)
	}

	s := a.s
	zero := s.Zero()
	c := &CSR{
		rows:   a.rows,
		cols:   b.cols,
		rowPtr: make([]int, a.rows+1),
		s:      s,
	}
	acc := make([]semiring.Value, b.cols)

	var (
		i, ka, kb, j, col int
		aik               semiring.Value
	)
	for i = 0; i < a.rows; i++ {
		for j = range acc {
			acc[j] = zero
		}
		for ka = a.rowPtr[i]; ka < a.rowPtr[i+1]; ka++ {
			aik = a.values[ka]
			if aik == zero {
				continue
			}
			col = a.colIdx[ka]
			for kb = b.rowPtr[col]; kb < b.rowPtr[col+1]; kb++ {
				j = b.colIdx[kb]
				acc[j] = s.Add(acc[j], s.Mul(aik, b.values[kb]))
			}
		}
		for j = range acc {
			if acc[j] != zero {
				c.values = append(c.values, acc[j])
				c.colIdx = append(c.colIdx, j)
			}
		}
		c.rowPtr[i+1] = len(c.values)
	}

	return c, nil
}

// MatVec computes y = A ⊗ x reading stored entries only. y may alias or
// partially overlap x.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNilVector, matrix.ErrDimensionMismatch.
func MatVec(a *CSR, x, y []semiring.Value) error {
	if a == nil {
		return sparseErrorf(opMatVec, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(x, a.cols); err != nil {
		return sparseErrorf(opMatVec, err)
	}
	if err := matrix.ValidateVecLen(y, a.rows); err != nil {
		return sparseErrorf(opMatVec, err)
	}

	src := x
	if matrix.Overlaps(x, y) {
		src = append([]semiring.Value(nil), x...)
	}
	s := a.s
	for i := 0; i < a.rows; i++ {
		acc := s.Zero()
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			acc = s.Add(acc, s.Mul(a.values[k], src[a.colIdx[k]]))
		}
		y[i] = acc
	}

	return nil
}

// Closure computes A* by expanding to dense, running matrix.Closure and
// compressing the result. Memory is O(n²) for the duration of the call.
func Closure(a *CSR, opts ...matrix.Option) (*CSR, error) {
	if a == nil {
		return nil, sparseErrorf(opClosure, matrix.ErrNilMatrix)
	}
	star, err := matrix.Closure(a.ToDense(), a.s, opts...)
	if err != nil {
		return nil, sparseErrorf(opClosure, err)
	}

	return FromDense(star, a.s)
}
