// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Semiring matrix algebra: product, element-wise sum, integer power.
//   - All entry points validate before touching outputs; on error no
//     output cell is modified.
//
// Determinism:
//   - Loop order is fixed (i → k → j). ⊕ is an exact, idempotent min/max/or,
//     so accumulation order never changes results.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tropical/semiring"
)

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opMulInto = "MulInto"
	opAdd     = "Add"
	opPower   = "Power"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mulRows computes rows [lo, hi) of c = a ⊗ b.
// c must not alias a or b.
func mulRows(c, a, b *Dense, s semiring.Semiring, lo, hi int) {
	zero := s.Zero()
	var (
		i, k, j int
		aik     semiring.Value
		cRow    []semiring.Value
		bRow    []semiring.Value
	)
	for i = lo; i < hi; i++ {
		cRow = c.Row(i)
		for j = range cRow {
			cRow[j] = zero
		}
		for k = 0; k < a.cols; k++ {
			aik = a.data[i*a.stride+k]
			if aik == zero { // absorbing; contributes nothing under ⊕
				continue
			}
			bRow = b.Row(k)
			for j = range cRow {
				cRow[j] = s.Add(cRow[j], s.Mul(aik, bRow[j]))
			}
		}
	}
}

// mulInto runs the product on the configured backend, handling aliasing.
func mulInto(c, a, b *Dense, s semiring.Semiring, be Backend) {
	dst := c
	if c == a || c == b || sharesBuffer(c, a) || sharesBuffer(c, b) {
		dst = &Dense{rows: c.rows, cols: c.cols, stride: alignedStride(c.cols), owned: true}
		dst.data = make([]semiring.Value, dst.rows*dst.stride)
	}
	be.ForRows(a.rows, b.cols*a.cols, func(lo, hi int) { mulRows(dst, a, b, s, lo, hi) })
	if dst != c {
		for i := 0; i < c.rows; i++ {
			copy(c.Row(i), dst.Row(i))
		}
	}
}

// sharesBuffer reports whether the buffers of two matrices overlap.
func sharesBuffer(x, y *Dense) bool {
	return Overlaps(x.data, y.data)
}

// Mul returns C = A ⊗ B with C[i][j] = ⊕_k A[i][k] ⊗ B[k][j].
//
// Errors: ErrNilMatrix, ErrUnsupported, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r·k·c) time; O(r·c) space.
func Mul(a, b *Dense, s semiring.Semiring, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	c, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	mulInto(c, a, b, s, o.backend)

	return c, nil
}

// MulInto writes A ⊗ B into the preallocated c, which must be
// a.Rows × b.Cols. c may alias a or b.
//
// Errors: ErrNilMatrix, ErrUnsupported, ErrDimensionMismatch.
func MulInto(c, a, b *Dense, s semiring.Semiring, opts ...Option) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateNotNil(c); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := validateSemiring(s); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if c.rows != a.rows || c.cols != b.cols {
		return matrixErrorf(opMulInto, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	mulInto(c, a, b, s, o.backend)

	return nil
}

// Add returns the element-wise sum C[i][j] = A[i][j] ⊕ B[i][j].
//
// Errors: ErrNilMatrix, ErrUnsupported, ErrDimensionMismatch.
func Add(a, b *Dense, s semiring.Semiring) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	c, err := NewDense(a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	var (
		i, j       int
		ar, br, cr []semiring.Value
	)
	for i = 0; i < a.rows; i++ {
		ar, br, cr = a.Row(i), b.Row(i), c.Row(i)
		for j = range cr {
			cr[j] = s.Add(ar[j], br[j])
		}
	}

	return c, nil
}

// Power returns A^n by binary exponentiation; A^0 is the identity.
//
// Errors: ErrNilMatrix, ErrUnsupported, ErrNonSquare.
// Complexity: O(n³ · log k).
func Power(a *Dense, k uint, s semiring.Semiring, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k == 0 {
		return NewIdentity(a.rows, s)
	}
	o := gatherOptions(opts...)

	var (
		result *Dense
		base   = a.Clone()
		tmp    = base.Clone()
	)
	for {
		if k&1 == 1 {
			if result == nil {
				result = base.Clone()
			} else {
				mulInto(tmp, result, base, s, o.backend)
				result, tmp = tmp, result
			}
		}
		k >>= 1
		if k == 0 {
			break
		}
		mulInto(tmp, base, base, s, o.backend)
		base, tmp = tmp, base
	}

	return result, nil
}
