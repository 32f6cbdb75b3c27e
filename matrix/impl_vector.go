// SPDX-License-Identifier: MIT

package matrix

import (
	"unsafe"

	"github.com/katalvlaran/tropical/semiring"
)

const (
	opMatVec  = "MatVec"
	opIterate = "Iterate"
	opDot     = "Dot"
)

// matVecRows computes y[i] = ⊕_j A[i][j] ⊗ x[j] for i in [lo, hi).
func matVecRows(a *Dense, x, y []semiring.Value, s semiring.Semiring, lo, hi int) {
	zero := s.Zero()
	var acc semiring.Value
	for i := lo; i < hi; i++ {
		acc = zero
		for j, aij := range a.Row(i) {
			acc = s.Add(acc, s.Mul(aij, x[j]))
		}
		y[i] = acc
	}
}

// Overlaps reports whether x and y share any element of memory.
func Overlaps(x, y []semiring.Value) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	const size = unsafe.Sizeof(semiring.Value(0))
	xs := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	ys := uintptr(unsafe.Pointer(unsafe.SliceData(y)))

	return xs < ys+uintptr(len(y))*size && ys < xs+uintptr(len(x))*size
}

// MatVec computes y = A ⊗ x. y may alias or partially overlap x.
//
// Errors: ErrNilMatrix, ErrNilVector, ErrUnsupported, ErrDimensionMismatch
// (len(x) != cols or len(y) != rows).
func MatVec(a *Dense, x, y []semiring.Value, s semiring.Semiring, opts ...Option) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.cols); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(y, a.rows); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := validateSemiring(s); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	o := gatherOptions(opts...)

	src := x
	if Overlaps(x, y) {
		src = append([]semiring.Value(nil), x...)
	}
	o.backend.ForRows(a.rows, a.cols, func(lo, hi int) { matVecRows(a, src, y, s, lo, hi) })

	return nil
}

// Iterate replaces x with A^n ⊗ x by n successive products.
// A must be square with len(x) == rows.
func Iterate(a *Dense, x []semiring.Value, n uint, s semiring.Semiring, opts ...Option) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opIterate, err)
	}
	if err := ValidateVecLen(x, a.rows); err != nil {
		return matrixErrorf(opIterate, err)
	}
	if err := validateSemiring(s); err != nil {
		return matrixErrorf(opIterate, err)
	}
	if n == 0 {
		return nil
	}
	o := gatherOptions(opts...)

	cur := append([]semiring.Value(nil), x...)
	next := make([]semiring.Value, len(x))
	for ; n > 0; n-- {
		o.backend.ForRows(a.rows, a.cols, func(lo, hi int) { matVecRows(a, cur, next, s, lo, hi) })
		cur, next = next, cur
	}
	copy(x, cur)

	return nil
}

// Dot returns ⊕_i x[i] ⊗ y[i].
func Dot(x, y []semiring.Value, s semiring.Semiring) (semiring.Value, error) {
	if x == nil || y == nil {
		return 0, matrixErrorf(opDot, ErrNilVector)
	}
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	if err := validateSemiring(s); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	acc := s.Zero()
	for i := range x {
		acc = s.Add(acc, s.Mul(x[i], y[i]))
	}

	return acc, nil
}
