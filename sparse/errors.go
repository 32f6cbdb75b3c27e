// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
)

// ErrSparseFormat reports a CSR structure that violates its invariants:
// non-monotonic row pointers, unsorted or duplicate columns, or columns
// out of range. Shape and index errors reuse the matrix package sentinels.
var ErrSparseFormat = errors.New("sparse: invalid CSR format")

// ErrSemiringMismatch is returned when operands carry different semirings.
// It is always wrapped together with matrix.ErrDimensionMismatch.
var ErrSemiringMismatch = errors.New("sparse: semiring mismatch")

func sparseErrorf(op string, err error) error {
	return fmt.Errorf("CSR.%s: %w", op, err)
}
