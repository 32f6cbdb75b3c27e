// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// DefaultCapacity is the initial entry capacity when New is given <= 0.
const DefaultCapacity = 16

const (
	opNew       = "New"
	opFromDense = "FromDense"
	opSet       = "Set"
	opValidate  = "Validate"
)

// CSR is a compressed-sparse-row tropical matrix.
type CSR struct {
	rows, cols int
	values     []semiring.Value
	colIdx     []int
	rowPtr     []int // len rows+1; rowPtr[rows] == nnz
	s          semiring.Semiring
}

// New returns an empty rows×cols matrix with room for capacity entries.
//
// Errors: matrix.ErrInvalidDimensions, matrix.ErrUnsupported.
func New(rows, cols, capacity int, s semiring.Semiring) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opNew, matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateSemiring(s); err != nil {
		return nil, sparseErrorf(opNew, err)
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &CSR{
		rows:   rows,
		cols:   cols,
		values: make([]semiring.Value, 0, capacity),
		colIdx: make([]int, 0, capacity),
		rowPtr: make([]int, rows+1),
		s:      s,
	}, nil
}

// FromDense stores every cell of d that differs from s.Zero().
// Two passes: count per row, then fill, so storage is allocated once.
func FromDense(d *matrix.Dense, s semiring.Semiring) (*CSR, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	if err := matrix.ValidateSemiring(s); err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	zero := s.Zero()
	rows, cols := d.Shape()

	nnz := 0
	for i := 0; i < rows; i++ {
		for _, v := range d.Row(i) {
			if v != zero {
				nnz++
			}
		}
	}

	sp := &CSR{
		rows:   rows,
		cols:   cols,
		values: make([]semiring.Value, 0, nnz),
		colIdx: make([]int, 0, nnz),
		rowPtr: make([]int, rows+1),
		s:      s,
	}
	for i := 0; i < rows; i++ {
		for j, v := range d.Row(i) {
			if v != zero {
				sp.values = append(sp.values, v)
				sp.colIdx = append(sp.colIdx, j)
			}
		}
		sp.rowPtr[i+1] = len(sp.values)
	}

	return sp, nil
}

// ToDense expands the matrix; absent cells become the semiring zero.
func (sp *CSR) ToDense() *matrix.Dense {
	d, _ := matrix.NewZero(sp.rows, sp.cols, sp.s) // shape and semiring validated at construction
	for i := 0; i < sp.rows; i++ {
		for k := sp.rowPtr[i]; k < sp.rowPtr[i+1]; k++ {
			d.SetUnchecked(i, sp.colIdx[k], sp.values[k])
		}
	}

	return d
}

// Clone returns a deep copy.
func (sp *CSR) Clone() *CSR {
	return &CSR{
		rows:   sp.rows,
		cols:   sp.cols,
		values: slices.Clone(sp.values),
		colIdx: slices.Clone(sp.colIdx),
		rowPtr: slices.Clone(sp.rowPtr),
		s:      sp.s,
	}
}

// Rows returns the number of rows.
func (sp *CSR) Rows() int { return sp.rows }

// Cols returns the number of columns.
func (sp *CSR) Cols() int { return sp.cols }

// NNZ returns the number of stored entries, explicit zeros included.
func (sp *CSR) NNZ() int { return len(sp.values) }

// Cap returns the current entry capacity.
func (sp *CSR) Cap() int { return cap(sp.values) }

// Semiring returns the semiring the matrix was built for.
func (sp *CSR) Semiring() semiring.Semiring { return sp.s }

// RowNNZ returns the stored entries in row; 0 for out-of-range rows.
func (sp *CSR) RowNNZ(row int) int {
	if row < 0 || row >= sp.rows {
		return 0
	}

	return sp.rowPtr[row+1] - sp.rowPtr[row]
}

// Sparsity returns the fraction of cells not stored, 1 - nnz/(rows·cols).
func (sp *CSR) Sparsity() float64 {
	return 1 - float64(len(sp.values))/(float64(sp.rows)*float64(sp.cols))
}

// Values returns a copy of the value array.
func (sp *CSR) Values() []semiring.Value { return slices.Clone(sp.values) }

// ColIndices returns a copy of the column index array.
func (sp *CSR) ColIndices() []int { return slices.Clone(sp.colIdx) }

// RowPointers returns a copy of the row pointer array (length rows+1).
func (sp *CSR) RowPointers() []int { return slices.Clone(sp.rowPtr) }

// Each visits stored entries in row-major order until fn returns false.
func (sp *CSR) Each(fn func(row, col int, v semiring.Value) bool) {
	for i := 0; i < sp.rows; i++ {
		for k := sp.rowPtr[i]; k < sp.rowPtr[i+1]; k++ {
			if !fn(i, sp.colIdx[k], sp.values[k]) {
				return
			}
		}
	}
}

// find returns the position of col in row and whether it is stored.
// When absent, pos is the insertion point that keeps the row sorted.
func (sp *CSR) find(row, col int) (pos int, ok bool) {
	lo, hi := sp.rowPtr[row], sp.rowPtr[row+1]
	pos = lo + sort.SearchInts(sp.colIdx[lo:hi], col)

	return pos, pos < hi && sp.colIdx[pos] == col
}

// At returns the stored value, or the semiring zero when the cell is
// absent or out of bounds. It never fails.
func (sp *CSR) At(row, col int) semiring.Value {
	if row < 0 || row >= sp.rows || col < 0 || col >= sp.cols {
		return sp.s.Zero()
	}
	if pos, ok := sp.find(row, col); ok {
		return sp.values[pos]
	}

	return sp.s.Zero()
}

// Set stores v at (row, col), overwriting an existing entry or inserting
// a new one in column order. Storing the semiring zero keeps an explicit
// entry; Compress removes such entries.
//
// Errors: matrix.ErrOutOfRange.
// Complexity: O(log k) for overwrite, O(nnz) for insert.
func (sp *CSR) Set(row, col int, v semiring.Value) error {
	if row < 0 || row >= sp.rows || col < 0 || col >= sp.cols {
		return fmt.Errorf("CSR.%s(%d,%d): %w", opSet, row, col, matrix.ErrOutOfRange)
	}
	pos, ok := sp.find(row, col)
	if ok {
		sp.values[pos] = v
		return nil
	}
	sp.values = slices.Insert(sp.values, pos, v)
	sp.colIdx = slices.Insert(sp.colIdx, pos, col)
	for r := row + 1; r <= sp.rows; r++ {
		sp.rowPtr[r]++
	}

	return nil
}

// Compress removes stored entries equal to the semiring zero, in place.
func (sp *CSR) Compress() {
	zero := sp.s.Zero()
	w := 0
	start := 0
	for i := 0; i < sp.rows; i++ {
		end := sp.rowPtr[i+1]
		for k := start; k < end; k++ {
			if sp.values[k] != zero {
				sp.values[w] = sp.values[k]
				sp.colIdx[w] = sp.colIdx[k]
				w++
			}
		}
		start = end
		sp.rowPtr[i+1] = w
	}
	sp.values = sp.values[:w]
	sp.colIdx = sp.colIdx[:w]
}

// Validate checks the CSR invariants.
func (sp *CSR) Validate() error {
	if sp == nil {
		return sparseErrorf(opValidate, matrix.ErrNilMatrix)
	}
	if len(sp.rowPtr) != sp.rows+1 || sp.rowPtr[0] != 0 || sp.rowPtr[sp.rows] != len(sp.values) || len(sp.colIdx) != len(sp.values) {
		return sparseErrorf(opValidate, ErrSparseFormat)
	}
	for i := 0; i < sp.rows; i++ {
		lo, hi := sp.rowPtr[i], sp.rowPtr[i+1]
		if lo > hi {
			return fmt.Errorf("CSR.%s: row %d: %w", opValidate, i, ErrSparseFormat)
		}
		for k := lo; k < hi; k++ {
			c := sp.colIdx[k]
			if c < 0 || c >= sp.cols || (k > lo && c <= sp.colIdx[k-1]) {
				return fmt.Errorf("CSR.%s: row %d entry %d: %w", opValidate, i, k, ErrSparseFormat)
			}
		}
	}

	return nil
}
