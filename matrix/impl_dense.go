// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, stride-padded) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*stride + j.
//   - Pad every row to a multiple of 4 cells so rows start on aligned offsets.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Never expose padding cells through any public accessor.
//
// AI-Hints:
//   - Hot kernels read Row(i) slices directly; they are cut to the logical width.
//   - AtUnchecked/SetUnchecked skip bounds checks for callers that already validated.
//   - Wrap borrows caller memory; Owned() reports which case applies.
//
// Complexity quicksheet:
//   - NewDense: O(r*stride) zero-init; At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/tropical/semiring"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
	ctxWrap = "Wrap" // ctor tag for Wrap
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// alignCells is the row alignment unit in cells (4 × int32 = 16 bytes).
const alignCells = 4

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major tropical matrix.
//   - rows, cols hold the logical dimensions.
//   - stride is the physical row width; stride >= cols, and for owned
//     matrices stride = cols rounded up to a multiple of 4.
//   - data holds rows*stride cells; cells [i*stride+cols, (i+1)*stride) are padding.
//   - owned is false for matrices produced by Wrap.
type Dense struct {
	rows, cols int
	stride     int
	data       []semiring.Value
	owned      bool
}

// alignedStride returns cols rounded up to a multiple of alignCells.
func alignedStride(cols int) int {
	return (cols + alignCells - 1) &^ (alignCells - 1)
}

// NewDense allocates an owned rows×cols matrix.
// Implementation:
//   - Stage 1: validate rows, cols > 0.
//   - Stage 2: compute the aligned stride and guard rows*stride against overflow.
//   - Stage 3: allocate; Go zero-fills, so every cell (padding included) reads 0.
//
// Errors: ErrInvalidDimensions, ErrOutOfMemory.
// Complexity: O(rows*stride).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	stride := alignedStride(cols)
	if stride < cols || rows > math.MaxInt/stride {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrOutOfMemory)
	}

	return &Dense{
		rows:   rows,
		cols:   cols,
		stride: stride,
		data:   make([]semiring.Value, rows*stride),
		owned:  true,
	}, nil
}

// NewZero returns a rows×cols matrix filled with s.Zero().
func NewZero(rows, cols int, s semiring.Semiring) (*Dense, error) {
	if err := validateSemiring(s); err != nil {
		return nil, fmt.Errorf("NewZero: %w", err)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(s.Zero())

	return m, nil
}

// NewIdentity returns the n×n identity of s: One on the diagonal, Zero elsewhere.
func NewIdentity(n int, s semiring.Semiring) (*Dense, error) {
	m, err := NewZero(n, n, s)
	if err != nil {
		return nil, err
	}
	one := s.One()
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = one
	}

	return m, nil
}

// NewFromRows builds an owned matrix from a rectangular slice of rows.
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows.
func NewFromRows(rows [][]semiring.Value) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(row), m.cols, ErrDimensionMismatch)
		}
		copy(m.data[i*m.stride:], row)
	}

	return m, nil
}

// Wrap builds a non-owning matrix over caller memory laid out with the given
// stride. The caller keeps the buffer alive and may observe every write.
// Any stride >= cols is accepted.
//
// Errors: ErrNilVector (nil data), ErrInvalidDimensions, ErrBadStride.
func Wrap(data []semiring.Value, rows, cols, stride int) (*Dense, error) {
	if data == nil {
		return nil, fmt.Errorf("%s: %w", ctxWrap, ErrNilVector)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxWrap, rows, cols, ErrInvalidDimensions)
	}
	if stride < cols {
		return nil, fmt.Errorf("%s: stride %d < cols %d: %w", ctxWrap, stride, cols, ErrBadStride)
	}
	if rows-1 > (math.MaxInt-cols)/stride || len(data) < (rows-1)*stride+cols {
		return nil, fmt.Errorf("%s: buffer of %d cells too short: %w", ctxWrap, len(data), ErrBadStride)
	}

	return &Dense{rows: rows, cols: cols, stride: stride, data: data, owned: false}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.rows, m.cols }

// Stride returns the physical row width in cells.
func (m *Dense) Stride() int { return m.stride }

// Owned reports whether the matrix owns its buffer (false after Wrap).
func (m *Dense) Owned() bool { return m.owned }

// Data returns the raw backing buffer, padding included, for I/O layers
// that need the strided layout. Writes through it are visible in m.
func (m *Dense) Data() []semiring.Value { return m.data }

// Release drops the buffer reference. The matrix must not be used afterwards;
// validated operations report ErrNilMatrix for it.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.rows, m.cols, m.stride = 0, 0, 0
}

// IsSquare reports rows == cols.
func (m *Dense) IsSquare() bool { return m.rows == m.cols }

// At returns m[i,j] or ErrOutOfRange.
func (m *Dense) At(i, j int) (semiring.Value, error) {
	if m == nil || m.data == nil {
		return 0, denseErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.stride+j], nil
}

// Set writes m[i,j] = v or returns ErrOutOfRange.
func (m *Dense) Set(i, j int, v semiring.Value) error {
	if m == nil || m.data == nil {
		return denseErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.stride+j] = v

	return nil
}

// AtUnchecked returns m[i,j] without bounds checks beyond the runtime's.
// Indices in the padding region are a caller bug.
func (m *Dense) AtUnchecked(i, j int) semiring.Value { return m.data[i*m.stride+j] }

// SetUnchecked writes m[i,j] without bounds checks beyond the runtime's.
func (m *Dense) SetUnchecked(i, j int, v semiring.Value) { m.data[i*m.stride+j] = v }

// Row returns row i cut to the logical width. The slice aliases m.
// It panics on an out-of-range i; use RowChecked at API boundaries.
func (m *Dense) Row(i int) []semiring.Value {
	base := i * m.stride

	return m.data[base : base+m.cols : base+m.cols]
}

// RowChecked is Row with ErrOutOfRange instead of a panic.
func (m *Dense) RowChecked(i int) ([]semiring.Value, error) {
	if m == nil || m.data == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.Row(i), nil
}

// Fill writes v into every logical cell; padding is left untouched.
func (m *Dense) Fill(v semiring.Value) {
	var i, j int
	for i = 0; i < m.rows; i++ {
		row := m.Row(i)
		for j = range row {
			row[j] = v
		}
	}
}

// Clone returns an owned deep copy with an aligned stride, even when m is
// a wrapped matrix with an arbitrary stride.
func (m *Dense) Clone() *Dense {
	out := &Dense{
		rows:   m.rows,
		cols:   m.cols,
		stride: alignedStride(m.cols),
		owned:  true,
	}
	out.data = make([]semiring.Value, m.rows*out.stride)
	for i := 0; i < m.rows; i++ {
		copy(out.Row(i), m.Row(i))
	}

	return out
}

// CopyFrom copies src into m; shapes must match.
func (m *Dense) CopyFrom(src *Dense) error {
	if err := ValidateSameShape(m, src); err != nil {
		return fmt.Errorf("CopyFrom: %w", err)
	}
	for i := 0; i < m.rows; i++ {
		copy(m.Row(i), src.Row(i))
	}

	return nil
}

// Equal reports whether both matrices have the same shape and logical cells.
// Stride and padding are ignored.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		a, b := m.Row(i), o.Row(i)
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}

	return true
}

// Do calls fn for every logical cell in row-major order; stops when fn returns false.
func (m *Dense) Do(fn func(i, j int, v semiring.Value) bool) {
	for i := 0; i < m.rows; i++ {
		for j, v := range m.Row(i) {
			if !fn(i, j, v) {
				return
			}
		}
	}
}

// String renders the matrix row by row, sentinels as ±inf.
func (m *Dense) String() string {
	if m == nil || m.data == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(v.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
