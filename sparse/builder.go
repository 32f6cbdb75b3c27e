// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const (
	opBuilderAdd   = "Builder.Add"
	opBuilderBuild = "Builder.Build"
)

type triplet struct {
	row, col int
	v        semiring.Value
}

// Builder accumulates (row, col, value) triplets and produces a CSR in
// one sort. Duplicate coordinates combine with ⊕; zeros are dropped.
// A Builder is not safe for concurrent use.
type Builder struct {
	rows, cols int
	s          semiring.Semiring
	entries    []triplet
}

// NewBuilder returns a builder for a rows×cols matrix over s.
func NewBuilder(rows, cols int, s semiring.Semiring) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewBuilder: %w", matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateSemiring(s); err != nil {
		return nil, fmt.Errorf("NewBuilder: %w", err)
	}

	return &Builder{rows: rows, cols: cols, s: s}, nil
}

// Add records a triplet. Errors: matrix.ErrOutOfRange.
func (b *Builder) Add(row, col int, v semiring.Value) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return fmt.Errorf("%s(%d,%d): %w", opBuilderAdd, row, col, matrix.ErrOutOfRange)
	}
	b.entries = append(b.entries, triplet{row: row, col: col, v: v})

	return nil
}

// Len returns the number of recorded triplets.
func (b *Builder) Len() int { return len(b.entries) }

// Build sorts the triplets, merges duplicates and returns the matrix.
// The builder can keep accumulating and be built again.
func (b *Builder) Build() (*CSR, error) {
	es := slices.Clone(b.entries)
	slices.SortStableFunc(es, func(x, y triplet) int {
		if c := cmp.Compare(x.row, y.row); c != 0 {
			return c
		}
		return cmp.Compare(x.col, y.col)
	})

	sp, err := New(b.rows, b.cols, len(es), b.s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuilderBuild, err)
	}
	zero := b.s.Zero()
	for k := 0; k < len(es); {
		e := es[k]
		v := e.v
		for k++; k < len(es) && es[k].row == e.row && es[k].col == e.col; k++ {
			v = b.s.Add(v, es[k].v)
		}
		if v == zero {
			continue
		}
		sp.values = append(sp.values, v)
		sp.colIdx = append(sp.colIdx, e.col)
		sp.rowPtr[e.row+1]++
	}
	for i := 0; i < b.rows; i++ {
		sp.rowPtr[i+1] += sp.rowPtr[i]
	}

	return sp, nil
}
