// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
	"github.com/katalvlaran/tropical/sparse"
)

// TestMul_MatchesDense compares CSR and dense products on every semiring.
func TestMul_MatchesDense(t *testing.T) {
	for _, s := range semiring.All() {
		t.Run(s.String(), func(t *testing.T) {
			da := randomDense(t, 8, 6, 0.3, s, 1)
			db := randomDense(t, 6, 5, 0.3, s, 2)
			want, err := matrix.Mul(da, db, s)
			require.NoError(t, err)

			a, err := sparse.FromDense(da, s)
			require.NoError(t, err)
			b, err := sparse.FromDense(db, s)
			require.NoError(t, err)
			c, err := sparse.Mul(a, b)
			require.NoError(t, err)
			require.NoError(t, c.Validate())
			require.True(t, c.ToDense().Equal(want))
		})
	}
}

// TestMul_Validation covers shape and semiring mismatches.
func TestMul_Validation(t *testing.T) {
	a, _ := sparse.New(2, 3, 0, semiring.MaxPlus)
	b, _ := sparse.New(2, 3, 0, semiring.MaxPlus)
	_, err := sparse.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	c, _ := sparse.New(3, 3, 0, semiring.MinPlus)
	_, err = sparse.Mul(a, c)
	require.ErrorIs(t, err, sparse.ErrSemiringMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = sparse.Mul(nil, c)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec_MatchesDense checks sparse and dense mat-vec agree.
func TestMatVec_MatchesDense(t *testing.T) {
	for _, s := range semiring.All() {
		d := randomDense(t, 10, 7, 0.25, s, 9)
		sp, err := sparse.FromDense(d, s)
		require.NoError(t, err)

		x := make([]semiring.Value, 7)
		for i := range x {
			x[i] = semiring.Value(i - 3)
			if s == semiring.Boolean {
				x[i] = semiring.Value(i % 2)
			}
		}
		want := make([]semiring.Value, 10)
		got := make([]semiring.Value, 10)
		require.NoError(t, matrix.MatVec(d, x, want, s))
		require.NoError(t, sparse.MatVec(sp, x, got))
		require.Equal(t, want, got, s.String())
	}

	sp, _ := sparse.New(2, 3, 0, semiring.MaxPlus)
	require.ErrorIs(t, sparse.MatVec(sp, make([]semiring.Value, 2), make([]semiring.Value, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, sparse.MatVec(sp, nil, make([]semiring.Value, 2)), matrix.ErrNilVector)
}

// TestMatVec_PartialOverlap writes y over a shifted window of x.
func TestMatVec_PartialOverlap(t *testing.T) {
	d := randomDense(t, 5, 5, 0.5, semiring.MinPlus, 4)
	sp, err := sparse.FromDense(d, semiring.MinPlus)
	require.NoError(t, err)

	buf := []semiring.Value{3, -1, 4, 1, -5, 9, 2}
	x := buf[2:]
	want := make([]semiring.Value, 5)
	require.NoError(t, sparse.MatVec(sp, x, want))

	require.NoError(t, sparse.MatVec(sp, x, buf[:5]))
	require.Equal(t, want, buf[:5])
}

// TestClosure_MatchesDense uses the dense round trip.
func TestClosure_MatchesDense(t *testing.T) {
	d := randomDense(t, 6, 6, 0.3, semiring.MaxMin, 4)
	want, err := matrix.Closure(d, semiring.MaxMin)
	require.NoError(t, err)

	sp, err := sparse.FromDense(d, semiring.MaxMin)
	require.NoError(t, err)
	star, err := sparse.Closure(sp)
	require.NoError(t, err)
	require.True(t, star.ToDense().Equal(want))

	rect, _ := sparse.New(2, 3, 0, semiring.MaxMin)
	_, err = sparse.Closure(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
