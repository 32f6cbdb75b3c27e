// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// TestClosure_MinPlusShortestPaths checks hand-computed APSP.
func TestClosure_MinPlusShortestPaths(t *testing.T) {
	d, err := matrix.Closure(minPlusGraph(t), semiring.MinPlus)
	require.NoError(t, err)

	want := mustDense(t, [][]semiring.Value{
		{0, 3, 1, 8},
		{pinf, 0, pinf, 5},
		{pinf, 2, 0, 7},
		{pinf, pinf, pinf, 0},
	})
	require.True(t, d.Equal(want), d.String())
}

// TestClosure_DoesNotMutateInput guards the copy-then-relax contract.
func TestClosure_DoesNotMutateInput(t *testing.T) {
	a := minPlusGraph(t)
	before := a.Clone()
	_, err := matrix.Closure(a, semiring.MinPlus)
	require.NoError(t, err)
	require.True(t, a.Equal(before))
}

// nonDivergent returns a random matrix whose closure is finite under s.
func nonDivergent(t *testing.T, n int, s semiring.Semiring, seed int64) *matrix.Dense {
	a := randomDense(t, n, n, s, seed)
	a.Do(func(i, j int, v semiring.Value) bool {
		switch {
		case s == semiring.MinPlus && v != pinf && v < 0:
			a.SetUnchecked(i, j, -v)
		case s == semiring.MaxPlus && v != ninf && v > 0:
			a.SetUnchecked(i, j, -v)
		}
		return true
	})

	return a
}

// TestClosure_IdempotentAndReflexive checks (A*)* = A* and diag ⊒ one.
func TestClosure_IdempotentAndReflexive(t *testing.T) {
	for _, s := range semiring.All() {
		t.Run(s.String(), func(t *testing.T) {
			a := nonDivergent(t, 9, s, 77)
			star, err := matrix.Closure(a, s)
			require.NoError(t, err)
			again, err := matrix.Closure(star, s)
			require.NoError(t, err)
			require.True(t, again.Equal(star))

			for i := 0; i < 9; i++ {
				d := star.AtUnchecked(i, i)
				require.Equal(t, d, s.Add(d, s.One()), "diag %d", i)
			}
		})
	}
}

// TestClosure_MatchesPowerSum checks A* = I ⊕ A ⊕ ... ⊕ A^(n-1) on non-divergent inputs.
func TestClosure_MatchesPowerSum(t *testing.T) {
	const n = 6
	for _, s := range semiring.All() {
		t.Run(s.String(), func(t *testing.T) {
			a := nonDivergent(t, n, s, 5)
			star, err := matrix.Closure(a, s)
			require.NoError(t, err)

			sum, err := matrix.NewIdentity(n, s)
			require.NoError(t, err)
			for k := uint(1); k < n; k++ {
				p, err := matrix.Power(a, k, s)
				require.NoError(t, err)
				sum, err = matrix.Add(sum, p, s)
				require.NoError(t, err)
			}
			require.True(t, star.Equal(sum), "star\n%s\nsum\n%s", star, sum)
		})
	}
}

// TestTransitiveClosure excludes empty paths.
func TestTransitiveClosure(t *testing.T) {
	tc, err := matrix.TransitiveClosure(minPlusGraph(t), semiring.MinPlus)
	require.NoError(t, err)
	require.Equal(t, pinf, tc.AtUnchecked(0, 0))
	require.Equal(t, semiring.Value(3), tc.AtUnchecked(0, 1))
	require.Equal(t, semiring.Value(8), tc.AtUnchecked(0, 3))
}

// TestClosure_Validation covers the error paths.
func TestClosure_Validation(t *testing.T) {
	_, err := matrix.Closure(nil, semiring.MinPlus)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Closure(randomDense(t, 2, 3, semiring.MinPlus, 1), semiring.MinPlus)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.TransitiveClosure(minPlusGraph(t), semiring.Semiring(9))
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}
