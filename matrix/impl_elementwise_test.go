// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

func TestTranspose(t *testing.T) {
	a := mustDense(t, [][]semiring.Value{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", at.String())

	back, err := matrix.Transpose(at)
	require.NoError(t, err)
	require.True(t, back.Equal(a))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeReversesPaths: the closure of Aᵀ is the transpose of A*.
func TestTransposeReversesPaths(t *testing.T) {
	a := minPlusGraph(t)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)

	star, err := matrix.Closure(a, semiring.MinPlus)
	require.NoError(t, err)
	starT, err := matrix.Closure(at, semiring.MinPlus)
	require.NoError(t, err)
	want, err := matrix.Transpose(star)
	require.NoError(t, err)
	require.True(t, starT.Equal(want))
}

func TestScale(t *testing.T) {
	a := mustDense(t, [][]semiring.Value{{ninf, 3}, {5, 0}})
	got, err := matrix.Scale(a, -2, semiring.MaxPlus)
	require.NoError(t, err)
	require.Equal(t, "[-inf, 1]\n[3, -2]\n", got.String())

	// Scaling by the multiplicative identity is the identity map.
	for _, s := range semiring.All() {
		r := randomDense(t, 4, 5, s, 11)
		same, err := matrix.Scale(r, s.One(), s)
		require.NoError(t, err)
		require.True(t, same.Equal(r), s.String())
	}

	_, err = matrix.Scale(a, 1, semiring.Semiring(99))
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}

// TestScaleDistributes checks λ ⊗ (A ⊗ B) = (λ ⊗ A) ⊗ B.
func TestScaleDistributes(t *testing.T) {
	for _, s := range []semiring.Semiring{semiring.MaxPlus, semiring.MinPlus} {
		a := randomDense(t, 5, 5, s, 1)
		b := randomDense(t, 5, 5, s, 2)
		ab, err := matrix.Mul(a, b, s)
		require.NoError(t, err)
		left, err := matrix.Scale(ab, 7, s)
		require.NoError(t, err)

		la, err := matrix.Scale(a, 7, s)
		require.NoError(t, err)
		right, err := matrix.Mul(la, b, s)
		require.NoError(t, err)
		require.True(t, left.Equal(right), s.String())
	}
}

func TestHadamard(t *testing.T) {
	a := mustDense(t, [][]semiring.Value{{1, ninf}, {2, 3}})
	b := mustDense(t, [][]semiring.Value{{10, 10}, {ninf, 4}})
	got, err := matrix.Hadamard(a, b, semiring.MaxPlus)
	require.NoError(t, err)
	require.Equal(t, "[11, -inf]\n[-inf, 7]\n", got.String())

	bb := mustDense(t, [][]semiring.Value{{1, 0}, {1, 1}})
	got, err = matrix.Hadamard(bb, bb, semiring.Boolean)
	require.NoError(t, err)
	require.True(t, got.Equal(bb))

	_, err = matrix.Hadamard(a, mustDense(t, [][]semiring.Value{{1}}), semiring.MaxPlus)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
