// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// TestMul_MaxPlusHandComputed pins a 2×2 product.
func TestMul_MaxPlusHandComputed(t *testing.T) {
	a := mustDense(t, [][]semiring.Value{{1, 2}, {ninf, 0}})
	b := mustDense(t, [][]semiring.Value{{3, ninf}, {1, 5}})
	c, err := matrix.Mul(a, b, semiring.MaxPlus)
	require.NoError(t, err)
	// c00 = max(1+3, 2+1) = 4; c01 = max(-inf, 2+5) = 7; c10 = max(-inf, 0+1) = 1; c11 = 5
	require.True(t, c.Equal(mustDense(t, [][]semiring.Value{{4, 7}, {1, 5}})), c.String())
}

// TestMul_Rectangular checks shape propagation and mismatch detection.
func TestMul_Rectangular(t *testing.T) {
	a := randomDense(t, 3, 5, semiring.MinPlus, 1)
	b := randomDense(t, 5, 2, semiring.MinPlus, 2)
	c, err := matrix.Mul(a, b, semiring.MinPlus)
	require.NoError(t, err)
	r, cols := c.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, cols)

	_, err = matrix.Mul(b, b, semiring.MinPlus)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b, semiring.MinPlus)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, b, semiring.Semiring(7))
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}

// TestMul_IdentityNeutral checks I ⊗ A = A = A ⊗ I on every semiring.
func TestMul_IdentityNeutral(t *testing.T) {
	for _, s := range semiring.All() {
		t.Run(s.String(), func(t *testing.T) {
			a := randomDense(t, 6, 6, s, 11)
			id, err := matrix.NewIdentity(6, s)
			require.NoError(t, err)

			left, err := matrix.Mul(id, a, s)
			require.NoError(t, err)
			right, err := matrix.Mul(a, id, s)
			require.NoError(t, err)
			require.True(t, left.Equal(a))
			require.True(t, right.Equal(a))
		})
	}
}

// TestMulInto_Aliasing allows the output to alias an operand.
func TestMulInto_Aliasing(t *testing.T) {
	a := randomDense(t, 5, 5, semiring.MaxPlus, 3)
	want, err := matrix.Mul(a, a, semiring.MaxPlus)
	require.NoError(t, err)

	c := a.Clone()
	require.NoError(t, matrix.MulInto(c, c, c, semiring.MaxPlus))
	require.True(t, c.Equal(want))

	bad, err := matrix.NewDense(4, 5)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.MulInto(bad, a, a, semiring.MaxPlus), matrix.ErrDimensionMismatch)
}

// TestAdd is element-wise ⊕ and requires equal shapes.
func TestAdd(t *testing.T) {
	a := mustDense(t, [][]semiring.Value{{1, pinf}, {3, 9}})
	b := mustDense(t, [][]semiring.Value{{2, 4}, {pinf, 0}})
	c, err := matrix.Add(a, b, semiring.MinPlus)
	require.NoError(t, err)
	require.True(t, c.Equal(mustDense(t, [][]semiring.Value{{1, 4}, {3, 0}})))

	_, err = matrix.Add(a, mustDense(t, [][]semiring.Value{{1}}), semiring.MinPlus)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestPower_MatchesRepeatedMul checks A^k against k-1 explicit products.
func TestPower_MatchesRepeatedMul(t *testing.T) {
	for _, s := range semiring.All() {
		t.Run(s.String(), func(t *testing.T) {
			a := randomDense(t, 5, 5, s, 21)
			want := a.Clone()
			for k := uint(1); k <= 6; k++ {
				got, err := matrix.Power(a, k, s)
				require.NoError(t, err)
				require.True(t, got.Equal(want), "k=%d\n%s\n%s", k, got, want)

				next, err := matrix.Mul(want, a, s)
				require.NoError(t, err)
				want = next
			}
		})
	}
}

// TestPower_Zero returns the identity; non-square input fails.
func TestPower_Zero(t *testing.T) {
	a := randomDense(t, 3, 3, semiring.MaxMin, 5)
	p, err := matrix.Power(a, 0, semiring.MaxMin)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(3, semiring.MaxMin)
	require.True(t, p.Equal(id))

	_, err = matrix.Power(randomDense(t, 2, 3, semiring.MaxMin, 5), 2, semiring.MaxMin)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestPower_KHop mirrors the network example: L²[0][3] is the best 2-hop latency.
func TestPower_KHop(t *testing.T) {
	// 0→1 (5), 0→2 (8), 1→3 (3), 2→3 (4)
	l := mustDense(t, [][]semiring.Value{
		{pinf, 5, 8, pinf},
		{pinf, pinf, pinf, 3},
		{pinf, pinf, pinf, 4},
		{pinf, pinf, pinf, pinf},
	})
	l2, err := matrix.Power(l, 2, semiring.MinPlus)
	require.NoError(t, err)
	require.Equal(t, semiring.Value(8), l2.AtUnchecked(0, 3))
	require.Equal(t, pinf, l2.AtUnchecked(0, 1))
}
