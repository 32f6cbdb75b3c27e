// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// countingBackend records how many row ranges it scheduled.
type countingBackend struct{ calls int }

func (c *countingBackend) Name() string { return "counting" }

func (c *countingBackend) ForRows(n, _ int, fn func(lo, hi int)) {
	c.calls++
	fn(0, n)
}

// TestWithBackend routes every kernel through the selected backend.
func TestWithBackend(t *testing.T) {
	be := &countingBackend{}
	opt := matrix.WithBackend(be)
	a := randomDense(t, 4, 4, semiring.MaxPlus, 1)

	_, err := matrix.Mul(a, a, semiring.MaxPlus, opt)
	require.NoError(t, err)
	require.Equal(t, 1, be.calls)

	_, err = matrix.Closure(a, semiring.MaxPlus, opt)
	require.NoError(t, err)
	require.Equal(t, 1+4, be.calls) // one per relaxation layer

	x := make([]semiring.Value, 4)
	require.NoError(t, matrix.Iterate(a, x, 3, semiring.MaxPlus, opt))
	require.Equal(t, 1+4+3, be.calls)
}

// TestNilOptionIgnored tolerates nil entries in the option list.
func TestNilOptionIgnored(t *testing.T) {
	a := randomDense(t, 2, 2, semiring.MinPlus, 1)
	_, err := matrix.Mul(a, a, semiring.MinPlus, nil)
	require.NoError(t, err)
}
