package eigen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const ninf = semiring.NegInf

// edge is u→v with weight w.
type edge struct {
	u, v int
	w    semiring.Value
}

// graph builds an n×n matrix over s with A[u][v] = w for each edge.
func graph(t *testing.T, n int, s semiring.Semiring, edges ...edge) *matrix.Dense {
	t.Helper()
	a, err := matrix.NewZero(n, n, s)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, a.Set(e.u, e.v, e.w))
	}

	return a
}

// triangle is the 3-cycle 0→1 (5), 1→2 (3), 2→0 (4); mean 4.
func triangle(t *testing.T, s semiring.Semiring) *matrix.Dense {
	return graph(t, 3, s, edge{0, 1, 5}, edge{1, 2, 3}, edge{2, 0, 4})
}
