package eigen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/eigen"
	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

func TestCriticalNodes_WholeCycle(t *testing.T) {
	nodes, err := eigen.CriticalNodes(triangle(t, semiring.MaxPlus), semiring.MaxPlus)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, nodes)
}

// twoCycles: self-loop 4 on vertex 0 (mean 4) and 1↔2 with 3+4 (mean 3.5).
func twoCycles(t *testing.T, s semiring.Semiring) *matrix.Dense {
	return graph(t, 3, s, edge{0, 0, 4}, edge{1, 2, 3}, edge{2, 1, 4})
}

func TestCriticalNodes_Exact(t *testing.T) {
	nodes, err := eigen.CriticalNodes(twoCycles(t, semiring.MaxPlus), semiring.MaxPlus)
	require.NoError(t, err)
	require.Equal(t, []int{0}, nodes)

	nodes, err = eigen.CriticalNodes(twoCycles(t, semiring.MinPlus), semiring.MinPlus)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, nodes)
}

// TestCriticalNodes_Heuristic reproduces the tolerance-based scan,
// which also accepts the 3.5-mean two-cycle.
func TestCriticalNodes_Heuristic(t *testing.T) {
	nodes, err := eigen.CriticalNodes(twoCycles(t, semiring.MaxPlus), semiring.MaxPlus, eigen.WithTwoCycleHeuristic())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, nodes)

	// the heuristic cannot see three-cycles
	nodes, err = eigen.CriticalNodes(triangle(t, semiring.MaxPlus), semiring.MaxPlus, eigen.WithTwoCycleHeuristic())
	require.NoError(t, err)
	require.Empty(t, nodes)
}

// TestCriticalNodes_LongCycleBeatsLoop finds a 4-cycle tied with a self-loop.
func TestCriticalNodes_LongCycleBeatsLoop(t *testing.T) {
	a := graph(t, 5, semiring.MaxPlus,
		edge{0, 1, 2}, edge{1, 2, 2}, edge{2, 3, 2}, edge{3, 0, 2}, // mean 2
		edge{4, 4, 2}, // mean 2
		edge{1, 4, 9}, // not on any cycle
	)
	nodes, err := eigen.CriticalNodes(a, semiring.MaxPlus)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, nodes)

	a.SetUnchecked(4, 4, 1)
	nodes, err = eigen.CriticalNodes(a, semiring.MaxPlus)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, nodes)
}

func TestCriticalNodes_Acyclic(t *testing.T) {
	nodes, err := eigen.CriticalNodes(graph(t, 3, semiring.MaxPlus, edge{0, 1, 1}), semiring.MaxPlus)
	require.NoError(t, err)
	require.Empty(t, nodes)

	_, err = eigen.CriticalNodes(triangle(t, semiring.MaxMin), semiring.MaxMin)
	require.ErrorIs(t, err, eigen.ErrUnsupported)
}
