package eigen

import (
	"errors"

	"github.com/katalvlaran/tropical/matrix"
)

var (
	// ErrNotConverged is returned together with a usable Result when power
	// iteration stops without reaching a fixed point, or when the graph has
	// no cycle and therefore no finite eigenvalue.
	ErrNotConverged = errors.New("eigen: power iteration did not converge")

	// ErrUnsupported is returned for semirings without cycle means
	// (max-min, min-max, boolean). It matches matrix.ErrUnsupported.
	ErrUnsupported = matrix.ErrUnsupported
)
