package eigen

import (
	"log/slog"

	"github.com/katalvlaran/tropical/matrix"
)

// DefaultMaxIter bounds power iteration when no WithMaxIter option is given.
const DefaultMaxIter = 1000

// TwoCycleTolerance is the slack used by the two-cycle heuristic.
const TwoCycleTolerance = 1

const panicMaxIterInvalid = "eigen: WithMaxIter: n must be >= 0"

// Option configures Eigenvector and CriticalNodes.
type Option func(*options)

type options struct {
	maxIter   int
	logger    *slog.Logger
	heuristic bool
	backend   matrix.Backend
}

func defaultOptions() options {
	return options{maxIter: DefaultMaxIter}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// WithMaxIter caps power-iteration rounds; 0 selects DefaultMaxIter.
// Panics on negative n.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}
	if n == 0 {
		n = DefaultMaxIter
	}

	return func(o *options) { o.maxIter = n }
}

// WithLogger routes diagnostics to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTwoCycleHeuristic makes CriticalNodes inspect only self-loops and
// two-cycles, accepting any whose mean is within TwoCycleTolerance of λ.
// It is cheaper but can both miss critical nodes on longer cycles and
// report nodes whose cycle mean is off by the tolerance.
func WithTwoCycleHeuristic() Option {
	return func(o *options) { o.heuristic = true }
}

// WithBackend selects the matrix backend used for the A ⊗ x products.
func WithBackend(b matrix.Backend) Option {
	return func(o *options) { o.backend = b }
}
