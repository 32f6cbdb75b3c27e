// SPDX-License-Identifier: MIT

package scheduler

import (
	"log/slog"

	"github.com/katalvlaran/tropical/matrix"
)

const panicMaxIterInvalid = "scheduler: WithDefaultMaxIter: n must be >= 0"

// Option configures a Scheduler at construction.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	backend matrix.Backend
	maxIter int // 0: task count
}

// WithLogger routes solver diagnostics to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBackend selects the matrix backend for the A ⊗ x products.
func WithBackend(b matrix.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithDefaultMaxIter sets the iteration cap used when Solve is given 0.
// 0 keeps the default, the task count. Panics on negative n.
func WithDefaultMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

func gatherOptions(opts ...Option) options {
	var o options
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
