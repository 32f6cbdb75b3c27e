// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for compute kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: every backend produces bit-identical results.
//   - No dead switches: each option impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the minimum number of output cells before
	// the parallel backend splits work; smaller jobs run on the caller's goroutine.
	DefaultParallelThreshold = 64 * 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilBackend       = "matrix: WithBackend: backend must be non-nil"
	panicWorkersInvalid   = "matrix: Parallel: workers must be >= 0"
	panicThresholdInvalid = "matrix: Parallel: threshold must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	backend Backend // DefaultBackend()
}

// WithBackend selects the compute backend used by Mul, MulInto, Power,
// Closure, TransitiveClosure, MatVec and Iterate.
// Panics when b is nil.
func WithBackend(b Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) { o.backend = b }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{backend: DefaultBackend()}
}

// gatherOptions applies opts over defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
