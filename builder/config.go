// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - resolved builder settings.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn ("0","1",...), unbounded
//   • rng       = nil (constructors needing randomness fail without a seed)
//   • weightFn  = DefaultWeightFn (constant DefaultEdgeWeight)
//   • symmetric = false (edges are one-way)
//   • loops     = false (RandomSparse skips the diagonal)

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	idLimit   int // 0 = unbounded
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
	loops     bool
}

// newBuilderConfig applies opts in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
