// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs (nil
// functions or generators); constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the task naming function used by BuildSchedule.
// fn must accept every index in [0, n). Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	return withBoundedIDScheme(fn, 0)
}

// withBoundedIDScheme sets fn together with the number of indices it can
// name; BuildSchedule rejects larger n up front.
func withBoundedIDScheme(fn IDFn, limit int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn, c.idLimit = fn, limit }
}

// WithRand provides an explicit RNG for stochastic constructors and weight
// functions. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs rand.New(rand.NewSource(seed)).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithSymmetric mirrors every emitted edge u→v as v→u with the same weight.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// WithLoops lets RandomSparse sample diagonal entries.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}
