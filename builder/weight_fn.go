// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tropical/semiring"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight semiring.Value = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state and must not return a sentinel.
type WeightFn func(rng *rand.Rand) semiring.Value

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) semiring.Value {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn yielding value. Panics if value is
// ±inf.
func ConstantWeightFn(value semiring.Value) WeightFn {
	if value.IsInf() {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %v", value))
	}

	return func(_ *rand.Rand) semiring.Value { return value }
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [lo, hi]. Without an RNG it yields lo. Panics if hi < lo or either
// bound is ±inf.
func UniformWeightFn(lo, hi semiring.Value) WeightFn {
	if hi < lo || lo.IsInf() || hi.IsInf() {
		panic(fmt.Sprintf("UniformWeightFn: require finite lo ≤ hi, got lo=%v, hi=%v", lo, hi))
	}
	span := int64(hi) - int64(lo) + 1

	return func(rng *rand.Rand) semiring.Value {
		if rng == nil || span == 1 {
			return lo
		}

		return lo + semiring.Value(rng.Int63n(span))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w semiring.Value) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ~ U{lo..hi}.
func WithUniformWeight(lo, hi semiring.Value) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
