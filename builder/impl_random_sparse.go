// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Erdős–Rényi-like sampling: each ordered pair (i, j) is included
// independently with probability p. The diagonal is sampled only under
// WithLoops.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run i ascending then j ascending, so a fixed seed
// gives a fixed edge set. Each included edge draws its weight right after
// its trial.

package builder

import "fmt"

// RandomSparse returns a Constructor sampling a random directed graph.
func RandomSparse(n int, p float64) Constructor {
	return func(dst edgeSink, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := emit(dst, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
