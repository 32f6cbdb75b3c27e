// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and backends.
//   • Random fills mix sentinels with small finite weights so every
//     semiring sees both absorbing and regular cells.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const (
	ninf = semiring.NegInf
	pinf = semiring.PosInf
)

// mustDense builds a matrix from literal rows or fails the test.
func mustDense(tb testing.TB, rows [][]semiring.Value) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// randomDense fills an r×c matrix with values drawn for semiring s;
// roughly a quarter of the cells hold the semiring zero.
func randomDense(tb testing.TB, r, c int, s semiring.Semiring, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewZero(r, c, s)
	require.NoError(tb, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Intn(4) == 0 {
				continue
			}
			m.SetUnchecked(i, j, randomValue(rng, s))
		}
	}

	return m
}

func randomValue(rng *rand.Rand, s semiring.Semiring) semiring.Value {
	if s == semiring.Boolean {
		return semiring.Value(rng.Intn(2))
	}

	return semiring.Value(rng.Intn(41) - 20)
}

// randomVector returns n values for semiring s.
func randomVector(n int, s semiring.Semiring, seed int64) []semiring.Value {
	rng := rand.New(rand.NewSource(seed))
	out := make([]semiring.Value, n)
	for i := range out {
		out[i] = randomValue(rng, s)
	}

	return out
}

// minPlusGraph is a 4-vertex directed graph:
//
//	0→1 (4), 0→2 (1), 2→1 (2), 1→3 (5)
func minPlusGraph(tb testing.TB) *matrix.Dense {
	return mustDense(tb, [][]semiring.Value{
		{pinf, 4, 1, pinf},
		{pinf, pinf, pinf, 5},
		{pinf, 2, pinf, pinf},
		{pinf, pinf, pinf, pinf},
	})
}
