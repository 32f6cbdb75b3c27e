// SPDX-License-Identifier: MIT
// Package matrix - public API facades for graph path problems.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over Closure and Iterate.
//   - Each facade fixes the semiring (or the input encoding) for one
//     classic path problem and delegates to the canonical kernel.
//
// Convention:
//   - adj[i][j] is the weight of edge i→j; the semiring zero means "no edge".

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tropical/semiring"
)

const (
	opSingleSource = "SingleSourcePaths"
	opReachability = "Reachability"
	opBottleneck   = "BottleneckPaths"
)

// AllPairsPaths returns optimal path values between every pair of vertices.
// It is Closure under an intention-revealing name.
func AllPairsPaths(adj *Dense, s semiring.Semiring, opts ...Option) (*Dense, error) {
	return Closure(adj, s, opts...)
}

// SingleSourcePaths returns dist[v], the optimal value over paths from
// source to v, by Bellman–Ford relaxation
//
//	dist[v] ⊕= dist[u] ⊗ adj[u][v]
//
// starting from dist = zero except dist[source] = one. It stops after
// rows-1 rounds or as soon as a round changes nothing.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrUnsupported, ErrOutOfRange.
func SingleSourcePaths(adj *Dense, source int, s semiring.Semiring) ([]semiring.Value, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opSingleSource, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opSingleSource, err)
	}
	n := adj.rows
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%s: source %d: %w", opSingleSource, source, ErrOutOfRange)
	}

	zero := s.Zero()
	dist := make([]semiring.Value, n)
	for i := range dist {
		dist[i] = zero
	}
	dist[source] = s.One()

	var (
		round, u, v int
		du, nv      semiring.Value
		changed     bool
	)
	for round = 1; round < n; round++ {
		changed = false
		for u = 0; u < n; u++ {
			du = dist[u]
			if du == zero {
				continue
			}
			for v = 0; v < n; v++ {
				nv = s.Add(dist[v], s.Mul(du, adj.data[u*adj.stride+v]))
				if nv != dist[v] {
					dist[v] = nv
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist, nil
}

// Reachability returns the boolean matrix R with R[i][j] = 1 iff j is
// reachable from i. Every entry other than s.Zero() counts as an edge and
// every vertex reaches itself.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrUnsupported.
func Reachability(adj *Dense, s semiring.Semiring, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opReachability, err)
	}
	if err := validateSemiring(s); err != nil {
		return nil, matrixErrorf(opReachability, err)
	}
	b, err := NewDense(adj.rows, adj.cols)
	if err != nil {
		return nil, matrixErrorf(opReachability, err)
	}
	adj.Do(func(i, j int, v semiring.Value) bool {
		if i == j || !s.IsZero(v) {
			b.data[i*b.stride+j] = 1
		}
		return true
	})
	o := gatherOptions(opts...)
	closureInPlace(b, semiring.Boolean, o.backend)

	return b, nil
}

// BottleneckPaths returns the widest-path capacities: the max-min closure
// of a capacity matrix (zero = NegInf for "no link").
func BottleneckPaths(adj *Dense, opts ...Option) (*Dense, error) {
	out, err := Closure(adj, semiring.MaxMin, opts...)
	if err != nil {
		return nil, matrixErrorf(opBottleneck, err)
	}

	return out, nil
}
