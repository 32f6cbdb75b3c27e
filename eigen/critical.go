package eigen

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const opCriticalNodes = "CriticalNodes"

// CriticalNodes returns, in ascending order, the vertices that lie on a
// cycle whose mean equals the optimal cycle mean λ. An acyclic graph has
// none.
//
// The default method is exact: every edge weight w is rescaled to
// w·den - num, where λ = num/den, which makes every cycle weight ≤ 0
// (max-plus) or ≥ 0 (min-plus). A vertex is critical iff its best closed
// walk in the rescaled graph weighs exactly 0. WithTwoCycleHeuristic
// replaces this with a self-loop and two-cycle scan.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupported.
// Complexity: O(n³).
func CriticalNodes(a *matrix.Dense, s semiring.Semiring, opts ...Option) ([]int, error) {
	return CriticalNodesContext(context.Background(), a, s, opts...)
}

// CriticalNodesContext is CriticalNodes with tracing.
func CriticalNodesContext(ctx context.Context, a *matrix.Dense, s semiring.Semiring, opts ...Option) ([]int, error) {
	_, span := tracer.Start(ctx, "eigen.CriticalNodes",
		trace.WithAttributes(attribute.String("semiring", s.String())),
	)
	defer span.End()

	if err := validate(opCriticalNodes, a, s); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	o := gatherOptions(opts...)

	mean := cycleMean(a, s)
	if !mean.Finite {
		span.AddEvent("acyclic")
		return []int{}, nil
	}

	var nodes []int
	if o.heuristic {
		nodes = twoCycleCritical(a, s, mean.Value(s))
	} else {
		nodes = exactCritical(a, s, mean)
	}
	span.SetAttributes(attribute.Int("critical_count", len(nodes)), attribute.Bool("heuristic", o.heuristic))
	o.logger.Debug("critical nodes",
		slog.Int("count", len(nodes)),
		slog.Int64("mean_num", mean.Num),
		slog.Int64("mean_den", mean.Den),
	)

	return nodes, nil
}

// exactCritical runs a Floyd–Warshall pass over the rescaled int64 weights
// without the reflexive step, so dist[i][i] is the best closed walk of
// length ≥ 1 through i.
func exactCritical(a *matrix.Dense, s semiring.Semiring, mean Mean) []int {
	n := a.Rows()
	zero := s.Zero()
	maximise := s == semiring.MaxPlus

	dist := make([]int64, n*n)
	ok := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j, w := range a.Row(i) {
			if w == zero {
				continue
			}
			dist[i*n+j] = int64(w)*mean.Den - mean.Num
			ok[i*n+j] = true
		}
	}

	var (
		i, j, k   int
		ik, cand  int64
		baseI, bK int
	)
	for k = 0; k < n; k++ {
		bK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			if !ok[baseI+k] {
				continue
			}
			ik = dist[baseI+k]
			for j = 0; j < n; j++ {
				if !ok[bK+j] {
					continue
				}
				cand = ik + dist[bK+j]
				if !ok[baseI+j] || (maximise && cand > dist[baseI+j]) || (!maximise && cand < dist[baseI+j]) {
					dist[baseI+j] = cand
					ok[baseI+j] = true
				}
			}
		}
	}

	nodes := []int{}
	for i = 0; i < n; i++ {
		if ok[i*n+i] && dist[i*n+i] == 0 {
			nodes = append(nodes, i)
		}
	}

	return nodes
}

// twoCycleCritical marks endpoints of self-loops and two-cycles whose
// truncated mean is within TwoCycleTolerance of lambda, toward the
// non-optimal side.
func twoCycleCritical(a *matrix.Dense, s semiring.Semiring, lambda semiring.Value) []int {
	n := a.Rows()
	zero := s.Zero()
	near := func(mean int64) bool {
		if s == semiring.MaxPlus {
			return mean >= int64(lambda)-TwoCycleTolerance
		}
		return mean <= int64(lambda)+TwoCycleTolerance
	}

	mark := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aij, aji := a.AtUnchecked(i, j), a.AtUnchecked(j, i)
			if aij == zero || aji == zero {
				continue
			}
			if near((int64(aij) + int64(aji)) / 2) {
				mark[i], mark[j] = true, true
			}
		}
	}

	nodes := []int{}
	for i, m := range mark {
		if m {
			nodes = append(nodes, i)
		}
	}

	return nodes
}
