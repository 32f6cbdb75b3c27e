package eigen

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const (
	opEigenvalue = "Eigenvalue"
	opCycleMean  = "CycleMean"
)

// Mean is an exact cycle mean Num/Den with Den > 0.
// Finite is false when the graph has no cycle.
type Mean struct {
	Num, Den int64
	Finite   bool
}

// Value truncates the mean toward zero and clamps it to the Value range,
// or returns s.Zero() when not finite.
func (m Mean) Value(s semiring.Semiring) semiring.Value {
	if !m.Finite {
		return s.Zero()
	}

	q := m.Num / m.Den
	switch {
	case q <= math.MinInt32:
		return semiring.NegInf
	case q >= math.MaxInt32:
		return semiring.PosInf
	}

	return semiring.Value(q)
}

// Float returns Num/Den as a float64; not meaningful when !Finite.
func (m Mean) Float() float64 { return float64(m.Num) / float64(m.Den) }

// cmp orders two fractions with positive denominators. The cross
// products are compared at 128 bits.
func (m Mean) cmp(o Mean) int {
	return cmpProducts(m.Num, o.Den, o.Num, m.Den)
}

// cmpProducts compares a·b with c·d for b, d > 0.
func cmpProducts(a, b, c, d int64) int {
	switch {
	case a < 0 && c >= 0:
		return -1
	case a >= 0 && c < 0:
		return 1
	}
	neg := a < 0
	if neg {
		a, c = -a, -c
	}
	lh, ll := bits.Mul64(uint64(a), uint64(b))
	rh, rl := bits.Mul64(uint64(c), uint64(d))
	r := 0
	switch {
	case lh < rh || (lh == rh && ll < rl):
		r = -1
	case lh > rh || (lh == rh && ll > rl):
		r = 1
	}
	if neg {
		r = -r
	}

	return r
}

// validate checks the common preconditions of every entry point.
func validate(op string, a *matrix.Dense, s semiring.Semiring) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !s.Additive() {
		return fmt.Errorf("%s: %v: %w", op, s, ErrUnsupported)
	}

	return nil
}

// noWalk marks D[k][v] when no walk of exactly k edges ends at v.
const noWalk = math.MinInt64

// karpTable fills D[k][v], the optimal weight of a walk of exactly k
// edges ending at v, for k = 0..n, with D[0][v] = 0. Weights are summed
// in int64 so long walks never saturate; an entry equal to the opposite
// sentinel counts at its numeric value. Row k of the returned slice has
// n entries.
func karpTable(a *matrix.Dense, s semiring.Semiring) [][]int64 {
	n := a.Rows()
	zero := s.Zero()
	maximise := s == semiring.MaxPlus

	buf := make([]int64, (n+1)*n)
	d := make([][]int64, n+1)
	for k := range d {
		d[k] = buf[k*n : (k+1)*n]
	}

	var (
		k, u, v  int
		du, cand int64
		row      []semiring.Value
	)
	for k = 1; k <= n; k++ {
		cur := d[k]
		for v = range cur {
			cur[v] = noWalk
		}
		prev := d[k-1]
		for u = 0; u < n; u++ {
			du = prev[u]
			if du == noWalk {
				continue
			}
			row = a.Row(u)
			for v = range row {
				if row[v] == zero {
					continue
				}
				cand = du + int64(row[v])
				if cur[v] == noWalk || (maximise && cand > cur[v]) || (!maximise && cand < cur[v]) {
					cur[v] = cand
				}
			}
		}
	}

	return d
}

// cycleMean evaluates Karp's formula on a validated input.
// Max-plus: max over v of min over k of (D[n][v]-D[k][v])/(n-k).
// Min-plus is the dual: min over v of max over k.
func cycleMean(a *matrix.Dense, s semiring.Semiring) Mean {
	n := a.Rows()
	d := karpTable(a, s)
	maximise := s == semiring.MaxPlus

	var best Mean
	for v := 0; v < n; v++ {
		dn := d[n][v]
		if dn == noWalk {
			continue
		}
		var inner Mean
		for k := 0; k < n; k++ {
			dk := d[k][v]
			if dk == noWalk {
				continue
			}
			m := Mean{Num: dn - dk, Den: int64(n - k), Finite: true}
			if !inner.Finite || (maximise && m.cmp(inner) < 0) || (!maximise && m.cmp(inner) > 0) {
				inner = m
			}
		}
		if !inner.Finite {
			continue
		}
		if !best.Finite || (maximise && inner.cmp(best) > 0) || (!maximise && inner.cmp(best) < 0) {
			best = inner
		}
	}

	return best
}

// CycleMean returns the exact optimal cycle mean of A: the maximum under
// max-plus, the minimum under min-plus.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupported.
// Complexity: O(n³) time, O(n²) space.
func CycleMean(a *matrix.Dense, s semiring.Semiring) (Mean, error) {
	if err := validate(opCycleMean, a, s); err != nil {
		return Mean{}, err
	}

	return cycleMean(a, s), nil
}

// Eigenvalue returns the tropical eigenvalue of A, i.e. the optimal cycle
// mean truncated toward zero. An acyclic graph yields s.Zero() and a nil error.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupported.
func Eigenvalue(a *matrix.Dense, s semiring.Semiring) (semiring.Value, error) {
	return EigenvalueContext(context.Background(), a, s)
}

// EigenvalueContext is Eigenvalue with tracing.
func EigenvalueContext(ctx context.Context, a *matrix.Dense, s semiring.Semiring) (semiring.Value, error) {
	_, span := tracer.Start(ctx, "eigen.Eigenvalue",
		trace.WithAttributes(attribute.String("semiring", s.String())),
	)
	defer span.End()

	if err := validate(opEigenvalue, a, s); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return s.Zero(), err
	}
	m := cycleMean(a, s)
	span.SetAttributes(
		attribute.Int("n", a.Rows()),
		attribute.Bool("cyclic", m.Finite),
	)

	return m.Value(s), nil
}
