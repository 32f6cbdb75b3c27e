package eigen

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

const opEigenvector = "Eigenvector"

// Result is the outcome of power iteration.
type Result struct {
	// Vector is the fixed point when Converged, otherwise the last iterate.
	Vector []semiring.Value
	// Eigenvalue is λ as returned by Eigenvalue.
	Eigenvalue semiring.Value
	// Iterations is the number of A ⊗ x products performed.
	Iterations int
	// Converged reports an exact fixed point: A ⊗ v - λ = v.
	Converged bool
}

// Eigenvector computes λ and then iterates
//
//	y ← A ⊗ x;  y[i] ← y[i] - λ for every finite y[i];  stop when y == x
//
// from x = one. When the graph is acyclic the vector is all zero. Both the
// acyclic case and an exhausted iteration budget return a non-nil Result
// together with ErrNotConverged; callers may still use the vector.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrUnsupported, ErrNotConverged.
func Eigenvector(a *matrix.Dense, s semiring.Semiring, opts ...Option) (*Result, error) {
	return EigenvectorContext(context.Background(), a, s, opts...)
}

// EigenvectorContext is Eigenvector with tracing and cancellation. On
// cancellation it returns the last iterate and ctx.Err().
func EigenvectorContext(ctx context.Context, a *matrix.Dense, s semiring.Semiring, opts ...Option) (*Result, error) {
	ctx, span := tracer.Start(ctx, "eigen.Eigenvector",
		trace.WithAttributes(attribute.String("semiring", s.String())),
	)
	defer span.End()

	if err := validate(opEigenvector, a, s); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	span.SetAttributes(attribute.Int("n", n), attribute.Int("max_iterations", o.maxIter))

	mean := cycleMean(a, s)
	lambda := mean.Value(s)
	res := &Result{Vector: make([]semiring.Value, n), Eigenvalue: lambda}

	if !mean.Finite {
		zero := s.Zero()
		for i := range res.Vector {
			res.Vector[i] = zero
		}
		span.AddEvent("acyclic")
		o.logger.Debug("eigenvector: graph is acyclic", slog.Int("n", n), slog.String("semiring", s.String()))
		recordPowerMetrics(ctx, s.String(), 0, false)
		return res, fmt.Errorf("%s: acyclic graph: %w", opEigenvector, ErrNotConverged)
	}

	x := res.Vector
	one := s.One()
	for i := range x {
		x[i] = one
	}
	y := make([]semiring.Value, n)
	var mv []matrix.Option
	if o.backend != nil {
		mv = append(mv, matrix.WithBackend(o.backend))
	}

	for iter := 0; iter < o.maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			span.AddEvent("cancelled", trace.WithAttributes(attribute.Int("iterations_completed", iter)))
			res.Iterations = iter
			return res, fmt.Errorf("%s: %w", opEigenvector, err)
		}
		if err := matrix.MatVec(a, x, y, s, mv...); err != nil {
			return nil, fmt.Errorf("%s: %w", opEigenvector, err)
		}
		for i, v := range y {
			y[i] = semiring.Sub(v, lambda)
		}
		res.Iterations = iter + 1
		if slices.Equal(x, y) {
			res.Converged = true
			break
		}
		copy(x, y)
	}

	span.SetAttributes(
		attribute.Int("iterations", res.Iterations),
		attribute.Bool("converged", res.Converged),
	)
	recordPowerMetrics(ctx, s.String(), res.Iterations, res.Converged)

	if !res.Converged {
		o.logger.Warn("eigenvector: iteration budget exhausted",
			slog.Int("iterations", res.Iterations),
			slog.Int("lambda", int(lambda)),
		)
		return res, fmt.Errorf("%s: after %d iterations: %w", opEigenvector, res.Iterations, ErrNotConverged)
	}
	o.logger.Debug("eigenvector converged",
		slog.Int("iterations", res.Iterations),
		slog.Int("lambda", int(lambda)),
	)

	return res, nil
}
