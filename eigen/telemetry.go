package eigen

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for eigen analysis.
var (
	tracer = otel.Tracer("tropical.eigen")
	meter  = otel.Meter("tropical.eigen")
)

var (
	powerIterations metric.Int64Histogram
	powerRuns       metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		powerIterations, err = meter.Int64Histogram(
			"tropical_eigen_power_iterations",
			metric.WithDescription("Power-iteration rounds per eigenvector computation"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		powerRuns, err = meter.Int64Counter(
			"tropical_eigen_power_runs_total",
			metric.WithDescription("Eigenvector computations by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordPowerMetrics records one eigenvector run.
func recordPowerMetrics(ctx context.Context, s string, iterations int, converged bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("semiring", s),
		attribute.Bool("converged", converged),
	)
	powerIterations.Record(ctx, int64(iterations), attrs)
	powerRuns.Add(ctx, 1, attrs)
}
