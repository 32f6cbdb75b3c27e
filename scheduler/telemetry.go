// SPDX-License-Identifier: MIT

package scheduler

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for the solver.
var (
	tracer = otel.Tracer("tropical.scheduler")
	meter  = otel.Meter("tropical.scheduler")
)

var (
	solveLatency    metric.Float64Histogram
	solveIterations metric.Int64Histogram
	solveTotal      metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"tropical_scheduler_solve_duration_seconds",
			metric.WithDescription("Duration of scheduler fixed-point solves"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveIterations, err = meter.Int64Histogram(
			"tropical_scheduler_solve_iterations",
			metric.WithDescription("Iterations per scheduler solve"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"tropical_scheduler_solve_total",
			metric.WithDescription("Scheduler solves by final status"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSolveMetrics records one solve.
func recordSolveMetrics(ctx context.Context, duration time.Duration, iterations int, status Status) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status.String()))

	solveLatency.Record(ctx, duration.Seconds(), attrs)
	solveIterations.Record(ctx, int64(iterations), attrs)
	solveTotal.Add(ctx, 1, attrs)
}
