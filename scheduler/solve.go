// SPDX-License-Identifier: MIT

package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tropical/eigen"
	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// Solve iterates
//
//	prev ← state;  state[i] ← (A ⊗ prev)[i] ⊕ input[i] ⊕ prev[i]
//
// until state stops changing, and returns the number of iterations
// including the one that detected the fixed point. When maxIter rounds
// pass without a fixed point it returns maxIter. maxIter <= 0 selects the
// WithDefaultMaxIter value, or the task count. A released scheduler returns -1.
func (sc *Scheduler) Solve(maxIter int) int {
	n, _ := sc.SolveContext(context.Background(), maxIter)

	return n
}

// SolveContext is Solve with tracing and cancellation. On cancellation it
// keeps the partial state, leaves the status at StatusUnsolved and returns
// the completed iteration count with ctx.Err().
func (sc *Scheduler) SolveContext(ctx context.Context, maxIter int) (int, error) {
	if err := sc.check("Solve"); err != nil {
		return -1, err
	}
	if maxIter <= 0 {
		maxIter = sc.opts.maxIter
	}
	if maxIter <= 0 {
		maxIter = sc.n
	}

	ctx, span := tracer.Start(ctx, "scheduler.Solve",
		trace.WithAttributes(
			attribute.Int("tasks", sc.n),
			attribute.String("semiring", sc.s.String()),
			attribute.Int("max_iterations", maxIter),
		),
	)
	defer span.End()
	start := time.Now()

	var mv []matrix.Option
	if sc.opts.backend != nil {
		mv = append(mv, matrix.WithBackend(sc.opts.backend))
	}

	sc.status = StatusSolving
	prev := make([]semiring.Value, sc.n)
	temp := make([]semiring.Value, sc.n)
	iterations := maxIter
	converged := false

	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			sc.status = StatusUnsolved
			span.AddEvent("cancelled", trace.WithAttributes(attribute.Int("iterations_completed", iter)))
			span.SetStatus(codes.Error, err.Error())
			return iter, fmt.Errorf("Solve: %w", err)
		}
		copy(prev, sc.state)
		if err := matrix.MatVec(sc.system, prev, temp, sc.s, mv...); err != nil {
			sc.status = StatusUnsolved
			span.RecordError(err)
			return iter, fmt.Errorf("Solve: %w", err)
		}
		for i := range sc.state {
			sc.state[i] = sc.s.Add(sc.s.Add(temp[i], sc.input[i]), prev[i])
		}
		if slices.Equal(sc.state, prev) {
			iterations = iter + 1
			converged = true
			break
		}
	}

	if converged {
		sc.status = StatusConverged
	} else {
		sc.status = StatusMaxIterExhausted
	}
	sc.iterations = iterations

	span.SetAttributes(
		attribute.Int("iterations", iterations),
		attribute.String("status", sc.status.String()),
	)
	recordSolveMetrics(ctx, time.Since(start), iterations, sc.status)
	sc.log.Debug("solve finished",
		slog.Int("tasks", sc.n),
		slog.Int("iterations", iterations),
		slog.String("status", sc.status.String()),
	)
	if !converged {
		sc.log.Warn("solve stopped at iteration cap", slog.Int("max_iterations", maxIter))
	}

	return iterations, nil
}

// CycleTime returns the eigenvalue of the system matrix: the steady-state
// period of a recurrent schedule, or s.Zero() when there is no cycle.
func (sc *Scheduler) CycleTime() (semiring.Value, error) {
	return sc.CycleTimeContext(context.Background())
}

// CycleTimeContext is CycleTime with tracing.
func (sc *Scheduler) CycleTimeContext(ctx context.Context) (semiring.Value, error) {
	if err := sc.check("CycleTime"); err != nil {
		return sc.zero(), err
	}
	v, err := eigen.EigenvalueContext(ctx, sc.system, sc.s)
	if err != nil {
		return sc.s.Zero(), fmt.Errorf("CycleTime: %w", err)
	}

	return v, nil
}

// Throughput returns 1/CycleTime, or 0 when the cycle time is zero or
// there is no cycle.
func (sc *Scheduler) Throughput() (float64, error) {
	ct, err := sc.CycleTime()
	if err != nil {
		return 0, err
	}
	if ct == 0 || ct == sc.s.Zero() {
		return 0, nil
	}

	return 1 / float64(ct), nil
}

// CriticalPath returns the chain of tasks that determines the latest
// completion, from its first task to the last.
//
// Backtracking starts at the task with the greatest completion time that
// differs from s.Zero(). At each step it moves to the first unvisited
// predecessor j with state[j] ⊗ system[cur][j] == state[cur], and stops
// when none exists. An unsolved or empty schedule yields a single task.
func (sc *Scheduler) CriticalPath() ([]int, error) {
	if err := sc.check("CriticalPath"); err != nil {
		return nil, err
	}
	zero := sc.s.Zero()

	end := 0
	for i, v := range sc.state {
		if v == zero {
			continue
		}
		if sc.state[end] == zero || v > sc.state[end] {
			end = i
		}
	}

	visited := make([]bool, sc.n)
	path := []int{end}
	visited[end] = true
	cur := end
	for len(path) < sc.n {
		next := -1
		for j, w := range sc.system.Row(cur) {
			if visited[j] || w == zero {
				continue
			}
			if sc.s.Mul(sc.state[j], w) == sc.state[cur] {
				next = j
				break
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}
	slices.Reverse(path)

	return path, nil
}

// CriticalPathNames is CriticalPath mapped through Name.
func (sc *Scheduler) CriticalPathNames() ([]string, error) {
	path, err := sc.CriticalPath()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(path))
	for i, t := range path {
		out[i] = sc.Name(t)
	}

	return out, nil
}

func (sc *Scheduler) zero() semiring.Value {
	if sc == nil {
		return semiring.NegInf
	}

	return sc.s.Zero()
}
