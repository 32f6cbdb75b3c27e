// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points.
//
// Contract:
//   • Build, BuildSparse and BuildSchedule resolve options once and run the
//     constructors in order against a single target of size n.
//   • Constructors validate their own parameters and return sentinel errors;
//     they never panic.
//   • Same inputs, options, seed and constructor order give identical output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/scheduler"
	"github.com/katalvlaran/tropical/semiring"
	"github.com/katalvlaran/tropical/sparse"
)

// Constructor emits the edges of one topology into a target.
type Constructor func(dst edgeSink, cfg builderConfig) error

// run applies cons in order, wrapping the first failure with op.
func run(op string, dst edgeSink, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", op, i, ErrConstructFailed)
		}
		if err := fn(dst, cfg); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// Build returns an n×n dense matrix over s, initialised to s.Zero(), with
// every constructor's edges merged in through ⊕.
func Build(n int, s semiring.Semiring, opts []BuilderOption, cons ...Constructor) (*matrix.Dense, error) {
	m, err := matrix.NewZero(n, n, s)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err = run("Build", denseSink{m: m, s: s}, newBuilderConfig(opts...), cons); err != nil {
		return nil, err
	}

	return m, nil
}

// BuildSparse is Build with a CSR result assembled through sparse.Builder.
// Edges whose merged weight is s.Zero() are not stored.
func BuildSparse(n int, s semiring.Semiring, opts []BuilderOption, cons ...Constructor) (*sparse.CSR, error) {
	b, err := sparse.NewBuilder(n, n, s)
	if err != nil {
		return nil, fmt.Errorf("BuildSparse: %w", err)
	}
	if err = run("BuildSparse", sparseSink{b: b}, newBuilderConfig(opts...), cons); err != nil {
		return nil, err
	}

	return b.Build()
}

// BuildSchedule returns an n-task scheduler where each edge u→v with
// weight w becomes AddConstraint(u, v, w). Tasks are named through the
// IDFn, and tasks left without a predecessor get ready time s.One().
func BuildSchedule(n int, s semiring.Semiring, opts []BuilderOption, sopts []scheduler.Option, cons ...Constructor) (*scheduler.Scheduler, error) {
	sc, err := scheduler.New(n, s, sopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildSchedule: %w", err)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.idLimit > 0 && n > cfg.idLimit {
		return nil, fmt.Errorf("BuildSchedule: %d tasks, %d names: %w", n, cfg.idLimit, ErrTooManyIDs)
	}
	for i := 0; i < n; i++ {
		if err = sc.SetName(i, cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("BuildSchedule: %w", err)
		}
	}
	sink := scheduleSink{sc: sc, hasPred: make([]bool, n)}
	if err = run("BuildSchedule", sink, cfg, cons); err != nil {
		return nil, err
	}
	for i, p := range sink.hasPred {
		if !p {
			if err = sc.SetReadyTime(i, s.One()); err != nil {
				return nil, fmt.Errorf("BuildSchedule: %w", err)
			}
		}
	}

	return sc, nil
}
