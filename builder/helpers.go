// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - edge targets and the shared emission routine.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/scheduler"
	"github.com/katalvlaran/tropical/semiring"
	"github.com/katalvlaran/tropical/sparse"
)

// edgeSink receives u→v edges. Repeated pairs combine with ⊕.
type edgeSink interface {
	addEdge(u, v int, w semiring.Value) error
}

type denseSink struct {
	m *matrix.Dense
	s semiring.Semiring
}

func (d denseSink) addEdge(u, v int, w semiring.Value) error {
	cur, err := d.m.At(u, v)
	if err != nil {
		return err
	}

	return d.m.Set(u, v, d.s.Add(cur, w))
}

type sparseSink struct{ b *sparse.Builder }

func (sp sparseSink) addEdge(u, v int, w semiring.Value) error {
	return sp.b.Add(u, v, w)
}

// scheduleSink turns u→v into "v waits w after u" and remembers which
// tasks gained a predecessor.
type scheduleSink struct {
	sc      *scheduler.Scheduler
	hasPred []bool
}

func (ss scheduleSink) addEdge(u, v int, w semiring.Value) error {
	if err := ss.sc.AddConstraint(u, v, w); err != nil {
		return err
	}
	if u != v {
		ss.hasPred[v] = true
	}

	return nil
}

// emit draws one weight and sends u→v, plus v→u under WithSymmetric.
func emit(dst edgeSink, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := dst.addEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: edge %d→%d (w=%v): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}
	if cfg.symmetric && u != v {
		if err := dst.addEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: edge %d→%d (w=%v): %w: %w", method, v, u, w, ErrConstructFailed, err)
		}
	}

	return nil
}
