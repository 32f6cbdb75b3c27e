// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Decouple "which rows are computed where" from "how a row is computed".
//   - Every kernel in this package is written as a row-range function; a
//     Backend decides whether ranges run inline or across goroutines.
//
// Determinism:
//   - Each output row is produced by exactly one call, reading only inputs
//     that no other call writes. Scalar and Parallel are therefore
//     bit-identical for every operation and semiring.

package matrix

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Backend schedules row-range work for the compute kernels.
type Backend interface {
	// Name identifies the backend in logs and capability reports.
	Name() string
	// ForRows runs fn over a partition of [0, n). cellsPerRow estimates the
	// work of one row and lets implementations skip splitting small jobs.
	ForRows(n, cellsPerRow int, fn func(lo, hi int))
}

// scalarBackend runs every range on the caller's goroutine.
type scalarBackend struct{}

// Scalar returns the reference single-goroutine backend.
func Scalar() Backend { return scalarBackend{} }

func (scalarBackend) Name() string { return "scalar" }

func (scalarBackend) ForRows(n, _ int, fn func(lo, hi int)) {
	if n > 0 {
		fn(0, n)
	}
}

// parallelBackend splits rows into contiguous blocks run through an errgroup.
type parallelBackend struct {
	workers   int
	threshold int
}

// Parallel returns a backend that fans row blocks out to at most workers
// goroutines (0 means runtime.GOMAXPROCS). Jobs with fewer than threshold
// output cells run inline (0 means DefaultParallelThreshold).
// Panics on negative arguments.
func Parallel(workers, threshold int) Backend {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}
	if threshold < 0 {
		panic(panicThresholdInvalid)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if threshold == 0 {
		threshold = DefaultParallelThreshold
	}

	return parallelBackend{workers: workers, threshold: threshold}
}

func (p parallelBackend) Name() string {
	return fmt.Sprintf("parallel(workers=%d)", p.workers)
}

func (p parallelBackend) ForRows(n, cellsPerRow int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p.workers <= 1 || n == 1 || n*cellsPerRow < p.threshold {
		fn(0, n)
		return
	}

	blocks := min(p.workers, n)
	size := (n + blocks - 1) / blocks

	var g errgroup.Group
	g.SetLimit(p.workers)
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // row kernels cannot fail
}

var (
	defaultBackendMu sync.RWMutex
	defaultBackend   Backend = scalarBackend{}
)

// DefaultBackend returns the process-wide backend used when no WithBackend
// option is given. It starts as Scalar().
func DefaultBackend() Backend {
	defaultBackendMu.RLock()
	defer defaultBackendMu.RUnlock()

	return defaultBackend
}

// SetDefaultBackend replaces the process-wide default; nil restores Scalar().
func SetDefaultBackend(b Backend) {
	if b == nil {
		b = scalarBackend{}
	}
	defaultBackendMu.Lock()
	defaultBackend = b
	defaultBackendMu.Unlock()
}
