// SPDX-License-Identifier: MIT

package scheduler

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// Status is the solver state.
type Status int

// Solver states. Construction yields StatusUnsolved; Solve moves through
// StatusSolving to one of the two terminal states. Mutating the problem
// after a solve returns it to StatusUnsolved.
const (
	StatusUnsolved Status = iota
	StatusSolving
	StatusConverged
	StatusMaxIterExhausted
)

var statusNames = [...]string{
	StatusUnsolved:         "unsolved",
	StatusSolving:          "solving",
	StatusConverged:        "converged",
	StatusMaxIterExhausted: "max-iter-exhausted",
}

func (st Status) String() string {
	if st < 0 || int(st) >= len(statusNames) {
		return "Status(" + strconv.Itoa(int(st)) + ")"
	}

	return statusNames[st]
}

// Scheduler holds a precedence system and its current completion times.
type Scheduler struct {
	n      int
	s      semiring.Semiring
	system *matrix.Dense
	state  []semiring.Value
	input  []semiring.Value
	names  []string // nil until the first SetName

	status     Status
	iterations int
	released   bool

	opts options
	log  *slog.Logger
}

// New returns a scheduler for nTasks tasks over s, which must be
// semiring.MaxPlus or semiring.MinPlus. All times start at s.Zero().
//
// Errors: ErrNoTasks, ErrUnsupported.
func New(nTasks int, s semiring.Semiring, opts ...Option) (*Scheduler, error) {
	if nTasks <= 0 {
		return nil, fmt.Errorf("scheduler.New(%d): %w", nTasks, ErrNoTasks)
	}
	if !s.Additive() {
		return nil, fmt.Errorf("scheduler.New: %v: %w", s, ErrUnsupported)
	}
	system, err := matrix.NewZero(nTasks, nTasks, s)
	if err != nil {
		return nil, fmt.Errorf("scheduler.New: %w", err)
	}
	o := gatherOptions(opts...)

	sc := &Scheduler{
		n:      nTasks,
		s:      s,
		system: system,
		state:  make([]semiring.Value, nTasks),
		input:  make([]semiring.Value, nTasks),
		opts:   o,
		log:    o.logger.With(slog.String("component", "scheduler")),
	}
	zero := s.Zero()
	for i := range sc.state {
		sc.state[i] = zero
		sc.input[i] = zero
	}

	return sc, nil
}

// check guards every method against release and bad indices.
func (sc *Scheduler) check(op string, tasks ...int) error {
	if sc == nil || sc.released {
		return fmt.Errorf("%s: %w", op, ErrReleased)
	}
	for _, t := range tasks {
		if t < 0 || t >= sc.n {
			return fmt.Errorf("%s: task %d of %d: %w", op, t, sc.n, ErrTaskOutOfRange)
		}
	}

	return nil
}

// Len returns the task count.
func (sc *Scheduler) Len() int { return sc.n }

// Semiring returns the scheduling semiring.
func (sc *Scheduler) Semiring() semiring.Semiring { return sc.s }

// Status returns the solver state.
func (sc *Scheduler) Status() Status { return sc.status }

// Iterations returns the count reported by the last Solve, 0 before any.
func (sc *Scheduler) Iterations() int { return sc.iterations }

// SetName labels a task. Names are copied; an empty name restores the default.
func (sc *Scheduler) SetName(task int, name string) error {
	if err := sc.check("SetName", task); err != nil {
		return err
	}
	if sc.names == nil {
		sc.names = make([]string, sc.n)
	}
	sc.names[task] = name

	return nil
}

// Name returns the task label, "task-<i>" when none was set, or "" for a
// bad index.
func (sc *Scheduler) Name(task int) string {
	if sc.check("Name", task) != nil {
		return ""
	}
	if sc.names != nil && sc.names[task] != "" {
		return sc.names[task]
	}

	return "task-" + strconv.Itoa(task)
}

// AddConstraint records that task to depends on task from with the given
// duration: system[to][from] ⊕= duration. Repeated constraints on the
// same pair combine through ⊕ (the longest wins under max-plus).
func (sc *Scheduler) AddConstraint(from, to int, duration semiring.Value) error {
	if err := sc.check("AddConstraint", from, to); err != nil {
		return err
	}
	cur := sc.system.AtUnchecked(to, from)
	sc.system.SetUnchecked(to, from, sc.s.Add(cur, duration))
	sc.status = StatusUnsolved

	return nil
}

// SetReadyTime merges an external ready time into the task's input and
// current state: both ⊕= t.
func (sc *Scheduler) SetReadyTime(task int, t semiring.Value) error {
	if err := sc.check("SetReadyTime", task); err != nil {
		return err
	}
	sc.input[task] = sc.s.Add(sc.input[task], t)
	sc.state[task] = sc.s.Add(sc.state[task], t)
	sc.status = StatusUnsolved

	return nil
}

// Completion returns the current completion time of task.
func (sc *Scheduler) Completion(task int) (semiring.Value, error) {
	if err := sc.check("Completion", task); err != nil {
		return sc.s.Zero(), err
	}

	return sc.state[task], nil
}

// Completions returns a copy of all completion times.
func (sc *Scheduler) Completions() []semiring.Value {
	if sc.check("Completions") != nil {
		return nil
	}

	return slices.Clone(sc.state)
}

// System returns a copy of the system matrix.
func (sc *Scheduler) System() (*matrix.Dense, error) {
	if err := sc.check("System"); err != nil {
		return nil, err
	}

	return sc.system.Clone(), nil
}

// Graph returns the precedence graph in edge form, G[from][to] = duration,
// the transpose of System. It feeds matrix.Closure and eigen directly.
func (sc *Scheduler) Graph() (*matrix.Dense, error) {
	if err := sc.check("Graph"); err != nil {
		return nil, err
	}

	return matrix.Transpose(sc.system)
}

// Release drops all buffers. Further calls return ErrReleased; Release
// itself is idempotent.
func (sc *Scheduler) Release() {
	if sc == nil || sc.released {
		return
	}
	sc.system.Release()
	sc.system, sc.state, sc.input, sc.names = nil, nil, nil, nil
	sc.released = true
}
