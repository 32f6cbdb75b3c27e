// SPDX-License-Identifier: MIT

// Package scheduler solves precedence-constrained timing problems as a
// tropical fixed point.
//
// Tasks are indexed 0..n-1. A constraint "to may finish no earlier than
// duration after from" becomes system[to][from] = duration, and the
// completion-time vector x satisfies
//
//	x = (A ⊗ x) ⊕ b
//
// where b holds external ready times. Under max-plus a task waits for its
// latest predecessor; under min-plus for its earliest.
//
//	s, _ := scheduler.New(3, semiring.MaxPlus)
//	_ = s.AddConstraint(0, 1, 10) // 1 waits 10 after 0
//	_ = s.AddConstraint(1, 2, 5)
//	_ = s.SetReadyTime(0, 0)
//	s.Solve(0)
//	t, _ := s.Completion(2) // 15
//
// For cyclic (recurrent) systems CycleTime returns the tropical eigenvalue
// of the system matrix, the steady-state period between iterations.
//
// A Scheduler is not safe for concurrent use.
package scheduler
