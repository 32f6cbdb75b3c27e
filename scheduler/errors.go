// SPDX-License-Identifier: MIT

package scheduler

import (
	"errors"

	"github.com/katalvlaran/tropical/matrix"
)

var (
	// ErrReleased is returned by every method after Release.
	ErrReleased = errors.New("scheduler: released")

	// ErrNoTasks is returned by New for a non-positive task count.
	// It matches matrix.ErrInvalidDimensions.
	ErrNoTasks = matrix.ErrInvalidDimensions

	// ErrTaskOutOfRange is returned for task indices outside [0, n).
	// It matches matrix.ErrOutOfRange.
	ErrTaskOutOfRange = matrix.ErrOutOfRange

	// ErrUnsupported is returned by New for semirings other than max-plus
	// and min-plus.
	ErrUnsupported = matrix.ErrUnsupported
)
