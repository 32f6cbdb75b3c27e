// SPDX-License-Identifier: MIT

package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tropical/scheduler"
	"github.com/katalvlaran/tropical/semiring"
)

// Boot sequence task indices.
const (
	hw = iota
	kernel
	drivers
	network
	fs
	services
)

var bootNames = []string{"hardware", "kernel", "drivers", "network", "filesystem", "services"}

// bootDurations are the per-task durations; a constraint from→to carries
// the duration of from.
var bootDurations = []semiring.Value{10, 20, 15, 25, 30, 10}

// newBoot builds the six-task boot schedule with hardware ready at 0.
func newBoot(t *testing.T, opts ...scheduler.Option) *scheduler.Scheduler {
	t.Helper()
	sc, err := scheduler.New(len(bootNames), semiring.MaxPlus, opts...)
	require.NoError(t, err)
	for i, name := range bootNames {
		require.NoError(t, sc.SetName(i, name))
	}
	deps := [][2]int{
		{hw, kernel},
		{kernel, drivers}, {kernel, network}, {kernel, fs},
		{drivers, services}, {network, services}, {fs, services},
	}
	for _, d := range deps {
		require.NoError(t, sc.AddConstraint(d[0], d[1], bootDurations[d[0]]))
	}
	require.NoError(t, sc.SetReadyTime(hw, 0))

	return sc
}

// newRing builds a max-plus cycle 0→1→…→0 with the given weights.
func newRing(t *testing.T, weights ...semiring.Value) *scheduler.Scheduler {
	t.Helper()
	n := len(weights)
	sc, err := scheduler.New(n, semiring.MaxPlus)
	require.NoError(t, err)
	for i, w := range weights {
		require.NoError(t, sc.AddConstraint(i, (i+1)%n, w))
	}

	return sc
}
