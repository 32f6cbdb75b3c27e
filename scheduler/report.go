// SPDX-License-Identifier: MIT

package scheduler

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tropical/semiring"
)

// TaskReport is one row of a schedule summary.
type TaskReport struct {
	Task       int            `json:"task"`
	Name       string         `json:"name"`
	Completion semiring.Value `json:"completion"`
	IsCritical bool           `json:"is_critical"`
}

// Report summarizes the current state: one row per task in index order,
// with IsCritical set for the tasks on CriticalPath.
func (sc *Scheduler) Report() ([]TaskReport, error) {
	path, err := sc.CriticalPath()
	if err != nil {
		return nil, fmt.Errorf("Report: %w", err)
	}
	onPath := make([]bool, sc.n)
	for _, t := range path {
		onPath[t] = true
	}

	out := make([]TaskReport, sc.n)
	for i := range out {
		out[i] = TaskReport{
			Task:       i,
			Name:       sc.Name(i),
			Completion: sc.state[i],
			IsCritical: onPath[i],
		}
	}

	return out, nil
}

// String renders the schedule as aligned "name  completion" lines with a
// trailing '*' on critical tasks. A released scheduler renders "<released>".
func (sc *Scheduler) String() string {
	rows, err := sc.Report()
	if err != nil {
		return "<released>"
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Name))
	}

	var sb strings.Builder
	for _, r := range rows {
		mark := ""
		if r.IsCritical {
			mark = " *"
		}
		fmt.Fprintf(&sb, "%-*s  %s%s\n", width, r.Name, r.Completion, mark)
	}

	return sb.String()
}
