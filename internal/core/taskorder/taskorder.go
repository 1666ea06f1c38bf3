// Package taskorder implements the presentation ordering applied to task
// lists after retrieval. The backing store cannot express this policy in a
// single query, so it runs in memory over the already-fetched result.
package taskorder

import (
	"sort"

	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
)

// Sort orders tasks in place: every Pending task before every non-Pending
// task, and Pending tasks by priority weight descending. Any two tasks the
// comparator considers tied keep their input order (the store returns rows
// created_at descending, and the stable sort preserves that): non-Pending
// tasks are never reordered relative to each other, and neither are
// equal-priority Pending tasks.
func Sort(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j])
	})
}

func less(a, b domain.Task) bool {
	aPending := a.Status == domain.TaskStatusPending
	bPending := b.Status == domain.TaskStatusPending

	if aPending != bPending {
		return aPending
	}
	if !aPending {
		return false
	}
	return priorityWeight(a.Priority) > priorityWeight(b.Priority)
}

// priorityWeight maps High=3, Medium=2, Low=1. Anything outside the closed
// set weighs the same as Low.
func priorityWeight(p domain.TaskPriority) int {
	switch p {
	case domain.TaskPriorityHigh:
		return 3
	case domain.TaskPriorityMedium:
		return 2
	default:
		return 1
	}
}
