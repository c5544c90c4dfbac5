// Package policy holds the pure access and ordering decisions shared by the
// project and task services. Every function is side-effect free and depends
// only on its arguments; the current date is injected by callers.
package policy

import (
	"time"

	"github.com/example/taskboard/domain/project"
	"github.com/example/taskboard/domain/task"
)

// CanAccessProject reports whether the actor owns the project.
func CanAccessProject(actorID string, p *project.Project) bool {
	if p == nil {
		return false
	}
	return p.OwnerID == actorID
}

// CanAccessTask reports whether the actor owns the task's parent project.
func CanAccessTask(actorID string, t *task.Task) bool {
	if t == nil {
		return false
	}
	return CanAccessProject(actorID, &t.Project)
}

// RankPriority maps a task priority to its sort rank. Higher rank sorts
// first in the default task ordering. Unknown priorities rank below low.
func RankPriority(p task.Priority) int {
	switch p {
	case task.PriorityHigh:
		return 2
	case task.PriorityMedium:
		return 1
	case task.PriorityLow:
		return 0
	default:
		return -1
	}
}

// IsOverdue reports whether the task's due date is strictly before today
// and the task is still open. Tasks without a due date are never overdue.
func IsOverdue(t *task.Task, today time.Time) bool {
	if t == nil || t.DueDate == nil {
		return false
	}
	if t.Status != task.StatusTodo && t.Status != task.StatusInProgress {
		return false
	}
	due := DateOf(*t.DueDate)
	return due.Before(DateOf(today))
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
