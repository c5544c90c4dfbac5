package policy

import (
	"testing"
	"time"

	"github.com/example/taskboard/domain/project"
	"github.com/example/taskboard/domain/task"
)

func TestCanAccessProject(t *testing.T) {
	owned := &project.Project{ID: "p1", Title: "Launch", OwnerID: "alice"}

	tests := []struct {
		name  string
		actor string
		proj  *project.Project
		want  bool
	}{
		{
			name:  "owner can access",
			actor: "alice",
			proj:  owned,
			want:  true,
		},
		{
			name:  "other actor cannot access",
			actor: "bob",
			proj:  owned,
			want:  false,
		},
		{
			name:  "empty actor cannot access",
			actor: "",
			proj:  owned,
			want:  false,
		},
		{
			name:  "nil project",
			actor: "alice",
			proj:  nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessProject(tt.actor, tt.proj); got != tt.want {
				t.Errorf("CanAccessProject(%q) = %v, want %v", tt.actor, got, tt.want)
			}
		})
	}
}

func TestCanAccessTask(t *testing.T) {
	tk := &task.Task{
		ID:        "t1",
		ProjectID: "p1",
		Project:   project.Project{ID: "p1", OwnerID: "alice"},
	}

	if !CanAccessTask("alice", tk) {
		t.Error("project owner should access task")
	}
	if CanAccessTask("bob", tk) {
		t.Error("non-owner should not access task")
	}
	if CanAccessTask("alice", nil) {
		t.Error("nil task should not be accessible")
	}
}

func TestRankPriority(t *testing.T) {
	tests := []struct {
		priority task.Priority
		want     int
	}{
		{task.PriorityHigh, 2},
		{task.PriorityMedium, 1},
		{task.PriorityLow, 0},
		{task.Priority("urgent"), -1},
		{task.Priority(""), -1},
	}

	for _, tt := range tests {
		if got := RankPriority(tt.priority); got != tt.want {
			t.Errorf("RankPriority(%q) = %d, want %d", tt.priority, got, tt.want)
		}
	}

	// Ordering property used by the default task sort.
	if RankPriority(task.PriorityHigh) <= RankPriority(task.PriorityMedium) {
		t.Error("high must rank above medium")
	}
	if RankPriority(task.PriorityMedium) <= RankPriority(task.PriorityLow) {
		t.Error("medium must rank above low")
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		due    *time.Time
		status task.Status
		want   bool
	}{
		{
			name:   "past due and todo",
			due:    &yesterday,
			status: task.StatusTodo,
			want:   true,
		},
		{
			name:   "past due and in progress",
			due:    &yesterday,
			status: task.StatusInProgress,
			want:   true,
		},
		{
			name:   "past due but completed",
			due:    &yesterday,
			status: task.StatusCompleted,
			want:   false,
		},
		{
			name:   "due today is not overdue",
			due:    &today,
			status: task.StatusTodo,
			want:   false,
		},
		{
			name:   "due tomorrow",
			due:    &tomorrow,
			status: task.StatusTodo,
			want:   false,
		},
		{
			name:   "no due date",
			due:    nil,
			status: task.StatusTodo,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := &task.Task{ID: "t1", Status: tt.status, DueDate: tt.due}
			if got := IsOverdue(tk, today); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOverdue_ComparesDatesNotTimes(t *testing.T) {
	// A due date earlier the same day is not overdue; only a strictly
	// earlier calendar date counts.
	today := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)
	dueSameDay := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	tk := &task.Task{Status: task.StatusTodo, DueDate: &dueSameDay}
	if IsOverdue(tk, today) {
		t.Error("due date on the same calendar day should not be overdue")
	}
}
