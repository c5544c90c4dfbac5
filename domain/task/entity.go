package task

import (
	"time"

	"github.com/example/taskboard/domain/project"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists all valid task statuses.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known task statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all valid task priorities.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known task priorities.
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Task represents a unit of work within a project. A task is owned by
// reference through its parent project and is deleted when the project
// is deleted.
type Task struct {
	ID          string   `gorm:"primaryKey;type:text" json:"id"`
	Title       string   `gorm:"size:100;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	ProjectID   string   `gorm:"not null;type:text;index" json:"project_id"`
	Project     project.Project `gorm:"foreignKey:ProjectID" json:"-"`
	Status      Status   `gorm:"size:20;not null;default:todo" json:"status"`
	Priority    Priority `gorm:"size:20;not null;default:medium" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
