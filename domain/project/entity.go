package project

import (
	"time"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Statuses lists all valid project statuses.
var Statuses = []Status{StatusActive, StatusCompleted, StatusArchived}

// Valid reports whether s is one of the known project statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Project represents a unit of work grouping owned by exactly one user.
// The (title, owner) pair is unique: no owner may have two projects with
// the same title. The owner never changes after creation.
type Project struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `gorm:"size:100;not null;uniqueIndex:idx_projects_title_owner" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	OwnerID     string `gorm:"not null;type:text;index;uniqueIndex:idx_projects_title_owner" json:"owner_id"`
	Status      Status `gorm:"size:20;not null;default:active" json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Project entity.
func (Project) TableName() string {
	return "projects"
}
