package tracker

import (
	"time"

	"github.com/example/taskboard/domain/project"
	"github.com/example/taskboard/domain/task"
)

// Every request carries the acting user explicitly. The actor is filled in
// by the API layer from the validated token, never from the request body.

// CreateProjectRequest is the request for creating a project.
type CreateProjectRequest struct {
	Actor       string `json:"actor"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// ListProjectsRequest is the request for listing the actor's projects.
type ListProjectsRequest struct {
	Actor string `json:"actor"`
}

// GetProjectRequest is the request for getting a project.
type GetProjectRequest struct {
	Actor string `json:"actor"`
	ID    string `json:"id"`
}

// UpdateProjectRequest is the request for partially updating a project.
// Absent fields are left untouched.
type UpdateProjectRequest struct {
	Actor       string  `json:"actor"`
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// DeleteProjectRequest is the request for deleting a project.
type DeleteProjectRequest struct {
	Actor string `json:"actor"`
	ID    string `json:"id"`
}

// DeleteProjectResponse is the response after deleting a project.
type DeleteProjectResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// SetProjectStatusRequest is the request for setting a project's status.
type SetProjectStatusRequest struct {
	Actor  string `json:"actor"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ProjectResponse represents a project in responses.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListProjectsResponse is the response containing the actor's projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Actor       string `json:"actor"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"project_id"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// ListTasksRequest is the request for listing the actor's tasks with
// optional conjunctive filters.
type ListTasksRequest struct {
	Actor     string `json:"actor"`
	ProjectID string `json:"project_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	Actor string `json:"actor"`
	ID    string `json:"id"`
}

// UpdateTaskRequest is the request for partially updating a task.
type UpdateTaskRequest struct {
	Actor       string  `json:"actor"`
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	Actor string `json:"actor"`
	ID    string `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// SetTaskStatusRequest is the request for setting a task's status.
type SetTaskStatusRequest struct {
	Actor  string `json:"actor"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ListOverdueRequest is the request for listing the actor's overdue tasks.
type ListOverdueRequest struct {
	Actor string `json:"actor"`
}

// TaskResponse represents a task in responses, including the parent
// project's title and owner for convenience.
type TaskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ProjectID    string    `json:"project_id"`
	ProjectName  string    `json:"project_name"`
	ProjectOwner string    `json:"project_owner"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	DueDate      *string   `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListTasksResponse is the response containing the actor's tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// toProjectResponse converts a Project entity to a ProjectResponse.
func toProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Status:      string(p.Status),
		DueDate:     formatDueDate(p.DueDate),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		ProjectID:    t.ProjectID,
		ProjectName:  t.Project.Title,
		ProjectOwner: t.Project.OwnerID,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		DueDate:      formatDueDate(t.DueDate),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func formatDueDate(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	s := ts.Format(dueDateLayout)
	return &s
}
