package tracker

import (
	"context"
	"time"

	"github.com/example/taskboard/domain/policy"
	"github.com/example/taskboard/domain/task"
	"github.com/google/uuid"
)

// TaskInput carries the fields for creating a task.
type TaskInput struct {
	Title       string
	Description string
	ProjectID   string
	Status      string // optional, defaults to todo
	Priority    string // optional, defaults to medium
	DueDate     string // optional, YYYY-MM-DD
}

// TaskPatch carries the optional fields for a partial task update. Only
// non-nil fields are applied.
type TaskPatch struct {
	Title       *string
	Description *string
	ProjectID   *string
	Status      *string
	Priority    *string
	DueDate     *string
}

// TaskService implements task operations. Every operation takes the acting
// user explicitly.
type TaskService struct {
	tasks    *TaskRepository
	projects *ProjectRepository
	now      func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks *TaskRepository, projects *ProjectRepository) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		now:      time.Now,
	}
}

// Create creates a task in the given project. This is the single ownership
// checkpoint: the project must exist (NotFound otherwise) and must be owned
// by the actor (Forbidden otherwise, since existence is already confirmed).
func (s *TaskService) Create(_ context.Context, actor string, in TaskInput) (*task.Task, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if in.ProjectID == "" {
		return nil, ErrProjectRequired
	}

	p, err := s.projects.FindByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessProject(actor, p) {
		return nil, ErrForbidden
	}

	status := task.StatusTodo
	if in.Status != "" {
		status = task.Status(in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	priority := task.PriorityMedium
	if in.Priority != "" {
		priority = task.Priority(in.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
	}

	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &task.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ProjectID:   p.ID,
		Project:     *p,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the actor's tasks, optionally narrowed by filters. The base
// set is always owner-scoped: a project_id filter for someone else's
// project yields nothing rather than widening visibility.
func (s *TaskService) List(_ context.Context, actor string, filters TaskFilters) ([]*task.Task, error) {
	return s.tasks.ListByOwner(actor, filters)
}

// Get returns the actor's task with the given id. A task under someone
// else's project reads as not found.
func (s *TaskService) Get(_ context.Context, actor, id string) (*task.Task, error) {
	return s.tasks.FindByIDAndOwner(id, actor)
}

// Update applies a partial update to the actor's task. Reassigning the
// task to another project checks that the target project exists but does
// not re-check its ownership; the ownership check happens only at creation.
func (s *TaskService) Update(ctx context.Context, actor, id string, patch TaskPatch) (*task.Task, error) {
	t, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ProjectID != nil && *patch.ProjectID != t.ProjectID {
		p, err := s.projects.FindByID(*patch.ProjectID)
		if err != nil {
			return nil, err
		}
		t.ProjectID = p.ID
		t.Project = *p
	}
	if patch.Status != nil {
		status := task.Status(*patch.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = status
	}
	if patch.Priority != nil {
		priority := task.Priority(*patch.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
		t.Priority = priority
	}
	if patch.DueDate != nil {
		dueDate, err := parseDueDate(*patch.DueDate)
		if err != nil {
			return nil, err
		}
		t.DueDate = dueDate
	}

	if err := s.tasks.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the actor's task.
func (s *TaskService) Delete(ctx context.Context, actor, id string) error {
	t, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.tasks.Delete(t.ID)
}

// SetStatus sets the task's status. Any known status may be set from any
// other; there is no transition machine, and setting the current status
// again succeeds unchanged.
func (s *TaskService) SetStatus(ctx context.Context, actor, id, status string) (*task.Task, error) {
	t, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	next := task.Status(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	t.Status = next
	if err := s.tasks.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListOverdue returns the actor's tasks whose due date has passed and which
// are still open, per the shared overdue policy.
func (s *TaskService) ListOverdue(ctx context.Context, actor string) ([]*task.Task, error) {
	all, err := s.List(ctx, actor, TaskFilters{})
	if err != nil {
		return nil, err
	}

	today := s.now()
	overdue := make([]*task.Task, 0)
	for _, t := range all {
		if policy.IsOverdue(t, today) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}
