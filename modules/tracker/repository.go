package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/taskboard/domain/policy"
	"github.com/example/taskboard/domain/project"
	"github.com/example/taskboard/domain/task"
	"gorm.io/gorm"
)

// ProjectRepository handles project persistence using GORM.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create saves a new project.
func (r *ProjectRepository) Create(p *project.Project) error {
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindByID retrieves a project by id regardless of owner. Used only where
// the caller applies its own access decision (task creation).
func (r *ProjectRepository) FindByID(id string) (*project.Project, error) {
	var p project.Project
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &p, nil
}

// FindByIDAndOwner retrieves a project scoped to its owner. A project that
// exists but belongs to someone else is indistinguishable from a missing one.
func (r *ProjectRepository) FindByIDAndOwner(id, ownerID string) (*project.Project, error) {
	var p project.Project
	err := r.db.First(&p, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &p, nil
}

// ListByOwner retrieves all projects owned by ownerID, newest first.
func (r *ProjectRepository) ListByOwner(ownerID string) ([]*project.Project, error) {
	var projects []*project.Project
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// TitleExists checks whether the owner already has a project with the given
// title, optionally excluding one project id (for title changes on update).
func (r *ProjectRepository) TitleExists(title, ownerID, excludeID string) (bool, error) {
	query := r.db.Model(&project.Project{}).
		Where("title = ? AND owner_id = ?", title, ownerID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return count > 0, nil
}

// Update persists changes to an existing project.
func (r *ProjectRepository) Update(p *project.Project) error {
	if err := r.db.Save(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteCascade removes the project and all of its tasks in one transaction.
// Either everything is deleted or nothing is; no orphaned tasks survive.
func (r *ProjectRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&task.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete project tasks: %w", err)
		}
		result := tx.Delete(&project.Project{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

// TaskFilters narrows a task listing. Empty fields are ignored; filters are
// conjunctive and can only restrict the owner-scoped base set.
type TaskFilters struct {
	ProjectID string
	Status    string
	Priority  string
}

// TaskRepository handles task persistence using GORM.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// priorityRankOrder builds the default task ordering clause. The ranks come
// from the shared policy so the SQL ordering and the in-process comparator
// cannot drift apart.
func priorityRankOrder() string {
	var b strings.Builder
	b.WriteString("CASE tasks.priority")
	for _, p := range task.Priorities {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, policy.RankPriority(p))
	}
	b.WriteString(" ELSE -1 END DESC, tasks.created_at DESC")
	return b.String()
}

// Create saves a new task. The embedded project association is never
// written through the task.
func (r *TaskRepository) Create(t *task.Task) error {
	if err := r.db.Omit("Project").Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByIDAndOwner retrieves a task whose parent project is owned by
// ownerID, with the project preloaded. Foreign tasks read as not found.
func (r *TaskRepository) FindByIDAndOwner(id, ownerID string) (*task.Task, error) {
	var t task.Task
	err := r.db.
		Preload("Project").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.id = ? AND projects.owner_id = ?", id, ownerID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// ListByOwner retrieves tasks whose parent project is owned by ownerID,
// narrowed by filters, ordered by priority rank then recency.
func (r *TaskRepository) ListByOwner(ownerID string, filters TaskFilters) ([]*task.Task, error) {
	query := r.db.
		Preload("Project").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.owner_id = ?", ownerID)

	if filters.ProjectID != "" {
		query = query.Where("tasks.project_id = ?", filters.ProjectID)
	}
	if filters.Status != "" {
		query = query.Where("tasks.status = ?", filters.Status)
	}
	if filters.Priority != "" {
		query = query.Where("tasks.priority = ?", filters.Priority)
	}

	var tasks []*task.Task
	if err := query.Order(priorityRankOrder()).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update persists changes to an existing task.
func (r *TaskRepository) Update(t *task.Task) error {
	if err := r.db.Omit("Project").Save(t).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task by id. Ownership is resolved by the caller.
func (r *TaskRepository) Delete(id string) error {
	result := r.db.Delete(&task.Task{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
