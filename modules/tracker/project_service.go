package tracker

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/example/taskboard/domain/project"
	"github.com/google/uuid"
)

const (
	maxTitleLength = 100
	dueDateLayout  = "2006-01-02"
)

// ProjectInput carries the fields for creating a project. The owner is
// never part of the input: it is always the acting user.
type ProjectInput struct {
	Title       string
	Description string
	Status      string // optional, defaults to active
	DueDate     string // optional, YYYY-MM-DD
}

// ProjectPatch carries the optional fields for a partial project update.
// Only non-nil fields are applied. There is no owner field: ownership is
// immutable after creation.
type ProjectPatch struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
}

// ProjectService implements project operations. Every operation takes the
// acting user explicitly; nothing is read from ambient state.
type ProjectService struct {
	repo *ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo *ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create creates a project owned by the actor. Any owner value a client
// may have supplied upstream is ignored; the actor becomes the owner
// unconditionally.
func (s *ProjectService) Create(_ context.Context, actor string, in ProjectInput) (*project.Project, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}

	status := project.StatusActive
	if in.Status != "" {
		status = project.Status(in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.TitleExists(in.Title, actor, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTitle
	}

	now := time.Now()
	p := &project.Project{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     actor,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the actor's projects, newest first. Other actors' projects
// are never included.
func (s *ProjectService) List(_ context.Context, actor string) ([]*project.Project, error) {
	return s.repo.ListByOwner(actor)
}

// Get returns the actor's project with the given id. A project owned by
// someone else reads as not found.
func (s *ProjectService) Get(_ context.Context, actor, id string) (*project.Project, error) {
	return s.repo.FindByIDAndOwner(id, actor)
}

// Update applies a partial update to the actor's project. A title change
// re-checks the (title, owner) uniqueness constraint.
func (s *ProjectService) Update(ctx context.Context, actor, id string, patch ProjectPatch) (*project.Project, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title != p.Title {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
		exists, err := s.repo.TitleExists(*patch.Title, actor, p.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateTitle
		}
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		status := project.Status(*patch.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		p.Status = status
	}
	if patch.DueDate != nil {
		dueDate, err := parseDueDate(*patch.DueDate)
		if err != nil {
			return nil, err
		}
		p.DueDate = dueDate
	}

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the actor's project and all of its tasks atomically.
func (s *ProjectService) Delete(ctx context.Context, actor, id string) error {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteCascade(p.ID)
}

// SetStatus sets the project's status to one of the known enum values.
func (s *ProjectService) SetStatus(ctx context.Context, actor, id, status string) (*project.Project, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	next := project.Status(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	p.Status = next
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// parseDueDate parses an optional YYYY-MM-DD date. An empty string clears
// the due date.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := time.Parse(dueDateLayout, s)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &ts, nil
}
