package tracker

import "errors"

// Error kinds surfaced by the project and task services. NotFound is
// deliberately returned both for missing ids and for entities owned by
// someone else, so non-owners cannot probe for existence. Forbidden is
// only possible at task creation, where the project's existence has
// already been confirmed.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrForbidden        = errors.New("you are not authorized to create tasks in this project")
	ErrDuplicateTitle   = errors.New("project with this title already exists")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title must be at most 100 characters")
	ErrProjectRequired  = errors.New("project is required")
	ErrInvalidDueDate   = errors.New("invalid due date, expected YYYY-MM-DD")
)
