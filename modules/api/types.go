package api

// Response is the uniform envelope wrapping every API response body.
// List endpoints also set Count.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// RegisterBody represents a user registration request body.
type RegisterBody struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginBody represents a user login request body.
type LoginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshBody represents a token refresh request body.
type RefreshBody struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutBody represents a logout request body.
type LogoutBody struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileBody represents a partial profile update request body.
// Absent fields are left untouched.
type UpdateProfileBody struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// ProjectBody represents a project create request body.
type ProjectBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

// ProjectPatchBody represents a partial project update request body.
type ProjectPatchBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

// TaskBody represents a task create request body.
type TaskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   string `json:"project_id"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

// TaskPatchBody represents a partial task update request body.
type TaskPatchBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ProjectID   *string `json:"project_id"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// UpdateStatusBody represents a status update request body for projects
// and tasks.
type UpdateStatusBody struct {
	Status string `json:"status"`
}
