package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/example/taskboard/domain/project"
	"github.com/example/taskboard/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TrackerModule provides project and task management services. Both tables
// live in one database so the cascade delete of a project's tasks runs as
// a single transaction.
type TrackerModule struct {
	db       *gorm.DB
	projects *ProjectService
	tasks    *TaskService
	dbPath   string
}

// Compile-time interface checks.
var _ mono.Module = (*TrackerModule)(nil)
var _ mono.ServiceProviderModule = (*TrackerModule)(nil)
var _ mono.HealthCheckableModule = (*TrackerModule)(nil)

// NewModule creates a new TrackerModule.
func NewModule() *TrackerModule {
	dbPath := os.Getenv("TASKBOARD_TRACKER_DB_PATH")
	if dbPath == "" {
		dbPath = "taskboard_tracker.db"
	}
	return &TrackerModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TrackerModule) Name() string {
	return "tracker"
}

// Start initializes the database connection and runs migrations.
func (m *TrackerModule) Start(_ context.Context) error {
	log.Printf("[tracker] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&project.Project{}, &task.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	projectRepo := NewProjectRepository(db)
	taskRepo := NewTaskRepository(db)
	m.projects = NewProjectService(projectRepo)
	m.tasks = NewTaskService(taskRepo, projectRepo)

	log.Println("[tracker] Module started successfully")
	return nil
}

// Stop gracefully closes the database connection.
func (m *TrackerModule) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[tracker] Module stopped")
	return nil
}

// Health performs a health check on the tracker module.
func (m *TrackerModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.tracker.".
func (m *TrackerModule) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]func(mono.ServiceContainer) error{
		"project-create": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "project-create", json.Unmarshal, json.Marshal, m.handleCreateProject)
		},
		"project-list": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "project-list", json.Unmarshal, json.Marshal, m.handleListProjects)
		},
		"project-get": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "project-get", json.Unmarshal, json.Marshal, m.handleGetProject)
		},
		"project-update": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "project-update", json.Unmarshal, json.Marshal, m.handleUpdateProject)
		},
		"project-delete": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "project-delete", json.Unmarshal, json.Marshal, m.handleDeleteProject)
		},
		"project-set-status": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "project-set-status", json.Unmarshal, json.Marshal, m.handleSetProjectStatus)
		},
		"task-create": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-create", json.Unmarshal, json.Marshal, m.handleCreateTask)
		},
		"task-list": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-list", json.Unmarshal, json.Marshal, m.handleListTasks)
		},
		"task-get": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-get", json.Unmarshal, json.Marshal, m.handleGetTask)
		},
		"task-update": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-update", json.Unmarshal, json.Marshal, m.handleUpdateTask)
		},
		"task-delete": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-delete", json.Unmarshal, json.Marshal, m.handleDeleteTask)
		},
		"task-set-status": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-set-status", json.Unmarshal, json.Marshal, m.handleSetTaskStatus)
		},
		"task-overdue": func(c mono.ServiceContainer) error {
			return helper.RegisterTypedRequestReplyService(c, "task-overdue", json.Unmarshal, json.Marshal, m.handleListOverdue)
		},
	}

	for name, register := range services {
		if err := register(container); err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[tracker] Registered services: project-{create,list,get,update,delete,set-status}, task-{create,list,get,update,delete,set-status,overdue}")
	return nil
}

func (m *TrackerModule) handleCreateProject(ctx context.Context, req CreateProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	p, err := m.projects.Create(ctx, req.Actor, ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(p), nil
}

func (m *TrackerModule) handleListProjects(ctx context.Context, req ListProjectsRequest, _ *mono.Msg) (ListProjectsResponse, error) {
	projects, err := m.projects.List(ctx, req.Actor)
	if err != nil {
		return ListProjectsResponse{}, err
	}

	resp := ListProjectsResponse{
		Projects: make([]ProjectResponse, 0, len(projects)),
		Total:    len(projects),
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, toProjectResponse(p))
	}
	return resp, nil
}

func (m *TrackerModule) handleGetProject(ctx context.Context, req GetProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	p, err := m.projects.Get(ctx, req.Actor, req.ID)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(p), nil
}

func (m *TrackerModule) handleUpdateProject(ctx context.Context, req UpdateProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	p, err := m.projects.Update(ctx, req.Actor, req.ID, ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(p), nil
}

func (m *TrackerModule) handleDeleteProject(ctx context.Context, req DeleteProjectRequest, _ *mono.Msg) (DeleteProjectResponse, error) {
	if err := m.projects.Delete(ctx, req.Actor, req.ID); err != nil {
		return DeleteProjectResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteProjectResponse{Deleted: true, ID: req.ID}, nil
}

func (m *TrackerModule) handleSetProjectStatus(ctx context.Context, req SetProjectStatusRequest, _ *mono.Msg) (ProjectResponse, error) {
	p, err := m.projects.SetStatus(ctx, req.Actor, req.ID, req.Status)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(p), nil
}

func (m *TrackerModule) handleCreateTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.tasks.Create(ctx, req.Actor, TaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

func (m *TrackerModule) handleListTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.tasks.List(ctx, req.Actor, TaskFilters{
		ProjectID: req.ProjectID,
		Status:    req.Status,
		Priority:  req.Priority,
	})
	if err != nil {
		return ListTasksResponse{}, err
	}
	return toListTasksResponse(tasks), nil
}

func (m *TrackerModule) handleGetTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.tasks.Get(ctx, req.Actor, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

func (m *TrackerModule) handleUpdateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.tasks.Update(ctx, req.Actor, req.ID, TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

func (m *TrackerModule) handleDeleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.tasks.Delete(ctx, req.Actor, req.ID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

func (m *TrackerModule) handleSetTaskStatus(ctx context.Context, req SetTaskStatusRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.tasks.SetStatus(ctx, req.Actor, req.ID, req.Status)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

func (m *TrackerModule) handleListOverdue(ctx context.Context, req ListOverdueRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.tasks.ListOverdue(ctx, req.Actor)
	if err != nil {
		return ListTasksResponse{}, err
	}
	return toListTasksResponse(tasks), nil
}

func toListTasksResponse(tasks []*task.Task) ListTasksResponse {
	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return resp
}
