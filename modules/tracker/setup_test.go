package tracker

import (
	"testing"

	"github.com/example/taskboard/domain/project"
	"github.com/example/taskboard/domain/task"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServices wires the project and task services against an in-memory
// SQLite database.
func newTestServices(t *testing.T) (*ProjectService, *TaskService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&project.Project{}, &task.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	projectRepo := NewProjectRepository(db)
	taskRepo := NewTaskRepository(db)
	return NewProjectService(projectRepo), NewTaskService(taskRepo, projectRepo)
}
