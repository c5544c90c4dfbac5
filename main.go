package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/taskboard/modules/api"
	"github.com/example/taskboard/modules/auth"
	"github.com/example/taskboard/modules/tracker"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Missing .env is fine; environment variables take over.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("=== Taskboard ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule())    // Provides auth services
	app.Register(tracker.NewModule()) // Provides project and task services
	app.Register(api.NewModule())     // Depends on auth and tracker

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/auth/register              - Register a new user")
	log.Println("  POST   /api/auth/login                 - Login and get tokens")
	log.Println("  POST   /api/auth/refresh               - Refresh access token")
	log.Println("  GET    /health                         - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  POST   /api/auth/logout                - Revoke refresh token")
	log.Println("  GET    /api/auth/profile               - Get current user profile")
	log.Println("  PUT    /api/auth/update_profile        - Update profile fields")
	log.Println("  GET    /api/projects/                  - List your projects")
	log.Println("  POST   /api/projects/                  - Create a project")
	log.Println("  GET    /api/projects/:id               - Get a project")
	log.Println("  PUT    /api/projects/:id               - Update a project")
	log.Println("  DELETE /api/projects/:id               - Delete a project and its tasks")
	log.Println("  PATCH  /api/projects/:id/update_status - Set project status")
	log.Println("  GET    /api/tasks/                     - List your tasks (filters: project, status, priority)")
	log.Println("  POST   /api/tasks/                     - Create a task")
	log.Println("  GET    /api/tasks/overdue              - List your overdue tasks")
	log.Println("  GET    /api/tasks/:id                  - Get a task")
	log.Println("  PUT    /api/tasks/:id                  - Update a task")
	log.Println("  DELETE /api/tasks/:id                  - Delete a task")
	log.Println("  PATCH  /api/tasks/:id/update_status    - Set task status")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
