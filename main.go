package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/laibaTLD/logic-camp/modules/api"
	"github.com/laibaTLD/logic-camp/modules/auth"
	"github.com/laibaTLD/logic-camp/modules/goal"
	"github.com/laibaTLD/logic-camp/modules/project"
	"github.com/laibaTLD/logic-camp/modules/task"
	"github.com/laibaTLD/logic-camp/storage"
)

const (
	shutdownTimeout = 30 * time.Second
	defaultDBPath   = "logic-camp.db"
)

func main() {
	log.Println("=== Logic Camp ===")

	dbPath := os.Getenv("APP_DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

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
	app.Register(auth.NewModule(db))
	app.Register(task.NewModule(db))
	app.Register(project.NewModule(db)) // Reaches task for cache invalidation
	app.Register(goal.NewModule(db))    // Reaches task for cache invalidation
	app.Register(api.NewModule())       // Depends on every module above

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
			"database": func(ctx context.Context) error {
				return storage.Close(db)
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
	log.Println("  POST   /api/v1/auth/register  - Register a new user")
	log.Println("  POST   /api/v1/auth/login     - Login and get tokens")
	log.Println("  POST   /api/v1/auth/refresh   - Refresh access token")
	log.Println("  GET    /health                - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/v1/profile        - Get current user profile")
	log.Println("  GET    /api/v1/tasks          - List tasks (?goalId=<id> to scope)")
	log.Println("  POST   /api/v1/tasks          - Create a task")
	log.Println("  PATCH  /api/v1/tasks/:id      - Update a task")
	log.Println("  DELETE /api/v1/tasks?id=<id>  - Delete a task")
	log.Println("  GET    /api/v1/goals          - List goals (?projectId=<id> to scope)")
	log.Println("  POST   /api/v1/goals          - Create a goal")
	log.Println("  PATCH  /api/v1/goals/:id      - Update a goal")
	log.Println("  DELETE /api/v1/goals?id=<id>  - Delete a goal and its tasks")
	log.Println("  GET    /api/v1/projects       - List projects")
	log.Println("  POST   /api/v1/projects       - Create a project (admin)")
	log.Println("  PATCH  /api/v1/projects/:id   - Update a project (admin)")
	log.Println("  DELETE /api/v1/projects?id=<id> - Delete a project (admin)")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
