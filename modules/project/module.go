package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"

	"github.com/laibaTLD/logic-camp/modules/task"
)

// ProjectModule provides project management services over the shared database.
type ProjectModule struct {
	db        *gorm.DB
	repo      *Repository
	taskCache task.CachePort
}

// Compile-time interface checks.
var _ mono.Module = (*ProjectModule)(nil)
var _ mono.ServiceProviderModule = (*ProjectModule)(nil)
var _ mono.DependentModule = (*ProjectModule)(nil)
var _ mono.HealthCheckableModule = (*ProjectModule)(nil)

// NewModule creates a new ProjectModule backed by the shared database handle.
func NewModule(db *gorm.DB) *ProjectModule {
	return &ProjectModule{db: db}
}

// Name returns the module name.
func (m *ProjectModule) Name() string {
	return "project"
}

// Dependencies returns the list of module dependencies.
func (m *ProjectModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *ProjectModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskCache = task.NewCacheAdapter(container)
	}
}

// Start initializes the repository.
func (m *ProjectModule) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database handle not set")
	}
	m.repo = NewRepository(m.db)
	log.Println("[project] Module started")
	return nil
}

// Stop shuts down the module.
func (m *ProjectModule) Stop(_ context.Context) error {
	log.Println("[project] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *ProjectModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{Healthy: false, Message: "database not initialized"}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get sql.DB: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}

// RegisterServices registers request-reply services in the service container.
func (m *ProjectModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-project", json.Unmarshal, json.Marshal, m.createProject,
	); err != nil {
		return fmt.Errorf("failed to register create-project service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-project", json.Unmarshal, json.Marshal, m.getProject,
	); err != nil {
		return fmt.Errorf("failed to register get-project service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-project", json.Unmarshal, json.Marshal, m.updateProject,
	); err != nil {
		return fmt.Errorf("failed to register update-project service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-project", json.Unmarshal, json.Marshal, m.deleteProject,
	); err != nil {
		return fmt.Errorf("failed to register delete-project service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-projects", json.Unmarshal, json.Marshal, m.listProjects,
	); err != nil {
		return fmt.Errorf("failed to register list-projects service: %w", err)
	}

	log.Printf("[project] Registered services: create-project, get-project, update-project, delete-project, list-projects")
	return nil
}
