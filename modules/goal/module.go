package goal

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

// GoalModule provides goal management services over the shared database.
type GoalModule struct {
	db        *gorm.DB
	repo      *Repository
	taskCache task.CachePort
}

// Compile-time interface checks.
var _ mono.Module = (*GoalModule)(nil)
var _ mono.ServiceProviderModule = (*GoalModule)(nil)
var _ mono.DependentModule = (*GoalModule)(nil)
var _ mono.HealthCheckableModule = (*GoalModule)(nil)

// NewModule creates a new GoalModule backed by the shared database handle.
func NewModule(db *gorm.DB) *GoalModule {
	return &GoalModule{db: db}
}

// Name returns the module name.
func (m *GoalModule) Name() string {
	return "goal"
}

// Dependencies returns the list of module dependencies.
func (m *GoalModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *GoalModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskCache = task.NewCacheAdapter(container)
	}
}

// Start initializes the repository.
func (m *GoalModule) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database handle not set")
	}
	m.repo = NewRepository(m.db)
	log.Println("[goal] Module started")
	return nil
}

// Stop shuts down the module.
func (m *GoalModule) Stop(_ context.Context) error {
	log.Println("[goal] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *GoalModule) Health(ctx context.Context) mono.HealthStatus {
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
func (m *GoalModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-goal", json.Unmarshal, json.Marshal, m.createGoal,
	); err != nil {
		return fmt.Errorf("failed to register create-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-goal", json.Unmarshal, json.Marshal, m.getGoal,
	); err != nil {
		return fmt.Errorf("failed to register get-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-goal", json.Unmarshal, json.Marshal, m.updateGoal,
	); err != nil {
		return fmt.Errorf("failed to register update-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-goal", json.Unmarshal, json.Marshal, m.deleteGoal,
	); err != nil {
		return fmt.Errorf("failed to register delete-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-goals", json.Unmarshal, json.Marshal, m.listGoals,
	); err != nil {
		return fmt.Errorf("failed to register list-goals service: %w", err)
	}

	log.Printf("[goal] Registered services: create-goal, get-goal, update-goal, delete-goal, list-goals")
	return nil
}
