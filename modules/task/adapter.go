package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter implements TaskPort over the module's service container.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates an adapter for the task services.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// cacheAdapter implements CachePort over the module's service container.
type cacheAdapter struct {
	container mono.ServiceContainer
}

// NewCacheAdapter creates an adapter for the invalidate-task-cache service.
func NewCacheAdapter(container mono.ServiceContainer) CachePort {
	if container == nil {
		panic("task cache adapter requires non-nil ServiceContainer")
	}
	return &cacheAdapter{container: container}
}

// InvalidateCache drops cached task lists via the invalidate-task-cache service.
func (a *cacheAdapter) InvalidateCache(ctx context.Context, goalID *uint) error {
	req := InvalidateCacheRequest{GoalID: goalID}
	var resp InvalidateCacheResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "invalidate-task-cache", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("invalidate-task-cache service call failed: %w", err)
	}
	return nil
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID uint) (*TaskResponse, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-task service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask updates a task via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID uint) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %d", taskID)
	}
	return nil
}

// ListTasks lists tasks, optionally scoped to a goal, via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context, goalID *uint) (*ListTasksResponse, error) {
	req := ListTasksRequest{GoalID: goalID}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	return &resp, nil
}
