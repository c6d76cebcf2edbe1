package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task. CreatedByID is set
// by the API layer from the authenticated principal, never by the client.
type CreateTaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	GoalID         uint     `json:"goalId"`
	AssignedToID   *uint    `json:"assignedToId,omitempty"`
	AssigneeIDs    []uint   `json:"assigneeIds,omitempty"`
	CreatedByID    uint     `json:"createdById"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// UpdateTaskRequest is the request for updating a task. Every field except
// ID is optional; absent fields keep their prior value. A present
// AssignedToID or AssigneeIDs fully replaces the assignee set.
type UpdateTaskRequest struct {
	ID             uint     `json:"id"`
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	DueDate        *string  `json:"dueDate,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	AssignedToID   *uint    `json:"assignedToId,omitempty"`
	AssigneeIDs    []uint   `json:"assigneeIds"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTasksRequest is the request for listing tasks, optionally scoped
// to one goal.
type ListTasksRequest struct {
	GoalID *uint `json:"goalId,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// InvalidateCacheRequest is the request for dropping cached task lists.
// A nil GoalID drops every cached list; a set GoalID drops that goal's
// list and the unscoped list.
type InvalidateCacheRequest struct {
	GoalID *uint `json:"goalId,omitempty"`
}

// InvalidateCacheResponse is the response for a cache invalidation.
type InvalidateCacheResponse struct {
	Invalidated bool `json:"invalidated"`
}

// UserSummary is the hydrated user reference embedded in task responses.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GoalSummary is the hydrated goal reference embedded in task responses.
type GoalSummary struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// TaskResponse is the hydrated task returned to callers. AssignedTo is a
// projection of the first assignee, kept for backward compatibility.
type TaskResponse struct {
	ID             uint          `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         string        `json:"status"`
	Priority       string        `json:"priority"`
	DueDate        *time.Time    `json:"dueDate"`
	EstimatedHours *float64      `json:"estimatedHours"`
	Goal           GoalSummary   `json:"goal"`
	AssignedTo     *UserSummary  `json:"assignedTo"`
	Assignees      []UserSummary `json:"assignees"`
	CreatedBy      UserSummary   `json:"createdBy"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// TaskPort defines the interface the API module uses to reach task services.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID uint) (*TaskResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uint) error
	ListTasks(ctx context.Context, goalID *uint) (*ListTasksResponse, error)
}

// CachePort defines the interface other modules use to drop stale cached
// task lists after a mutation outside the task module, such as a goal or
// project cascade delete.
type CachePort interface {
	InvalidateCache(ctx context.Context, goalID *uint) error
}
