package goal

import (
	"context"
	"time"
)

// CreateGoalRequest is the request for creating a goal.
type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	ProjectID   uint   `json:"projectId"`
}

// GetGoalRequest is the request for getting a goal.
type GetGoalRequest struct {
	GoalID uint `json:"goal_id"`
}

// UpdateGoalRequest is the request for updating a goal. Every field except
// ID is optional; absent fields keep their prior value. The parent project
// is immutable and deliberately absent.
type UpdateGoalRequest struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
}

// DeleteGoalRequest is the request for deleting a goal.
type DeleteGoalRequest struct {
	GoalID uint `json:"goal_id"`
}

// DeleteGoalResponse is the response for deleting a goal.
type DeleteGoalResponse struct {
	Deleted      bool  `json:"deleted"`
	TasksRemoved int64 `json:"tasks_removed"`
}

// ListGoalsRequest is the request for listing goals, optionally scoped
// to one project.
type ListGoalsRequest struct {
	ProjectID *uint `json:"projectId,omitempty"`
}

// ListGoalsResponse is the response for listing goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}

// ProjectSummary is the hydrated project reference embedded in goal responses.
type ProjectSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// GoalResponse is the hydrated goal returned to callers.
type GoalResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Deadline    *time.Time     `json:"deadline"`
	Project     ProjectSummary `json:"project"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// GoalPort defines the interface the API module uses to reach goal services.
type GoalPort interface {
	CreateGoal(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error)
	GetGoal(ctx context.Context, goalID uint) (*GoalResponse, error)
	UpdateGoal(ctx context.Context, req *UpdateGoalRequest) (*GoalResponse, error)
	DeleteGoal(ctx context.Context, goalID uint) error
	ListGoals(ctx context.Context, projectID *uint) (*ListGoalsResponse, error)
}
