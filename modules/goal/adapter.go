package goal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// goalAdapter implements GoalPort over the module's service container.
type goalAdapter struct {
	container mono.ServiceContainer
}

// NewGoalAdapter creates an adapter for the goal services.
func NewGoalAdapter(container mono.ServiceContainer) GoalPort {
	if container == nil {
		panic("goal adapter requires non-nil ServiceContainer")
	}
	return &goalAdapter{container: container}
}

// CreateGoal creates a new goal via the create-goal service.
func (a *goalAdapter) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error) {
	var resp GoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-goal", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-goal service call failed: %w", err)
	}
	return &resp, nil
}

// GetGoal retrieves a goal by ID via the get-goal service.
func (a *goalAdapter) GetGoal(ctx context.Context, goalID uint) (*GoalResponse, error) {
	req := GetGoalRequest{GoalID: goalID}
	var resp GoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-goal", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-goal service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateGoal updates a goal via the update-goal service.
func (a *goalAdapter) UpdateGoal(ctx context.Context, req *UpdateGoalRequest) (*GoalResponse, error) {
	var resp GoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-goal", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-goal service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteGoal deletes a goal via the delete-goal service.
func (a *goalAdapter) DeleteGoal(ctx context.Context, goalID uint) error {
	req := DeleteGoalRequest{GoalID: goalID}
	var resp DeleteGoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-goal", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-goal service call failed: %w", err)
	}
	if !resp.Deleted {
		return fmt.Errorf("goal not deleted: %d", goalID)
	}
	return nil
}

// ListGoals lists goals, optionally scoped to a project, via the list-goals service.
func (a *goalAdapter) ListGoals(ctx context.Context, projectID *uint) (*ListGoalsResponse, error) {
	req := ListGoalsRequest{ProjectID: projectID}
	var resp ListGoalsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-goals", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-goals service call failed: %w", err)
	}
	return &resp, nil
}
