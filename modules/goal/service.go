package goal

import (
	"context"
	"log"
	"time"

	"github.com/go-monolith/mono"

	domain "github.com/laibaTLD/logic-camp/domain/goal"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// createGoal handles the create-goal service request.
func (m *GoalModule) createGoal(_ context.Context, req CreateGoalRequest, _ *mono.Msg) (GoalResponse, error) {
	validated, err := validateCreate(req)
	if err != nil {
		return GoalResponse{}, err
	}

	created, err := m.repo.Create(&domain.Goal{
		Title:       validated.Title,
		Description: validated.Description,
		Status:      validated.Status,
		Deadline:    validated.Deadline,
		ProjectID:   validated.ProjectID,
	})
	if err != nil {
		return GoalResponse{}, err
	}

	return toGoalResponse(created), nil
}

// getGoal handles the get-goal service request.
func (m *GoalModule) getGoal(_ context.Context, req GetGoalRequest, _ *mono.Msg) (GoalResponse, error) {
	g, err := m.repo.FindByID(req.GoalID)
	if err != nil {
		return GoalResponse{}, err
	}
	return toGoalResponse(g), nil
}

// updateGoal handles the update-goal service request. A present status is
// normalized before persisting; no entity is ever stored with a
// non-canonical status string.
func (m *GoalModule) updateGoal(ctx context.Context, req UpdateGoalRequest, _ *mono.Msg) (GoalResponse, error) {
	deadline, err := validateUpdate(req)
	if err != nil {
		return GoalResponse{}, err
	}

	g, err := m.repo.FindByID(req.ID)
	if err != nil {
		return GoalResponse{}, err
	}

	if req.Title != nil {
		g.Title = *req.Title
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Status != nil {
		g.Status = workflow.Normalize(*req.Status)
	}
	if req.Deadline != nil {
		g.Deadline = deadline
	}
	g.UpdatedAt = time.Now()

	updated, err := m.repo.Update(g)
	if err != nil {
		return GoalResponse{}, err
	}
	m.invalidateTaskLists(ctx, req.ID)
	return toGoalResponse(updated), nil
}

// deleteGoal handles the delete-goal service request. The cascade removes
// task rows, so the task module's cached lists are dropped as well.
func (m *GoalModule) deleteGoal(ctx context.Context, req DeleteGoalRequest, _ *mono.Msg) (DeleteGoalResponse, error) {
	tasksRemoved, err := m.repo.Delete(req.GoalID)
	if err != nil {
		return DeleteGoalResponse{Deleted: false}, err
	}
	m.invalidateTaskLists(ctx, req.GoalID)
	return DeleteGoalResponse{Deleted: true, TasksRemoved: tasksRemoved}, nil
}

// invalidateTaskLists drops the task module's cached lists for a goal.
// Failures are logged, never surfaced: entries expire on their own TTL.
func (m *GoalModule) invalidateTaskLists(ctx context.Context, goalID uint) {
	if m.taskCache == nil {
		return
	}
	if err := m.taskCache.InvalidateCache(ctx, &goalID); err != nil {
		log.Printf("[goal] Warning: failed to invalidate task cache for goal %d: %v", goalID, err)
	}
}

// listGoals handles the list-goals service request.
func (m *GoalModule) listGoals(_ context.Context, req ListGoalsRequest, _ *mono.Msg) (ListGoalsResponse, error) {
	var (
		goals []*domain.Goal
		err   error
	)
	if req.ProjectID != nil {
		goals, err = m.repo.ListByProject(*req.ProjectID)
	} else {
		goals, err = m.repo.ListAll()
	}
	if err != nil {
		return ListGoalsResponse{}, err
	}

	response := ListGoalsResponse{
		Goals: make([]GoalResponse, 0, len(goals)),
		Total: len(goals),
	}
	for _, g := range goals {
		response.Goals = append(response.Goals, toGoalResponse(g))
	}
	return response, nil
}

// toGoalResponse converts a hydrated goal entity to its response shape.
func toGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		Deadline:    g.Deadline,
		Project: ProjectSummary{
			ID:     g.Project.ID,
			Name:   g.Project.Name,
			Status: string(g.Project.Status),
		},
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
