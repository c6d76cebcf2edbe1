package task

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"

	domain "github.com/laibaTLD/logic-camp/domain/task"
	userdomain "github.com/laibaTLD/logic-camp/domain/user"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// createTask handles the create-task service request: validate the payload,
// normalize the status, resolve the assignee set, then write the task and
// its assignment rows in one transaction.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	validated, err := validateCreate(req)
	if err != nil {
		return TaskResponse{}, err
	}

	assignees := ResolveAssignees(req.AssignedToID, req.AssigneeIDs)

	created, err := m.repo.Create(&domain.Task{
		Title:          validated.Title,
		Description:    validated.Description,
		Status:         validated.Status,
		Priority:       validated.Priority,
		DueDate:        validated.DueDate,
		EstimatedHours: validated.EstimatedHours,
		GoalID:         validated.GoalID,
		CreatedByID:    validated.CreatedByID,
	}, assignees)
	if err != nil {
		return TaskResponse{}, err
	}

	m.invalidateListCache(ctx, created.GoalID)
	return toTaskResponse(created), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

// updateTask handles the update-task service request. Present fields
// overwrite, absent fields keep their prior value; a present assignee field
// replaces the whole assignee set.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	dueDate, err := validateUpdate(req)
	if err != nil {
		return TaskResponse{}, err
	}

	t, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = workflow.Normalize(*req.Status)
	}
	if req.Priority != nil {
		p, _ := workflow.ParsePriority(*req.Priority)
		t.Priority = p
	}
	if req.DueDate != nil {
		t.DueDate = dueDate
	}
	if req.EstimatedHours != nil {
		t.EstimatedHours = req.EstimatedHours
	}
	t.UpdatedAt = time.Now()

	replaceAssignees := req.AssigneeIDs != nil || req.AssignedToID != nil
	var assignees []uint
	if replaceAssignees {
		assignees = ResolveAssignees(req.AssignedToID, req.AssigneeIDs)
	}

	updated, err := m.repo.Update(t, replaceAssignees, assignees)
	if err != nil {
		return TaskResponse{}, err
	}

	m.invalidateListCache(ctx, updated.GoalID)
	return toTaskResponse(updated), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return DeleteTaskResponse{Deleted: false}, err
	}
	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false}, err
	}
	m.invalidateListCache(ctx, t.GoalID)
	return DeleteTaskResponse{Deleted: true}, nil
}

// listTasks handles the list-tasks service request, reading through the
// Redis cache when one is configured.
func (m *TaskModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	key := listCacheKey(req.GoalID)
	if m.cache != nil {
		var cached ListTasksResponse
		if hit, err := m.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var (
		tasks []*domain.Task
		err   error
	)
	if req.GoalID != nil {
		tasks, err = m.repo.ListByGoal(*req.GoalID)
	} else {
		tasks, err = m.repo.ListAll()
	}
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(t))
	}

	if m.cache != nil {
		if err := m.cache.Set(ctx, key, response); err != nil {
			log.Printf("[task] Warning: failed to cache %s: %v", key, err)
		}
	}
	return response, nil
}

// invalidateCache handles the invalidate-task-cache service request. Goal
// and project deletes cascade into task rows outside this module, so those
// modules call here to keep cached lists from outliving the rows.
func (m *TaskModule) invalidateCache(ctx context.Context, req InvalidateCacheRequest, _ *mono.Msg) (InvalidateCacheResponse, error) {
	if m.cache == nil {
		return InvalidateCacheResponse{Invalidated: true}, nil
	}
	if req.GoalID != nil {
		m.invalidateListCache(ctx, *req.GoalID)
		return InvalidateCacheResponse{Invalidated: true}, nil
	}
	if err := m.cache.DeletePattern(ctx, "*"); err != nil {
		return InvalidateCacheResponse{}, fmt.Errorf("failed to invalidate task cache: %w", err)
	}
	return InvalidateCacheResponse{Invalidated: true}, nil
}

// listCacheKey returns the cache key for a list query.
func listCacheKey(goalID *uint) string {
	if goalID == nil {
		return "all"
	}
	return fmt.Sprintf("goal:%d", *goalID)
}

// invalidateListCache drops the cached lists a mutation may have staled.
// Cache failures are logged, never surfaced: the store is the source of truth.
func (m *TaskModule) invalidateListCache(ctx context.Context, goalID uint) {
	if m.cache == nil {
		return
	}
	for _, key := range []string{"all", fmt.Sprintf("goal:%d", goalID)} {
		if err := m.cache.Delete(ctx, key); err != nil {
			log.Printf("[task] Warning: failed to invalidate cache %s: %v", key, err)
		}
	}
}

// toTaskResponse converts a hydrated task entity to its response shape.
// The legacy assignedTo field is derived here, at the serialization
// boundary, from the persisted legacy reference.
func toTaskResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		Goal: GoalSummary{
			ID:     t.Goal.ID,
			Title:  t.Goal.Title,
			Status: string(t.Goal.Status),
		},
		Assignees: make([]UserSummary, 0, len(t.Assignments)),
		CreatedBy: toUserSummary(t.CreatedBy),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	if t.AssignedTo != nil {
		s := toUserSummary(*t.AssignedTo)
		resp.AssignedTo = &s
	}
	for _, a := range t.Assignments {
		resp.Assignees = append(resp.Assignees, toUserSummary(a.User))
	}
	return resp
}

func toUserSummary(u userdomain.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
