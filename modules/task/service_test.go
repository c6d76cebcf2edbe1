package task

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestModule(t *testing.T) *TaskModule {
	t.Helper()
	db := setupTestDB(t)
	return &TaskModule{db: db, repo: NewRepository(db)}
}

func TestCreateTaskService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.createTask(ctx, CreateTaskRequest{
		Title:       "Draft announcement",
		Status:      "Done",
		Priority:    "high",
		GoalID:      1,
		CreatedByID: 1,
		AssigneeIDs: []uint{1, 2},
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	if resp.Status != "completed" {
		t.Errorf("Status = %q, want completed after normalizing Done", resp.Status)
	}
	if resp.Priority != "high" {
		t.Errorf("Priority = %q", resp.Priority)
	}
	if resp.AssignedTo == nil || resp.AssignedTo.ID != 1 {
		t.Errorf("AssignedTo = %+v, want first assignee 1", resp.AssignedTo)
	}
	if len(resp.Assignees) != 2 {
		t.Fatalf("Assignees = %d entries, want 2", len(resp.Assignees))
	}
	if resp.Assignees[0].Email == "" || resp.Assignees[0].Name == "" {
		t.Error("Assignees not hydrated with name and email")
	}
	if resp.Goal.Title != "Ship v1" {
		t.Errorf("Goal.Title = %q", resp.Goal.Title)
	}
	if resp.CreatedBy.ID != 1 {
		t.Errorf("CreatedBy.ID = %d, want 1", resp.CreatedBy.ID)
	}
}

func TestCreateTaskServiceValidation(t *testing.T) {
	m := newTestModule(t)

	_, err := m.createTask(context.Background(), CreateTaskRequest{GoalID: 1, CreatedByID: 1}, nil)
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("createTask() error = %v, want title validation error", err)
	}
}

func TestUpdateTaskServiceReplacesAssignees(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{
		Title:       "Prepare demo",
		GoalID:      1,
		CreatedByID: 1,
		AssigneeIDs: []uint{1, 2},
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	updated, err := m.updateTask(ctx, UpdateTaskRequest{
		ID:          created.ID,
		AssigneeIDs: []uint{3},
	}, nil)
	if err != nil {
		t.Fatalf("updateTask() error = %v", err)
	}

	if updated.AssignedTo == nil || updated.AssignedTo.ID != 3 {
		t.Errorf("AssignedTo = %+v, want 3", updated.AssignedTo)
	}
	if len(updated.Assignees) != 1 || updated.Assignees[0].ID != 3 {
		t.Errorf("Assignees = %+v, want exactly [3]", updated.Assignees)
	}
	if updated.Title != "Prepare demo" {
		t.Errorf("Title = %q, untouched fields must keep their value", updated.Title)
	}
}

func TestUpdateTaskServicePartialFields(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{
		Title:       "Refine backlog",
		GoalID:      1,
		CreatedByID: 1,
		AssigneeIDs: []uint{2},
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	status := "in-progress"
	updated, err := m.updateTask(ctx, UpdateTaskRequest{ID: created.ID, Status: &status}, nil)
	if err != nil {
		t.Fatalf("updateTask() error = %v", err)
	}

	if updated.Status != "inProgress" {
		t.Errorf("Status = %q, want inProgress", updated.Status)
	}
	if len(updated.Assignees) != 1 || updated.Assignees[0].ID != 2 {
		t.Errorf("Assignees = %+v, an update without assignee fields must not touch the set", updated.Assignees)
	}
}

func TestUpdateTaskServiceLegacySingleAssignee(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{
		Title:       "Tune queries",
		GoalID:      1,
		CreatedByID: 1,
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	single := uint(2)
	updated, err := m.updateTask(ctx, UpdateTaskRequest{ID: created.ID, AssignedToID: &single}, nil)
	if err != nil {
		t.Fatalf("updateTask() error = %v", err)
	}

	if len(updated.Assignees) != 1 || updated.Assignees[0].ID != 2 {
		t.Errorf("Assignees = %+v, want [2] from legacy field", updated.Assignees)
	}
}

func TestDeleteTaskService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{
		Title:       "Throwaway",
		GoalID:      1,
		CreatedByID: 1,
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	resp, err := m.deleteTask(ctx, DeleteTaskRequest{TaskID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteTask() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("Deleted = false")
	}

	if _, err := m.getTask(ctx, GetTaskRequest{TaskID: created.ID}, nil); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("getTask() after delete error = %v, want ErrTaskNotFound", err)
	}
}

func TestListTasksService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two"} {
		if _, err := m.createTask(ctx, CreateTaskRequest{
			Title:       title,
			GoalID:      1,
			CreatedByID: 1,
		}, nil); err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
	}

	goalID := uint(1)
	scoped, err := m.listTasks(ctx, ListTasksRequest{GoalID: &goalID}, nil)
	if err != nil {
		t.Fatalf("listTasks() error = %v", err)
	}
	if scoped.Total != 2 || len(scoped.Tasks) != 2 {
		t.Errorf("scoped list = %d/%d, want 2 tasks", scoped.Total, len(scoped.Tasks))
	}

	all, err := m.listTasks(ctx, ListTasksRequest{}, nil)
	if err != nil {
		t.Fatalf("listTasks() error = %v", err)
	}
	if all.Total != 2 {
		t.Errorf("unscoped Total = %d, want 2", all.Total)
	}

	missing := uint(404)
	empty, err := m.listTasks(ctx, ListTasksRequest{GoalID: &missing}, nil)
	if err != nil {
		t.Fatalf("listTasks() error = %v", err)
	}
	if empty.Total != 0 || empty.Tasks == nil {
		t.Errorf("list for unknown goal = %+v, want empty non-nil list", empty)
	}
}

func TestListCacheKey(t *testing.T) {
	if got := listCacheKey(nil); got != "all" {
		t.Errorf("listCacheKey(nil) = %q, want all", got)
	}
	goalID := uint(7)
	if got := listCacheKey(&goalID); got != "goal:7" {
		t.Errorf("listCacheKey(7) = %q, want goal:7", got)
	}
}

func TestInvalidateListCacheWithoutRedis(t *testing.T) {
	m := newTestModule(t)

	// With no cache configured the invalidation path must be a no-op.
	m.invalidateListCache(context.Background(), 1)
}

func TestInvalidateCacheServiceWithoutRedis(t *testing.T) {
	m := newTestModule(t)

	resp, err := m.invalidateCache(context.Background(), InvalidateCacheRequest{}, nil)
	if err != nil {
		t.Fatalf("invalidateCache() error = %v", err)
	}
	if !resp.Invalidated {
		t.Error("Invalidated = false, want no-op success without a cache")
	}
}
