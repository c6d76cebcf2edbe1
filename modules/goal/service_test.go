package goal

import (
	"context"
	"errors"
	"strings"
	"testing"

	taskdomain "github.com/laibaTLD/logic-camp/domain/task"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

func newTestModule(t *testing.T) *GoalModule {
	t.Helper()
	db := setupTestDB(t)
	return &GoalModule{db: db, repo: NewRepository(db)}
}

func TestCreateGoalService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.createGoal(ctx, CreateGoalRequest{
		Title:     "Ship v1",
		Status:    "pending",
		Deadline:  "2026-10-01",
		ProjectID: 1,
	}, nil)
	if err != nil {
		t.Fatalf("createGoal() error = %v", err)
	}

	if resp.Status != "todo" {
		t.Errorf("Status = %q, want todo after normalizing pending", resp.Status)
	}
	if resp.Deadline == nil {
		t.Error("Deadline = nil, want parsed date")
	}
	if resp.Project.Name != "Launch" {
		t.Errorf("Project.Name = %q", resp.Project.Name)
	}
}

func TestCreateGoalServiceValidation(t *testing.T) {
	m := newTestModule(t)

	_, err := m.createGoal(context.Background(), CreateGoalRequest{Deadline: "soon"}, nil)
	if err == nil {
		t.Fatal("createGoal() error = nil, want validation error")
	}
	for _, field := range []string{"title", "deadline", "projectId"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q missing field %q", err.Error(), field)
		}
	}
}

func TestUpdateGoalServiceNormalizesStatus(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createGoal(ctx, CreateGoalRequest{Title: "Ship v1", ProjectID: 1}, nil)
	if err != nil {
		t.Fatalf("createGoal() error = %v", err)
	}
	if created.Status != "todo" {
		t.Fatalf("Status = %q, want todo default", created.Status)
	}

	status := "Done"
	updated, err := m.updateGoal(ctx, UpdateGoalRequest{ID: created.ID, Status: &status}, nil)
	if err != nil {
		t.Fatalf("updateGoal() error = %v", err)
	}

	if updated.Status != "completed" {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
	if updated.Title != "Ship v1" {
		t.Errorf("Title = %q, untouched fields must keep their value", updated.Title)
	}
}

func TestDeleteGoalServiceReportsRemovedTasks(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createGoal(ctx, CreateGoalRequest{Title: "Ship v1", ProjectID: 1}, nil)
	if err != nil {
		t.Fatalf("createGoal() error = %v", err)
	}

	task := taskdomain.Task{
		Title:       "Under the goal",
		Status:      workflow.StatusTodo,
		Priority:    workflow.PriorityMedium,
		GoalID:      created.ID,
		CreatedByID: 1,
	}
	if err := m.db.Create(&task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	resp, err := m.deleteGoal(ctx, DeleteGoalRequest{GoalID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteGoal() error = %v", err)
	}
	if !resp.Deleted || resp.TasksRemoved != 1 {
		t.Errorf("deleteGoal() = %+v, want Deleted with 1 task removed", resp)
	}

	if _, err := m.getGoal(ctx, GetGoalRequest{GoalID: created.ID}, nil); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("getGoal() after delete error = %v, want ErrGoalNotFound", err)
	}
}

func TestListGoalsService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two"} {
		if _, err := m.createGoal(ctx, CreateGoalRequest{Title: title, ProjectID: 1}, nil); err != nil {
			t.Fatalf("createGoal() error = %v", err)
		}
	}

	projectID := uint(1)
	scoped, err := m.listGoals(ctx, ListGoalsRequest{ProjectID: &projectID}, nil)
	if err != nil {
		t.Fatalf("listGoals() error = %v", err)
	}
	if scoped.Total != 2 {
		t.Errorf("scoped Total = %d, want 2", scoped.Total)
	}

	missing := uint(404)
	empty, err := m.listGoals(ctx, ListGoalsRequest{ProjectID: &missing}, nil)
	if err != nil {
		t.Fatalf("listGoals() error = %v", err)
	}
	if empty.Total != 0 || empty.Goals == nil {
		t.Errorf("list for unknown project = %+v, want empty non-nil list", empty)
	}
}

type fakeTaskCache struct {
	calls []*uint
	err   error
}

func (f *fakeTaskCache) InvalidateCache(_ context.Context, goalID *uint) error {
	f.calls = append(f.calls, goalID)
	return f.err
}

func TestDeleteGoalDropsTaskListCache(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createGoal(ctx, CreateGoalRequest{Title: "Ship v1", ProjectID: 1}, nil)
	if err != nil {
		t.Fatalf("createGoal() error = %v", err)
	}

	cache := &fakeTaskCache{}
	m.taskCache = cache

	if _, err := m.deleteGoal(ctx, DeleteGoalRequest{GoalID: created.ID}, nil); err != nil {
		t.Fatalf("deleteGoal() error = %v", err)
	}

	if len(cache.calls) != 1 {
		t.Fatalf("invalidation calls = %d, want 1", len(cache.calls))
	}
	if cache.calls[0] == nil || *cache.calls[0] != created.ID {
		t.Errorf("invalidated goal = %v, want %d", cache.calls[0], created.ID)
	}
}

func TestUpdateGoalDropsTaskListCache(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createGoal(ctx, CreateGoalRequest{Title: "Ship v1", ProjectID: 1}, nil)
	if err != nil {
		t.Fatalf("createGoal() error = %v", err)
	}

	cache := &fakeTaskCache{}
	m.taskCache = cache

	title := "Ship v2"
	if _, err := m.updateGoal(ctx, UpdateGoalRequest{ID: created.ID, Title: &title}, nil); err != nil {
		t.Fatalf("updateGoal() error = %v", err)
	}

	if len(cache.calls) != 1 {
		t.Errorf("invalidation calls = %d, want 1", len(cache.calls))
	}
}

func TestDeleteGoalSurvivesCacheInvalidationFailure(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createGoal(ctx, CreateGoalRequest{Title: "Ship v1", ProjectID: 1}, nil)
	if err != nil {
		t.Fatalf("createGoal() error = %v", err)
	}

	m.taskCache = &fakeTaskCache{err: errors.New("redis down")}

	resp, err := m.deleteGoal(ctx, DeleteGoalRequest{GoalID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteGoal() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("Deleted = false, want delete to succeed despite cache failure")
	}
}

func TestCreateGoalServiceMultibyteTitle(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	// Length limits count runes, so a 150-character multibyte title fits.
	_, err := m.createGoal(ctx, CreateGoalRequest{Title: strings.Repeat("ゴ", 150), ProjectID: 1}, nil)
	if err != nil {
		t.Errorf("createGoal() error = %v, want 150-rune title accepted", err)
	}

	_, err = m.createGoal(ctx, CreateGoalRequest{Title: strings.Repeat("ゴ", 201), ProjectID: 1}, nil)
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("createGoal() error = %v, want title length rejection", err)
	}
}
