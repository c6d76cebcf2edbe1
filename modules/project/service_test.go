package project

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestModule(t *testing.T) *ProjectModule {
	t.Helper()
	db := setupTestDB(t)
	return &ProjectModule{db: db, repo: NewRepository(db)}
}

func TestCreateProjectService(t *testing.T) {
	m := newTestModule(t)

	resp, err := m.createProject(context.Background(), CreateProjectRequest{
		Name:      "Launch",
		Status:    "in progress",
		StartDate: "2026-09-01",
		OwnerID:   1,
	}, nil)
	if err != nil {
		t.Fatalf("createProject() error = %v", err)
	}

	if resp.Status != "active" {
		t.Errorf("Status = %q, want active after normalizing in progress", resp.Status)
	}
	if resp.StartDate == nil {
		t.Error("StartDate = nil, want parsed date")
	}
	if resp.Owner.Name != "Admin" {
		t.Errorf("Owner.Name = %q", resp.Owner.Name)
	}
}

func TestCreateProjectServiceValidation(t *testing.T) {
	m := newTestModule(t)

	_, err := m.createProject(context.Background(), CreateProjectRequest{EndDate: "later"}, nil)
	if err == nil {
		t.Fatal("createProject() error = nil, want validation error")
	}
	for _, field := range []string{"name", "endDate", "ownerId"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q missing field %q", err.Error(), field)
		}
	}
}

func TestUpdateProjectService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createProject(ctx, CreateProjectRequest{Name: "Launch", OwnerID: 1}, nil)
	if err != nil {
		t.Fatalf("createProject() error = %v", err)
	}
	if created.Status != "planning" {
		t.Fatalf("Status = %q, want planning default", created.Status)
	}

	status := "paused"
	updated, err := m.updateProject(ctx, UpdateProjectRequest{ID: created.ID, Status: &status}, nil)
	if err != nil {
		t.Fatalf("updateProject() error = %v", err)
	}

	if updated.Status != "onHold" {
		t.Errorf("Status = %q, want onHold", updated.Status)
	}
	if updated.Name != "Launch" {
		t.Errorf("Name = %q, untouched fields must keep their value", updated.Name)
	}
}

func TestDeleteProjectService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createProject(ctx, CreateProjectRequest{Name: "Launch", OwnerID: 1}, nil)
	if err != nil {
		t.Fatalf("createProject() error = %v", err)
	}

	resp, err := m.deleteProject(ctx, DeleteProjectRequest{ProjectID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteProject() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("Deleted = false")
	}

	if _, err := m.getProject(ctx, GetProjectRequest{ProjectID: created.ID}, nil); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("getProject() after delete error = %v, want ErrProjectNotFound", err)
	}
}

func TestListProjectsService(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	for _, name := range []string{"one", "two"} {
		if _, err := m.createProject(ctx, CreateProjectRequest{Name: name, OwnerID: 1}, nil); err != nil {
			t.Fatalf("createProject() error = %v", err)
		}
	}

	resp, err := m.listProjects(ctx, ListProjectsRequest{}, nil)
	if err != nil {
		t.Fatalf("listProjects() error = %v", err)
	}
	if resp.Total != 2 || len(resp.Projects) != 2 {
		t.Errorf("listProjects() = %d/%d, want 2 projects", resp.Total, len(resp.Projects))
	}
}

type fakeTaskCache struct {
	calls []*uint
}

func (f *fakeTaskCache) InvalidateCache(_ context.Context, goalID *uint) error {
	f.calls = append(f.calls, goalID)
	return nil
}

func TestDeleteProjectDropsAllTaskListCaches(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createProject(ctx, CreateProjectRequest{Name: "Launch", OwnerID: 1}, nil)
	if err != nil {
		t.Fatalf("createProject() error = %v", err)
	}

	cache := &fakeTaskCache{}
	m.taskCache = cache

	if _, err := m.deleteProject(ctx, DeleteProjectRequest{ProjectID: created.ID}, nil); err != nil {
		t.Fatalf("deleteProject() error = %v", err)
	}

	if len(cache.calls) != 1 {
		t.Fatalf("invalidation calls = %d, want 1", len(cache.calls))
	}
	// The cascade spans every goal in the project, so the whole task
	// keyspace is dropped rather than one goal's list.
	if cache.calls[0] != nil {
		t.Errorf("invalidated goal = %d, want nil for a full drop", *cache.calls[0])
	}
}

func TestCreateProjectServiceMultibyteName(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	// Length limits count runes, so a 150-character multibyte name fits.
	_, err := m.createProject(ctx, CreateProjectRequest{Name: strings.Repeat("プ", 150), OwnerID: 1}, nil)
	if err != nil {
		t.Errorf("createProject() error = %v, want 150-rune name accepted", err)
	}

	_, err = m.createProject(ctx, CreateProjectRequest{Name: strings.Repeat("プ", 201), OwnerID: 1}, nil)
	if err == nil || !strings.Contains(err.Error(), "name") {
		t.Errorf("createProject() error = %v, want name length rejection", err)
	}
}
