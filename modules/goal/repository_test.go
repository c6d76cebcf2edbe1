package goal

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/laibaTLD/logic-camp/domain/goal"
	projectdomain "github.com/laibaTLD/logic-camp/domain/project"
	taskdomain "github.com/laibaTLD/logic-camp/domain/task"
	userdomain "github.com/laibaTLD/logic-camp/domain/user"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// setupTestDB creates an in-memory SQLite database with the full schema,
// one user and one project.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&userdomain.User{},
		&projectdomain.Project{},
		&domain.Goal{},
		&taskdomain.Task{},
		&taskdomain.TaskAssignment{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	u := userdomain.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x", Role: userdomain.RoleAdmin}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	p := projectdomain.Project{Name: "Launch", Status: workflow.ProjectActive, OwnerID: u.ID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	return db
}

func TestRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(&domain.Goal{Title: "Ship v1", Status: workflow.StatusTodo, ProjectID: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID == 0 {
		t.Error("Create() did not assign an ID")
	}
	if created.Project.Name != "Launch" {
		t.Errorf("hydrated Project.Name = %q", created.Project.Name)
	}
}

func TestRepositoryCreateUnknownProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Create(&domain.Goal{Title: "Orphan", Status: workflow.StatusTodo, ProjectID: 404})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("Create() error = %v, want ErrProjectNotFound", err)
	}

	var count int64
	db.Model(&domain.Goal{}).Count(&count)
	if count != 0 {
		t.Errorf("goal rows after failed create = %d, want 0", count)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(&domain.Goal{Title: "Ship v1", Status: workflow.StatusTodo, ProjectID: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	created.Title = "Ship v1.0"
	created.Status = workflow.StatusCompleted
	created.UpdatedAt = time.Now()
	updated, err := repo.Update(created)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Title != "Ship v1.0" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.Status != workflow.StatusCompleted {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
	if updated.ProjectID != 1 {
		t.Errorf("ProjectID = %d, parent must stay unchanged", updated.ProjectID)
	}
}

func TestRepositoryUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if _, err := repo.Update(&domain.Goal{ID: 999, Title: "Ghost"}); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Update() error = %v, want ErrGoalNotFound", err)
	}
}

func TestRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(&domain.Goal{Title: "Ship v1", Status: workflow.StatusTodo, ProjectID: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, title := range []string{"one", "two"} {
		task := taskdomain.Task{
			Title:       title,
			Status:      workflow.StatusTodo,
			Priority:    workflow.PriorityMedium,
			GoalID:      created.ID,
			CreatedByID: 1,
		}
		if err := db.Create(&task).Error; err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}
		assignment := taskdomain.TaskAssignment{TaskID: task.ID, UserID: 1, AssignedAt: time.Now()}
		if err := db.Create(&assignment).Error; err != nil {
			t.Fatalf("failed to seed assignment: %v", err)
		}
	}

	tasksRemoved, err := repo.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if tasksRemoved != 2 {
		t.Errorf("tasksRemoved = %d, want 2", tasksRemoved)
	}

	var goals, tasks, assignments int64
	db.Model(&domain.Goal{}).Count(&goals)
	db.Model(&taskdomain.Task{}).Count(&tasks)
	db.Model(&taskdomain.TaskAssignment{}).Count(&assignments)
	if goals != 0 || tasks != 0 || assignments != 0 {
		t.Errorf("rows after delete: goals=%d tasks=%d assignments=%d, want 0/0/0", goals, tasks, assignments)
	}
}

func TestRepositoryDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if _, err := repo.Delete(12345); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Delete() error = %v, want ErrGoalNotFound", err)
	}
}

func TestRepositoryListByProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	other := projectdomain.Project{Name: "Side project", Status: workflow.ProjectPlanning, OwnerID: 1}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	for i, title := range []string{"first", "second"} {
		g := domain.Goal{
			Title:     title,
			Status:    workflow.StatusTodo,
			ProjectID: 1,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if _, err := repo.Create(&g); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if _, err := repo.Create(&domain.Goal{Title: "elsewhere", Status: workflow.StatusTodo, ProjectID: other.ID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	goals, err := repo.ListByProject(1)
	if err != nil {
		t.Fatalf("ListByProject() error = %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("ListByProject() returned %d goals, want 2", len(goals))
	}
	if goals[0].Title != "second" {
		t.Errorf("order = [%s %s], want newest first", goals[0].Title, goals[1].Title)
	}

	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll() returned %d goals, want 3", len(all))
	}
}
