package goal

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/laibaTLD/logic-camp/domain/goal"
	projectdomain "github.com/laibaTLD/logic-camp/domain/project"
	taskdomain "github.com/laibaTLD/logic-camp/domain/task"
)

var (
	// ErrGoalNotFound is returned when a goal is not found.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrProjectNotFound is returned when the parent project does not exist.
	ErrProjectNotFound = errors.New("project not found")
)

// Repository provides access to goal storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new goal repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a goal after verifying its parent project exists.
func (r *Repository) Create(g *domain.Goal) (*domain.Goal, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var projects int64
		if err := tx.Model(&projectdomain.Project{}).Where("id = ?", g.ProjectID).Count(&projects).Error; err != nil {
			return fmt.Errorf("failed to check project existence: %w", err)
		}
		if projects == 0 {
			return ErrProjectNotFound
		}
		if err := tx.Create(g).Error; err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(g.ID)
}

// FindByID retrieves a goal with its project preloaded.
func (r *Repository) FindByID(id uint) (*domain.Goal, error) {
	var g domain.Goal
	if err := r.db.Preload("Project").First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return &g, nil
}

// Update persists the mutable goal fields. ProjectID is never written:
// the parent is immutable after creation.
func (r *Repository) Update(g *domain.Goal) (*domain.Goal, error) {
	result := r.db.Model(&domain.Goal{}).
		Where("id = ?", g.ID).
		Updates(map[string]any{
			"title":       g.Title,
			"description": g.Description,
			"status":      g.Status,
			"deadline":    g.Deadline,
			"updated_at":  g.UpdatedAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrGoalNotFound
	}
	return r.FindByID(g.ID)
}

// Delete removes the goal and cascades to its tasks and their assignment
// rows, all inside one transaction. It returns the number of tasks removed.
func (r *Repository) Delete(id uint) (int64, error) {
	var tasksRemoved int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(
			"task_id IN (?)",
			tx.Model(&taskdomain.Task{}).Select("id").Where("goal_id = ?", id),
		).Delete(&taskdomain.TaskAssignment{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete task assignments: %w", result.Error)
		}

		result = tx.Where("goal_id = ?", id).Delete(&taskdomain.Task{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete tasks: %w", result.Error)
		}
		tasksRemoved = result.RowsAffected

		result = tx.Delete(&domain.Goal{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete goal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tasksRemoved, nil
}

// ListByProject returns every goal under the project, newest first.
func (r *Repository) ListByProject(projectID uint) ([]*domain.Goal, error) {
	var goals []*domain.Goal
	err := r.db.Preload("Project").
		Where("project_id = ?", projectID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// ListAll returns every goal, newest first.
func (r *Repository) ListAll() ([]*domain.Goal, error) {
	var goals []*domain.Goal
	err := r.db.Preload("Project").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}
