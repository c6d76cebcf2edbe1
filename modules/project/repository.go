package project

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	goaldomain "github.com/laibaTLD/logic-camp/domain/goal"
	domain "github.com/laibaTLD/logic-camp/domain/project"
	taskdomain "github.com/laibaTLD/logic-camp/domain/task"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// Repository provides access to project storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new project repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new project.
func (r *Repository) Create(p *domain.Project) (*domain.Project, error) {
	if err := r.db.Create(p).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return r.FindByID(p.ID)
}

// FindByID retrieves a project with its owner preloaded.
func (r *Repository) FindByID(id uint) (*domain.Project, error) {
	var p domain.Project
	if err := r.db.Preload("Owner").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &p, nil
}

// Update persists the mutable project fields. OwnerID is never written.
func (r *Repository) Update(p *domain.Project) (*domain.Project, error) {
	result := r.db.Model(&domain.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"status":      p.Status,
			"team_id":     p.TeamID,
			"start_date":  p.StartDate,
			"end_date":    p.EndDate,
			"updated_at":  p.UpdatedAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}
	return r.FindByID(p.ID)
}

// Delete removes the project and cascades through its goals, their tasks
// and the tasks' assignment rows, all inside one transaction.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		goalIDs := func() *gorm.DB {
			return tx.Model(&goaldomain.Goal{}).Select("id").Where("project_id = ?", id)
		}
		taskIDs := func() *gorm.DB {
			return tx.Model(&taskdomain.Task{}).Select("id").Where("goal_id IN (?)", goalIDs())
		}

		if err := tx.Where("task_id IN (?)", taskIDs()).Delete(&taskdomain.TaskAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete task assignments: %w", err)
		}
		if err := tx.Where("goal_id IN (?)", goalIDs()).Delete(&taskdomain.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&goaldomain.Goal{}).Error; err != nil {
			return fmt.Errorf("failed to delete goals: %w", err)
		}

		result := tx.Delete(&domain.Project{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

// ListAll returns every project with its owner, newest first.
func (r *Repository) ListAll() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.Preload("Owner").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
