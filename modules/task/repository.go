package task

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	goaldomain "github.com/laibaTLD/logic-camp/domain/goal"
	domain "github.com/laibaTLD/logic-camp/domain/task"
)

var (
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrGoalNotFound is returned when the parent goal does not exist.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrAssigneeNotFound is returned when an assignee id refers to no user.
	ErrAssigneeNotFound = errors.New("one or more assignees not found")
)

// Repository provides access to task storage. Every mutation that touches
// both the task row and its assignment rows runs inside one transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// hydrate preloads the relations a caller-facing task carries: the goal
// summary, creator, legacy assignee and the full assignee set.
func hydrate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Goal").
		Preload("CreatedBy").
		Preload("AssignedTo").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_assignees.user_id")
		}).
		Preload("Assignments.User")
}

// Create inserts the task and its assignment rows in one transaction.
// The legacy assigned_to_id is derived from the first resolved assignee.
// An unknown goal or assignee aborts the whole write.
func (r *Repository) Create(t *domain.Task, assignees []uint) (*domain.Task, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var goals int64
		if err := tx.Model(&goaldomain.Goal{}).Where("id = ?", t.GoalID).Count(&goals).Error; err != nil {
			return fmt.Errorf("failed to check goal existence: %w", err)
		}
		if goals == 0 {
			return ErrGoalNotFound
		}

		if err := ensureUsersExist(tx, assignees); err != nil {
			return err
		}

		if len(assignees) > 0 {
			t.AssignedToID = &assignees[0]
		} else {
			t.AssignedToID = nil
		}

		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return replaceAssignments(tx, t.ID, assignees)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(t.ID)
}

// FindByID retrieves a hydrated task by its ID.
func (r *Repository) FindByID(id uint) (*domain.Task, error) {
	var t domain.Task
	if err := hydrate(r.db).First(&t, "tasks.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// Update persists a mutated task. When replaceAssignees is set, the whole
// assignee set is replaced with assignees and the legacy field re-derived;
// an unknown assignee aborts the transaction, leaving every field of the
// task untouched. GoalID is never written: the parent is immutable.
func (r *Repository) Update(t *domain.Task, replaceAssignees bool, assignees []uint) (*domain.Task, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if replaceAssignees {
			if err := ensureUsersExist(tx, assignees); err != nil {
				return err
			}
			if len(assignees) > 0 {
				t.AssignedToID = &assignees[0]
			} else {
				t.AssignedToID = nil
			}
			if err := replaceAssignments(tx, t.ID, assignees); err != nil {
				return err
			}
		}

		// A column map keeps goal_id and created_by_id out of the write:
		// the parent and creator are immutable after creation.
		result := tx.Model(&domain.Task{}).
			Where("id = ?", t.ID).
			Updates(map[string]any{
				"title":           t.Title,
				"description":     t.Description,
				"status":          t.Status,
				"priority":        t.Priority,
				"due_date":        t.DueDate,
				"estimated_hours": t.EstimatedHours,
				"assigned_to_id":  t.AssignedToID,
				"updated_at":      t.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(t.ID)
}

// Delete removes the task and its assignment rows in one transaction.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&domain.TaskAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete assignments: %w", err)
		}
		result := tx.Delete(&domain.Task{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

// ListByGoal returns every hydrated task under the goal, newest first.
func (r *Repository) ListByGoal(goalID uint) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := hydrate(r.db).
		Where("goal_id = ?", goalID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListAll returns every hydrated task, newest first.
func (r *Repository) ListAll() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := hydrate(r.db).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
