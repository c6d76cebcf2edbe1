package task

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/laibaTLD/logic-camp/domain/task"
	userdomain "github.com/laibaTLD/logic-camp/domain/user"
)

// ResolveAssignees merges the legacy single-assignee field with the
// multi-assignee list. A non-empty list wins outright and the legacy field
// is ignored; otherwise the legacy field becomes a one-element list; with
// neither present the task is unassigned. Duplicates are dropped, first
// occurrence wins, caller order is preserved.
func ResolveAssignees(single *uint, many []uint) []uint {
	var candidates []uint
	switch {
	case len(many) > 0:
		candidates = many
	case single != nil:
		candidates = []uint{*single}
	default:
		return []uint{}
	}

	seen := make(map[uint]bool, len(candidates))
	resolved := make([]uint, 0, len(candidates))
	for _, id := range candidates {
		if seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, id)
	}
	return resolved
}

// ensureUsersExist verifies inside the caller's transaction that every id
// refers to an existing user. Any unknown id aborts the whole operation so
// no partial assignment is ever written.
func ensureUsersExist(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&userdomain.User{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check assignee existence: %w", err)
	}
	if count != int64(len(ids)) {
		return ErrAssigneeNotFound
	}
	return nil
}

// replaceAssignments removes every assignment row for the task and inserts
// one row per resolved id. Replace-all, not a diff: the caller's list is the
// complete new assignee set. Must run inside the same transaction as the
// task row write.
func replaceAssignments(tx *gorm.DB, taskID uint, ids []uint) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&domain.TaskAssignment{}).Error; err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	now := time.Now()
	for _, id := range ids {
		assignment := domain.TaskAssignment{TaskID: taskID, UserID: id, AssignedAt: now}
		if err := tx.Create(&assignment).Error; err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
	}
	return nil
}
