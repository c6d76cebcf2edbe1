package task

import (
	"time"

	"github.com/laibaTLD/logic-camp/domain/goal"
	"github.com/laibaTLD/logic-camp/domain/user"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// Task is a unit of work under a goal. GoalID is set at creation and never
// changed by updates. AssignedToID is the legacy single-assignee field, kept
// for backward compatibility: whenever the assignee set is non-empty it holds
// the first assignee supplied by the caller; internally assignment is always
// the Assignments set and the legacy field is derived from it on write.
type Task struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Title          string            `gorm:"size:200;not null" json:"title"`
	Description    string            `gorm:"type:text" json:"description"`
	Status         workflow.Status   `gorm:"size:20;not null;default:todo" json:"status"`
	Priority       workflow.Priority `gorm:"size:10;not null;default:medium" json:"priority"`
	DueDate        *time.Time        `json:"due_date"`
	EstimatedHours *float64          `json:"estimated_hours"`
	GoalID         uint              `gorm:"not null;index" json:"goal_id"`
	CreatedByID    uint              `gorm:"not null" json:"created_by_id"`
	AssignedToID   *uint             `json:"assigned_to_id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Goal        goal.Goal        `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"goal,omitempty"`
	CreatedBy   user.User        `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	AssignedTo  *user.User       `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}

// TaskAssignment links a task to one assigned user. Rows exist only as a side
// effect of task create/update operations; callers never touch them directly.
type TaskAssignment struct {
	TaskID     uint      `gorm:"primaryKey" json:"task_id"`
	UserID     uint      `gorm:"primaryKey" json:"user_id"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`

	User user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName returns the table name for the TaskAssignment entity.
func (TaskAssignment) TableName() string {
	return "task_assignees"
}
