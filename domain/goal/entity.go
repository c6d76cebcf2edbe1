package goal

import (
	"time"

	"github.com/laibaTLD/logic-camp/domain/project"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// Goal groups tasks under a project. ProjectID is set at creation and never
// changed by updates; moving a goal means deleting and recreating it.
// Deleting a goal cascades to its tasks.
type Goal struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Status      workflow.Status `gorm:"size:20;not null;default:todo" json:"status"`
	Deadline    *time.Time      `json:"deadline"`
	ProjectID   uint            `gorm:"not null;index" json:"project_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Project project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName returns the table name for the Goal entity.
func (Goal) TableName() string {
	return "goals"
}
