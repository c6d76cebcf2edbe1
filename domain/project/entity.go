package project

import (
	"time"

	"github.com/laibaTLD/logic-camp/domain/user"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// Project is the top of the project → goal → task hierarchy.
type Project struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	Name        string                 `gorm:"size:200;not null" json:"name"`
	Description string                 `gorm:"type:text" json:"description"`
	Status      workflow.ProjectStatus `gorm:"size:20;not null;default:planning" json:"status"`
	TeamID      *uint                  `gorm:"index" json:"team_id"`
	OwnerID     uint                   `gorm:"not null;index" json:"owner_id"`
	StartDate   *time.Time             `json:"start_date"`
	EndDate     *time.Time             `json:"end_date"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`

	Owner user.User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// TableName returns the table name for the Project entity.
func (Project) TableName() string {
	return "projects"
}
