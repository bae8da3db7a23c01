package entity

import (
	"time"
)

// Task roles
const (
	TaskRoleProjectManager = "project_manager"
	TaskRoleEngineering    = "engineering"
	TaskRoleQuality        = "quality"
	TaskRolePurchasing     = "purchasing"
	TaskRoleLogistics      = "logistics"
	TaskRoleMaintenance    = "maintenance"
)

// Task is the side record of a task-kind checklist field. It is owned by
// exactly one stage check and is created/deleted in lockstep with it.
type Task struct {
	ID            string      `json:"id" gorm:"primaryKey;size:36"`
	Check         bool        `json:"check" gorm:"not null;default:false"`
	Role          string      `json:"role" gorm:"size:50"`
	AssignedUsers StringArray `json:"assigned_users" gorm:"type:jsonb"`
	Planned       *time.Time  `json:"planned"`
	Done          *time.Time  `json:"done"`
	Comments      string      `json:"comments" gorm:"type:text"`
	FilePath      string      `json:"file_path" gorm:"size:500"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
