package entity

import (
	"time"
)

// User roles
const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleQuality        = "quality"
	RoleLogistics      = "logistics"
	RoleProduction     = "production"
	RoleViewer         = "viewer"
)

// User is an operator of the tracking backend. License is the badge
// number carried in the JWT.
type User struct {
	ID           string      `json:"id" gorm:"primaryKey;size:36"`
	License      string      `json:"license" gorm:"size:50;uniqueIndex;not null"`
	Username     string      `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email        string      `json:"email" gorm:"size:200;uniqueIndex"`
	PasswordHash string      `json:"-" gorm:"size:100;not null"`
	Roles        StringArray `json:"roles" gorm:"type:jsonb"`
	Status       string      `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
