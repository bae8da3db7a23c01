package entity

import (
	"time"
)

// Call statuses. Pendiente flips to Realizada by user action or to
// Expirada by the background sweep once the stored duration has elapsed.
const (
	CallStatusPendiente = "Pendiente"
	CallStatusRealizada = "Realizada"
	CallStatusExpirada  = "Expirada"
)

// Call is one material call-off logged against a machine.
type Call struct {
	ID         string  `json:"id" gorm:"primaryKey;size:36"`
	MachineID  *string `json:"machine_id" gorm:"size:36;index"`
	MaterialID *string `json:"material_id" gorm:"size:36;index"`
	Quantity   float64 `json:"quantity" gorm:"type:decimal(12,2);not null;default:0"`
	Status     string  `json:"status" gorm:"size:20;not null;default:Pendiente;index"`
	// Duration is the time window, in minutes, the call stays actionable.
	Duration    int        `json:"duration" gorm:"not null;default:0"`
	CompletedAt *time.Time `json:"completed_at"`
	CompletedBy string     `json:"completed_by" gorm:"size:36"`
	CreatedBy   string     `json:"created_by" gorm:"size:36"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Machine  *Machine  `json:"machine,omitempty" gorm:"foreignKey:MachineID"`
	Material *Material `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
}

func (Call) TableName() string {
	return "calls"
}

// ExpiresAt is the instant the call leaves its actionable window.
func (c *Call) ExpiresAt() time.Time {
	return c.CreatedAt.Add(time.Duration(c.Duration) * time.Minute)
}
