package entity

import (
	"time"
)

// Side record kinds
const (
	SideKindTask       = "task"
	SideKindValidation = "validation"
)

// Stage is one workflow-stage record (kick-off, design, a readiness
// discipline, ...). The named checklist fields of a stage live in
// StageCheck rows, one per declared field, driven by the definition
// registry in definitions.go.
type Stage struct {
	ID               string    `json:"id" gorm:"primaryKey;size:36"`
	Kind             string    `json:"kind" gorm:"size:50;not null;index"`
	MassProductionID *string   `json:"mass_production_id,omitempty" gorm:"size:36;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Checks []StageCheck `json:"checks,omitempty" gorm:"foreignKey:StageID"`
}

func (Stage) TableName() string {
	return "stages"
}

// StageCheck is one named checklist field of a stage. Value defaults to
// false and is independent of whether a side record exists. At most one
// of TaskID/ValidationID is set, per the stage kind's side-record type.
type StageCheck struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	StageID      string    `json:"stage_id" gorm:"size:36;not null;index"`
	Name         string    `json:"name" gorm:"size:80;not null"`
	Value        bool      `json:"value" gorm:"not null;default:false"`
	SortOrder    int       `json:"sort_order" gorm:"not null;default:0"`
	TaskID       *string   `json:"task_id,omitempty" gorm:"size:36"`
	ValidationID *string   `json:"validation_id,omitempty" gorm:"size:36"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Task       *Task       `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	Validation *Validation `json:"validation,omitempty" gorm:"foreignKey:ValidationID"`
}

func (StageCheck) TableName() string {
	return "stage_checks"
}

// SideRecordID returns whichever side-record reference is set.
func (c *StageCheck) SideRecordID() *string {
	if c.TaskID != nil {
		return c.TaskID
	}
	return c.ValidationID
}
