package entity

import (
	"time"
)

// Validation verdicts
const (
	ValidationOK  = "OK"
	ValidationNOK = "NOK"
)

// Validation is the side record of a validation-kind checklist field
// (readiness disciplines). Same ownership rule as Task.
type Validation struct {
	ID              string     `json:"id" gorm:"primaryKey;size:36"`
	TKO             bool       `json:"tko" gorm:"column:tko;not null;default:false"`
	OT              bool       `json:"ot" gorm:"column:ot;not null;default:false"`
	OTOP            bool       `json:"ot_op" gorm:"column:ot_op;not null;default:false"`
	IS              bool       `json:"is" gorm:"column:is;not null;default:false"`
	SOP             bool       `json:"sop" gorm:"column:sop;not null;default:false"`
	OkNok           string     `json:"ok_nok" gorm:"size:10"`
	Who             string     `json:"who" gorm:"size:100"`
	When            *time.Time `json:"when"`
	ValidationCheck bool       `json:"validation_check" gorm:"not null;default:false"`
	Comments        string     `json:"comments" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Validation) TableName() string {
	return "validations"
}
