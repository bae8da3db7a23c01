package entity

import (
	"time"
)

// MassProduction statuses
const (
	MassProductionStatusOnGoing   = "on-going"
	MassProductionStatusStandBy   = "stand-by"
	MassProductionStatusClosed    = "closed"
	MassProductionStatusCancelled = "cancelled"
)

// MassProduction is the umbrella record tying one project to one instance
// of each workflow stage plus its feasibility study and readiness sheet.
type MassProduction struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Name        string `json:"name" gorm:"size:200;not null"`
	Reference   string `json:"reference" gorm:"size:100;index"`
	Designation string `json:"designation" gorm:"size:255"`
	Customer    string `json:"customer" gorm:"size:200"`
	Status      string `json:"status" gorm:"size:20;not null;default:on-going"`

	FeasibilityID                *string `json:"feasibility_id" gorm:"size:36"`
	KickOffID                    *string `json:"kick_off_id" gorm:"size:36"`
	DesignID                     *string `json:"design_id" gorm:"size:36"`
	FacilitiesID                 *string `json:"facilities_id" gorm:"size:36"`
	PPTuningID                   *string `json:"p_p_tuning_id" gorm:"column:p_p_tuning_id;size:36"`
	ProcessQualifID              *string `json:"process_qualif_id" gorm:"size:36"`
	QualificationConfirmationID  *string `json:"qualification_confirmation_id" gorm:"size:36"`
	ReadinessID                  *string `json:"readiness_id" gorm:"size:36"`
	CheckinID                    *string `json:"checkin_id" gorm:"size:36"`

	PPAPSubmissionDate *time.Time `json:"ppap_submission_date"`
	// Derived from PPAPSubmissionDate after each load; not stored.
	DaysUntilPPAPSubmission *int `json:"days_until_ppap_submission" gorm:"-"`

	CreatedBy string    `json:"created_by" gorm:"size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Feasibility *Feasibility `json:"feasibility,omitempty" gorm:"foreignKey:FeasibilityID"`
	Readiness   *Readiness   `json:"readiness,omitempty" gorm:"foreignKey:ReadinessID"`
	Checkin     *Checkin     `json:"checkin,omitempty" gorm:"foreignKey:CheckinID"`
}

func (MassProduction) TableName() string {
	return "mass_productions"
}

// ComputeDaysUntilPPAP refreshes the derived countdown against now.
func (m *MassProduction) ComputeDaysUntilPPAP(now time.Time) {
	if m.PPAPSubmissionDate == nil {
		m.DaysUntilPPAPSubmission = nil
		return
	}
	days := int(m.PPAPSubmissionDate.Sub(now).Hours() / 24)
	m.DaysUntilPPAPSubmission = &days
}
