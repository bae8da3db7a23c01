package entity

import (
	"time"
)

// Readiness aggregates the discipline checklists of one launch. Creating
// a readiness record instantiates an empty stage for every discipline in
// ReadinessKinds.
type Readiness struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Project   string    `json:"project" gorm:"size:200"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MaintenanceID              *string `json:"maintenance_id" gorm:"size:36"`
	PackagingID                *string `json:"packaging_id" gorm:"size:36"`
	SafetyID                   *string `json:"safety_id" gorm:"size:36"`
	TrainingID                 *string `json:"training_id" gorm:"size:36"`
	SuppID                     *string `json:"supp_id" gorm:"size:36"`
	ToolingStatusID            *string `json:"tooling_status_id" gorm:"size:36"`
	ProductProcessID           *string `json:"product_process_id" gorm:"size:36"`
	ProcessStatusIndustrialsID *string `json:"process_status_industrials_id" gorm:"size:36"`
	RunAtRateProductionID      *string `json:"run_at_rate_production_id" gorm:"size:36"`
	DocumentationID            *string `json:"documentation_id" gorm:"size:36"`
	LogisticsID                *string `json:"logistics_id" gorm:"size:36"`
}

func (Readiness) TableName() string {
	return "readinesses"
}

// StageRefs maps discipline kind to its reference slot, in ReadinessKinds
// order.
func (r *Readiness) StageRefs() map[string]**string {
	return map[string]**string{
		KindMaintenance:              &r.MaintenanceID,
		KindPackaging:                &r.PackagingID,
		KindSafety:                   &r.SafetyID,
		KindTraining:                 &r.TrainingID,
		KindSupp:                     &r.SuppID,
		KindToolingStatus:            &r.ToolingStatusID,
		KindProductProcess:           &r.ProductProcessID,
		KindProcessStatusIndustrials: &r.ProcessStatusIndustrialsID,
		KindRunAtRateProduction:      &r.RunAtRateProductionID,
		KindDocumentation:            &r.DocumentationID,
		KindLogistics:                &r.LogisticsID,
	}
}
