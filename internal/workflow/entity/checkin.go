package entity

import (
	"time"
)

// RoleApproval is one role's sign-off slot on a checkin, embedded with a
// per-role column prefix.
type RoleApproval struct {
	Value   bool       `json:"value" gorm:"not null;default:false"`
	Comment string     `json:"comment" gorm:"type:text"`
	Date    *time.Time `json:"date"`
	Name    string     `json:"name" gorm:"size:100"`
}

// CheckinRoles is the fixed set of sign-off roles, in display order.
var CheckinRoles = []string{
	"project_manager",
	"business_manager",
	"engineering_leader_manager",
	"quality_leader",
	"plant_quality_leader",
	"industrial_engineering",
	"launch_manager_method",
	"maintenance",
	"purchasing",
	"logistics",
	"sales",
	"economic_financial_leader",
}

// Checkin is the role sign-off sheet referenced by feasibility,
// ok-for-launch and validation-for-offer records.
type Checkin struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectManager           RoleApproval `json:"project_manager" gorm:"embedded;embeddedPrefix:project_manager_"`
	BusinessManager          RoleApproval `json:"business_manager" gorm:"embedded;embeddedPrefix:business_manager_"`
	EngineeringLeaderManager RoleApproval `json:"engineering_leader_manager" gorm:"embedded;embeddedPrefix:engineering_leader_manager_"`
	QualityLeader            RoleApproval `json:"quality_leader" gorm:"embedded;embeddedPrefix:quality_leader_"`
	PlantQualityLeader       RoleApproval `json:"plant_quality_leader" gorm:"embedded;embeddedPrefix:plant_quality_leader_"`
	IndustrialEngineering    RoleApproval `json:"industrial_engineering" gorm:"embedded;embeddedPrefix:industrial_engineering_"`
	LaunchManagerMethod      RoleApproval `json:"launch_manager_method" gorm:"embedded;embeddedPrefix:launch_manager_method_"`
	Maintenance              RoleApproval `json:"maintenance" gorm:"embedded;embeddedPrefix:maintenance_"`
	Purchasing               RoleApproval `json:"purchasing" gorm:"embedded;embeddedPrefix:purchasing_"`
	Logistics                RoleApproval `json:"logistics" gorm:"embedded;embeddedPrefix:logistics_"`
	Sales                    RoleApproval `json:"sales" gorm:"embedded;embeddedPrefix:sales_"`
	EconomicFinancialLeader  RoleApproval `json:"economic_financial_leader" gorm:"embedded;embeddedPrefix:economic_financial_leader_"`
}

func (Checkin) TableName() string {
	return "checkins"
}

// Approvals maps role name to its approval slot, in CheckinRoles order.
func (c *Checkin) Approvals() map[string]*RoleApproval {
	return map[string]*RoleApproval{
		"project_manager":            &c.ProjectManager,
		"business_manager":           &c.BusinessManager,
		"engineering_leader_manager": &c.EngineeringLeaderManager,
		"quality_leader":             &c.QualityLeader,
		"plant_quality_leader":       &c.PlantQualityLeader,
		"industrial_engineering":     &c.IndustrialEngineering,
		"launch_manager_method":      &c.LaunchManagerMethod,
		"maintenance":                &c.Maintenance,
		"purchasing":                 &c.Purchasing,
		"logistics":                  &c.Logistics,
		"sales":                      &c.Sales,
		"economic_financial_leader":  &c.EconomicFinancialLeader,
	}
}
