package entity

import (
	"time"
)

// Machine is a production machine allocations are booked against.
type Machine struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Machine) TableName() string {
	return "machines"
}

// MachineMaterial is one allocation ledger row: how much of a material's
// stock is currently booked to a machine. Every change appends a
// MachineMaterialHistory entry.
type MachineMaterial struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	MachineID      string    `json:"machine_id" gorm:"size:36;not null;index:idx_machine_material,unique"`
	MaterialID     string    `json:"material_id" gorm:"size:36;not null;index:idx_machine_material,unique"`
	AllocatedStock float64   `json:"allocated_stock" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Machine  *Machine  `json:"machine,omitempty" gorm:"foreignKey:MachineID"`
	Material *Material `json:"material,omitempty" gorm:"foreignKey:MaterialID"`

	History []MachineMaterialHistory `json:"history,omitempty" gorm:"foreignKey:MachineMaterialID"`
}

func (MachineMaterial) TableName() string {
	return "machine_materials"
}

// MachineMaterialHistory is one entry of an allocation's audit trail.
type MachineMaterialHistory struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	MachineMaterialID string    `json:"machine_material_id" gorm:"size:36;not null;index"`
	PreviousStock     float64   `json:"previous_stock" gorm:"type:decimal(12,2);not null"`
	NewStock          float64   `json:"new_stock" gorm:"type:decimal(12,2);not null"`
	ChangedBy         string    `json:"changed_by" gorm:"size:36"`
	Comment           string    `json:"comment" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
}

func (MachineMaterialHistory) TableName() string {
	return "machine_material_histories"
}
