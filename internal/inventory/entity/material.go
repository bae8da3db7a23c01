package entity

import (
	"time"
)

// Material is one inventory item. CurrentStock is the unallocated pool;
// stock handed to machines is tracked in MachineMaterial rows so that
// allocated + current always equals the original total.
type Material struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	Reference   string  `json:"reference" gorm:"size:100;not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	Manufacturer string `json:"manufacturer" gorm:"size:200"`

	SupplierID *string `json:"supplier_id" gorm:"size:36;index"`
	LocationID *string `json:"location_id" gorm:"size:36"`
	CategoryID *string `json:"category_id" gorm:"size:36"`

	CurrentStock float64 `json:"current_stock" gorm:"type:decimal(12,2);not null;default:0"`
	MinimumStock float64 `json:"minimum_stock" gorm:"type:decimal(12,2);not null;default:0"`
	OrderLot     float64 `json:"order_lot" gorm:"type:decimal(12,2);not null;default:0"`
	Price        float64 `json:"price" gorm:"type:decimal(12,4);not null;default:0"`
	Critical     bool    `json:"critical" gorm:"not null;default:false"`
	Consumable   bool    `json:"consumable" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	Histories          []MaterialHistory  `json:"histories,omitempty" gorm:"foreignKey:MaterialID"`
	ReferenceHistories []ReferenceHistory `json:"reference_histories,omitempty" gorm:"foreignKey:MaterialID"`
}

func (Material) TableName() string {
	return "materials"
}

// MaterialHistory is the append-only audit log of a material.
type MaterialHistory struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	MaterialID string    `json:"material_id" gorm:"size:36;not null;index"`
	Action     string    `json:"action" gorm:"size:50;not null"`
	Detail     string    `json:"detail" gorm:"type:text"`
	ChangedBy  string    `json:"changed_by" gorm:"size:36"`
	CreatedAt  time.Time `json:"created_at"`
}

func (MaterialHistory) TableName() string {
	return "material_histories"
}

// ReferenceHistory records a reference rename; append-only.
type ReferenceHistory struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	MaterialID   string    `json:"material_id" gorm:"size:36;not null;index"`
	OldReference string    `json:"old_reference" gorm:"size:100;not null"`
	NewReference string    `json:"new_reference" gorm:"size:100;not null"`
	ChangedBy    string    `json:"changed_by" gorm:"size:36"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ReferenceHistory) TableName() string {
	return "reference_histories"
}
