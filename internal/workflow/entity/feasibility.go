package entity

import (
	"time"
)

// FeasibilityFields is the single source for the study's boolean
// attributes. It drives the entity columns, the bulk-inserted detail rows
// and the GET-time reconstruction.
var FeasibilityFields = []string{
	"product",
	"raw_material_type",
	"raw_material_qty",
	"packaging",
	"purchased_part",
	"injection_cycle_time",
	"moulding_labor",
	"price_uom",
	"assembly_finishing_paint_cycle_time",
	"assembly_finishing_paint_labor",
	"ppm_level",
	"markup",
	"transportation_cost",
	"carrier",
	"validation_of_offer",
	"gauge_aids",
	"process_type",
	"production_site",
}

// Feasibility flattens its booleans directly onto the row, unlike the
// checklist stages. Cost detail lives in FeasibilityDetail rows keyed by
// attribute name.
type Feasibility struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CheckinID *string   `json:"checkin_id" gorm:"size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product                         bool `json:"product" gorm:"not null;default:false"`
	RawMaterialType                 bool `json:"raw_material_type" gorm:"not null;default:false"`
	RawMaterialQty                  bool `json:"raw_material_qty" gorm:"not null;default:false"`
	Packaging                       bool `json:"packaging" gorm:"not null;default:false"`
	PurchasedPart                   bool `json:"purchased_part" gorm:"not null;default:false"`
	InjectionCycleTime              bool `json:"injection_cycle_time" gorm:"not null;default:false"`
	MouldingLabor                   bool `json:"moulding_labor" gorm:"not null;default:false"`
	PriceUOM                        bool `json:"price_uom" gorm:"column:price_uom;not null;default:false"`
	AssemblyFinishingPaintCycleTime bool `json:"assembly_finishing_paint_cycle_time" gorm:"not null;default:false"`
	AssemblyFinishingPaintLabor     bool `json:"assembly_finishing_paint_labor" gorm:"not null;default:false"`
	PPMLevel                        bool `json:"ppm_level" gorm:"column:ppm_level;not null;default:false"`
	Markup                          bool `json:"markup" gorm:"not null;default:false"`
	TransportationCost              bool `json:"transportation_cost" gorm:"not null;default:false"`
	Carrier                         bool `json:"carrier" gorm:"not null;default:false"`
	ValidationOfOffer               bool `json:"validation_of_offer" gorm:"not null;default:false"`
	GaugeAids                       bool `json:"gauge_aids" gorm:"not null;default:false"`
	ProcessType                     bool `json:"process_type" gorm:"not null;default:false"`
	ProductionSite                  bool `json:"production_site" gorm:"not null;default:false"`

	Checkin *Checkin            `json:"checkin,omitempty" gorm:"foreignKey:CheckinID"`
	Details []FeasibilityDetail `json:"-" gorm:"foreignKey:FeasibilityID"`
}

func (Feasibility) TableName() string {
	return "feasibilities"
}

// Flags maps attribute name to the flattened boolean, in
// FeasibilityFields order.
func (f *Feasibility) Flags() map[string]*bool {
	return map[string]*bool{
		"product":                             &f.Product,
		"raw_material_type":                   &f.RawMaterialType,
		"raw_material_qty":                    &f.RawMaterialQty,
		"packaging":                           &f.Packaging,
		"purchased_part":                      &f.PurchasedPart,
		"injection_cycle_time":                &f.InjectionCycleTime,
		"moulding_labor":                      &f.MouldingLabor,
		"price_uom":                           &f.PriceUOM,
		"assembly_finishing_paint_cycle_time": &f.AssemblyFinishingPaintCycleTime,
		"assembly_finishing_paint_labor":      &f.AssemblyFinishingPaintLabor,
		"ppm_level":                           &f.PPMLevel,
		"markup":                              &f.Markup,
		"transportation_cost":                 &f.TransportationCost,
		"carrier":                             &f.Carrier,
		"validation_of_offer":                 &f.ValidationOfOffer,
		"gauge_aids":                          &f.GaugeAids,
		"process_type":                        &f.ProcessType,
		"production_site":                     &f.ProductionSite,
	}
}

// FeasibilityDetail carries the costing behind one boolean attribute.
// One row per attribute is bulk-inserted when the study is created.
type FeasibilityDetail struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	FeasibilityID string    `json:"feasibility_id" gorm:"size:36;not null;index"`
	AttributeName string    `json:"attribute_name" gorm:"size:80;not null"`
	Description   string    `json:"description" gorm:"size:255"`
	Cost          float64   `json:"cost" gorm:"type:decimal(12,2);not null;default:0"`
	SalesPrice    float64   `json:"sales_price" gorm:"type:decimal(12,2);not null;default:0"`
	Comments      string    `json:"comments" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (FeasibilityDetail) TableName() string {
	return "feasibility_details"
}
