package entity

import (
	"time"

	"gorm.io/gorm"
)

// Pedido is a purchase order. Unit price, provider fields, total amount
// and the expected receiving date derive from the linked material and the
// acceptance date on every save.
type Pedido struct {
	ID   string `json:"id" gorm:"primaryKey;size:36"`
	Tipo string `json:"tipo" gorm:"size:50"`

	ReferenciaID  *string `json:"referencia_id" gorm:"size:36;index"`
	SolicitanteID *string `json:"solicitante_id" gorm:"size:36"`
	TableStatusID *string `json:"table_status_id" gorm:"size:36"`

	Descripcion          string  `json:"descripcion" gorm:"type:text"`
	Proveedor            string  `json:"proveedor" gorm:"size:200"`
	DescripcionProveedor string  `json:"descripcion_proveedor" gorm:"type:text"`
	Cantidad             float64 `json:"cantidad" gorm:"type:decimal(12,2);not null;default:0"`
	PrecioUnidad         float64 `json:"precio_unidad" gorm:"type:decimal(12,4);not null;default:0"`
	ImportePedido        float64 `json:"importe_pedido" gorm:"type:decimal(14,2);not null;default:0"`

	Aceptado      *time.Time `json:"aceptado"`
	Days          int        `json:"days" gorm:"not null;default:0"`
	DateReceiving *time.Time `json:"date_receiving"`
	Recibido      bool       `json:"recibido" gorm:"not null;default:false"`
	Comments      string     `json:"comments" gorm:"type:text"`

	CreatedBy string    `json:"created_by" gorm:"size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Referencia  *Material    `json:"referencia,omitempty" gorm:"foreignKey:ReferenciaID"`
	Solicitante *Solicitante `json:"solicitante,omitempty" gorm:"foreignKey:SolicitanteID"`
	TableStatus *TableStatus `json:"table_status,omitempty" gorm:"foreignKey:TableStatusID"`
}

func (Pedido) TableName() string {
	return "pedidos"
}

// ApplyMaterial copies provider data and the unit price from the linked
// material. An explicitly set PrecioUnidad wins over the material price.
func (p *Pedido) ApplyMaterial(m *Material) {
	if m == nil {
		return
	}
	if p.PrecioUnidad == 0 {
		p.PrecioUnidad = m.Price
	}
	if p.Descripcion == "" {
		p.Descripcion = m.Description
	}
	p.DescripcionProveedor = m.Description
	if m.Supplier != nil {
		p.Proveedor = m.Supplier.Name
	}
}

// ComputeDerived recomputes importe_pedido and date_receiving.
func (p *Pedido) ComputeDerived() {
	p.ImportePedido = p.Cantidad * p.PrecioUnidad
	if p.Aceptado != nil {
		d := p.Aceptado.AddDate(0, 0, p.Days)
		p.DateReceiving = &d
	} else {
		p.DateReceiving = nil
	}
}

// BeforeSave derives pricing from the linked material and recomputes the
// dependent fields.
func (p *Pedido) BeforeSave(tx *gorm.DB) error {
	if p.ReferenciaID != nil {
		var material Material
		if err := tx.Preload("Supplier").Where("id = ?", *p.ReferenciaID).First(&material).Error; err == nil {
			p.ApplyMaterial(&material)
		}
	}
	p.ComputeDerived()
	return nil
}
