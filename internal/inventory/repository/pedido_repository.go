package repository

import (
	"context"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"gorm.io/gorm"
)

// PedidoRepository persists purchase orders.
type PedidoRepository struct {
	db *gorm.DB
}

func NewPedidoRepository(db *gorm.DB) *PedidoRepository {
	return &PedidoRepository{db: db}
}

func (r *PedidoRepository) FindByID(ctx context.Context, id string) (*entity.Pedido, error) {
	var pedido entity.Pedido
	err := r.db.WithContext(ctx).
		Preload("Referencia").
		Preload("Referencia.Supplier").
		Preload("Solicitante").
		Preload("TableStatus").
		Where("id = ?", id).
		First(&pedido).Error
	if err != nil {
		return nil, translate(err)
	}
	return &pedido, nil
}

// pedidoSortColumns whitelists the sortable list columns.
var pedidoSortColumns = map[string]string{
	"created_at":     "created_at",
	"tipo":           "tipo",
	"descripcion":    "descripcion",
	"proveedor":      "proveedor",
	"cantidad":       "cantidad",
	"importe_pedido": "importe_pedido",
	"date_receiving": "date_receiving",
}

func (r *PedidoRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Pedido, int64, error) {
	var items []entity.Pedido
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Pedido{})

	if search := filters["search"]; search != "" {
		query = query.Where("descripcion ILIKE ? OR proveedor ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if tipo := filters["tipo"]; tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	if statusID := filters["table_status_id"]; statusID != "" {
		query = query.Where("table_status_id = ?", statusID)
	}
	if recibido := filters["recibido"]; recibido != "" {
		query = query.Where("recibido = ?", recibido == "true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Referencia").
		Preload("Solicitante").
		Preload("TableStatus").
		Order(orderClause(pedidoSortColumns, filters["sort_by"], filters["sort_order"], "created_at DESC")).
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindAllForExport loads every pedido matching the filters, unpaged.
func (r *PedidoRepository) FindAllForExport(ctx context.Context, filters map[string]string) ([]entity.Pedido, error) {
	var items []entity.Pedido

	query := r.db.WithContext(ctx).Model(&entity.Pedido{})
	if tipo := filters["tipo"]; tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	if recibido := filters["recibido"]; recibido != "" {
		query = query.Where("recibido = ?", recibido == "true")
	}

	err := query.
		Preload("Referencia").
		Preload("Solicitante").
		Preload("TableStatus").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *PedidoRepository) Create(ctx context.Context, pedido *entity.Pedido) error {
	return r.db.WithContext(ctx).Create(pedido).Error
}

func (r *PedidoRepository) Update(ctx context.Context, pedido *entity.Pedido) error {
	return r.db.WithContext(ctx).Save(pedido).Error
}

func (r *PedidoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Pedido{}).Error
}
