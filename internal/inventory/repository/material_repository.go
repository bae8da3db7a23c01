package repository

import (
	"context"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"gorm.io/gorm"
)

// MaterialRepository persists materials and their audit history.
type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Location").
		Preload("Category").
		Where("id = ?", id).
		First(&material).Error
	if err != nil {
		return nil, translate(err)
	}
	return &material, nil
}

// FindByIDWithHistory additionally loads the audit trail, newest first.
func (r *MaterialRepository) FindByIDWithHistory(ctx context.Context, id string) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Location").
		Preload("Category").
		Preload("Histories", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("ReferenceHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&material).Error
	if err != nil {
		return nil, translate(err)
	}
	return &material, nil
}

// materialSortColumns whitelists the sortable list columns.
var materialSortColumns = map[string]string{
	"reference":     "reference",
	"description":   "description",
	"manufacturer":  "manufacturer",
	"current_stock": "current_stock",
	"minimum_stock": "minimum_stock",
	"price":         "price",
	"created_at":    "created_at",
}

func (r *MaterialRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Material, int64, error) {
	var items []entity.Material
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Material{})

	if search := filters["search"]; search != "" {
		query = query.Where("reference ILIKE ? OR description ILIKE ? OR manufacturer ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if categoryID := filters["category_id"]; categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if critical := filters["critical"]; critical != "" {
		query = query.Where("critical = ?", critical == "true")
	}
	if lowStock := filters["low_stock"]; lowStock == "true" {
		query = query.Where("current_stock < minimum_stock")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Supplier").
		Preload("Location").
		Preload("Category").
		Order(orderClause(materialSortColumns, filters["sort_by"], filters["sort_order"], "reference ASC")).
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *MaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *MaterialRepository) Update(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Material{}).Error
}

func (r *MaterialRepository) AppendHistory(ctx context.Context, history *entity.MaterialHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *MaterialRepository) AppendReferenceHistory(ctx context.Context, history *entity.ReferenceHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}
