package repository

import (
	"context"
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// MassProductionRepository persists umbrella records.
type MassProductionRepository struct {
	db *gorm.DB
}

func NewMassProductionRepository(db *gorm.DB) *MassProductionRepository {
	return &MassProductionRepository{db: db}
}

func (r *MassProductionRepository) FindByID(ctx context.Context, id string) (*entity.MassProduction, error) {
	var mp entity.MassProduction
	err := r.db.WithContext(ctx).
		Preload("Feasibility").
		Preload("Readiness").
		Preload("Checkin").
		Where("id = ?", id).
		First(&mp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &mp, nil
}

func (r *MassProductionRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.MassProduction, int64, error) {
	var items []entity.MassProduction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MassProduction{})

	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ? OR reference ILIKE ? OR customer ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if customer := filters["customer"]; customer != "" {
		query = query.Where("customer = ?", customer)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filters["sort_by"]
	sortOrder := filters["sort_order"]
	order := "created_at DESC"
	switch sortBy {
	case "name", "reference", "customer", "status", "ppap_submission_date":
		if sortOrder == "asc" {
			order = sortBy + " ASC"
		} else {
			order = sortBy + " DESC"
		}
	}

	offset := (page - 1) * pageSize
	err := query.
		Order(order).
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *MassProductionRepository) Create(ctx context.Context, mp *entity.MassProduction) error {
	return r.db.WithContext(ctx).Create(mp).Error
}

func (r *MassProductionRepository) Update(ctx context.Context, mp *entity.MassProduction) error {
	return r.db.WithContext(ctx).Save(mp).Error
}

func (r *MassProductionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MassProduction{}).Error
}
