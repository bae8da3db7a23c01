package repository

import (
	"context"
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// ReadinessRepository persists readiness aggregates.
type ReadinessRepository struct {
	db *gorm.DB
}

func NewReadinessRepository(db *gorm.DB) *ReadinessRepository {
	return &ReadinessRepository{db: db}
}

func (r *ReadinessRepository) FindByID(ctx context.Context, id string) (*entity.Readiness, error) {
	var readiness entity.Readiness
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&readiness).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &readiness, nil
}

func (r *ReadinessRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Readiness, int64, error) {
	var items []entity.Readiness
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Readiness{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *ReadinessRepository) Update(ctx context.Context, readiness *entity.Readiness) error {
	return r.db.WithContext(ctx).Save(readiness).Error
}
