package repository

import (
	"context"
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// StageRepository persists workflow stages and their check rows.
type StageRepository struct {
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// FindByID loads a stage with its checks and side records, ordered by the
// declared field order.
func (r *StageRepository) FindByID(ctx context.Context, kind, id string) (*entity.Stage, error) {
	var stage entity.Stage
	err := r.db.WithContext(ctx).
		Preload("Checks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Checks.Task").
		Preload("Checks.Validation").
		Where("id = ? AND kind = ?", id, kind).
		First(&stage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &stage, nil
}

// FindAll lists stages of one kind with checks preloaded.
func (r *StageRepository) FindAll(ctx context.Context, kind string, page, pageSize int) ([]entity.Stage, int64, error) {
	var items []entity.Stage
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Stage{}).Where("kind = ?", kind)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Checks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Checks.Task").
		Preload("Checks.Validation").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}
