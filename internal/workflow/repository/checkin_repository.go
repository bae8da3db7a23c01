package repository

import (
	"context"
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// CheckinRepository persists role sign-off sheets.
type CheckinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

func (r *CheckinRepository) FindByID(ctx context.Context, id string) (*entity.Checkin, error) {
	var checkin entity.Checkin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&checkin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &checkin, nil
}

func (r *CheckinRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Checkin, int64, error) {
	var items []entity.Checkin
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Checkin{})
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

func (r *CheckinRepository) Create(ctx context.Context, checkin *entity.Checkin) error {
	return r.db.WithContext(ctx).Create(checkin).Error
}

func (r *CheckinRepository) Update(ctx context.Context, checkin *entity.Checkin) error {
	return r.db.WithContext(ctx).Save(checkin).Error
}

func (r *CheckinRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Checkin{}).Error
}
