package repository

import (
	"context"
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// FeasibilityRepository persists feasibility studies and their detail rows.
type FeasibilityRepository struct {
	db *gorm.DB
}

func NewFeasibilityRepository(db *gorm.DB) *FeasibilityRepository {
	return &FeasibilityRepository{db: db}
}

func (r *FeasibilityRepository) FindByID(ctx context.Context, id string) (*entity.Feasibility, error) {
	var feasibility entity.Feasibility
	err := r.db.WithContext(ctx).
		Preload("Checkin").
		Where("id = ?", id).
		First(&feasibility).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &feasibility, nil
}

func (r *FeasibilityRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Feasibility, int64, error) {
	var items []entity.Feasibility
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Feasibility{})
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

// FindDetails loads the detail rows of one study.
func (r *FeasibilityRepository) FindDetails(ctx context.Context, feasibilityID string) ([]entity.FeasibilityDetail, error) {
	var details []entity.FeasibilityDetail
	err := r.db.WithContext(ctx).
		Where("feasibility_id = ?", feasibilityID).
		Find(&details).Error
	return details, err
}

func (r *FeasibilityRepository) UpdateDetail(ctx context.Context, detail *entity.FeasibilityDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}
