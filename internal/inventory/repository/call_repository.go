package repository

import (
	"context"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"gorm.io/gorm"
)

// CallRepository persists material call-offs.
type CallRepository struct {
	db *gorm.DB
}

func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

func (r *CallRepository) FindByID(ctx context.Context, id string) (*entity.Call, error) {
	var call entity.Call
	err := r.db.WithContext(ctx).
		Preload("Machine").
		Preload("Material").
		Where("id = ?", id).
		First(&call).Error
	if err != nil {
		return nil, translate(err)
	}
	return &call, nil
}

func (r *CallRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.Call, int64, error) {
	var items []entity.Call
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Call{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Machine").
		Preload("Material").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindAllForExport loads every call matching the status filter, unpaged.
func (r *CallRepository) FindAllForExport(ctx context.Context, status string) ([]entity.Call, error) {
	var items []entity.Call

	query := r.db.WithContext(ctx).Model(&entity.Call{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.
		Preload("Machine").
		Preload("Material").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *CallRepository) Create(ctx context.Context, call *entity.Call) error {
	return r.db.WithContext(ctx).Create(call).Error
}

func (r *CallRepository) Update(ctx context.Context, call *entity.Call) error {
	return r.db.WithContext(ctx).Save(call).Error
}

func (r *CallRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Call{}).Error
}

// ExpirePending flips every pending call whose window has elapsed to
// Expirada and returns the number of rows changed. The cutoff predicate
// runs in SQL so the sweep stays a single statement.
func (r *CallRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Call{}).
		Where("status = ?", entity.CallStatusPendiente).
		Where("created_at + (duration * interval '1 minute') <= ?", now).
		Updates(map[string]interface{}{
			"status":     entity.CallStatusExpirada,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
