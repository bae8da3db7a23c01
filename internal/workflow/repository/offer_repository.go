package repository

import (
	"context"
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// OfferRepository persists ok-for-launch and validation-for-offer sheets.
type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) FindOkForLaunch(ctx context.Context, id string) (*entity.OkForLaunch, error) {
	var ofl entity.OkForLaunch
	err := r.db.WithContext(ctx).Preload("Checkin").Where("id = ?", id).First(&ofl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ofl, nil
}

func (r *OfferRepository) ListOkForLaunch(ctx context.Context, page, pageSize int) ([]entity.OkForLaunch, int64, error) {
	var items []entity.OkForLaunch
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.OkForLaunch{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *OfferRepository) SaveOkForLaunch(ctx context.Context, ofl *entity.OkForLaunch) error {
	return r.db.WithContext(ctx).Save(ofl).Error
}

func (r *OfferRepository) DeleteOkForLaunch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.OkForLaunch{}).Error
}

func (r *OfferRepository) FindValidationForOffer(ctx context.Context, id string) (*entity.ValidationForOffer, error) {
	var vfo entity.ValidationForOffer
	err := r.db.WithContext(ctx).Preload("Checkin").Where("id = ?", id).First(&vfo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vfo, nil
}

func (r *OfferRepository) ListValidationForOffer(ctx context.Context, page, pageSize int) ([]entity.ValidationForOffer, int64, error) {
	var items []entity.ValidationForOffer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ValidationForOffer{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *OfferRepository) SaveValidationForOffer(ctx context.Context, vfo *entity.ValidationForOffer) error {
	return r.db.WithContext(ctx).Save(vfo).Error
}

func (r *OfferRepository) DeleteValidationForOffer(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ValidationForOffer{}).Error
}
