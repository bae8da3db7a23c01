package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferService manages ok-for-launch and validation-for-offer sheets.
// Both own their checkin: creating a sheet creates its checkin, deleting
// it deletes the checkin too.
type OfferService struct {
	offerRepo *repository.OfferRepository
	db        *gorm.DB
}

func NewOfferService(offerRepo *repository.OfferRepository, db *gorm.DB) *OfferService {
	return &OfferService{offerRepo: offerRepo, db: db}
}

// OkForLaunchInput carries the sheet fields plus the embedded checkin
// payload.
type OkForLaunchInput struct {
	Check    bool         `json:"check"`
	Date     *time.Time   `json:"date"`
	Comments string       `json:"comments"`
	Checkin  CheckinInput `json:"checkin"`
}

func (s *OfferService) CreateOkForLaunch(ctx context.Context, input OkForLaunchInput) (*entity.OkForLaunch, error) {
	if err := input.Checkin.validate(); err != nil {
		return nil, err
	}

	ofl := &entity.OkForLaunch{
		ID:       uuid.New().String(),
		Check:    input.Check,
		Date:     input.Date,
		Comments: input.Comments,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checkin := &entity.Checkin{ID: uuid.New().String()}
		input.Checkin.apply(checkin)
		if err := tx.Create(checkin).Error; err != nil {
			return fmt.Errorf("create checkin: %w", err)
		}
		ofl.CheckinID = &checkin.ID
		return tx.Create(ofl).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create ok-for-launch: %w", err)
	}
	return s.offerRepo.FindOkForLaunch(ctx, ofl.ID)
}

func (s *OfferService) GetOkForLaunch(ctx context.Context, id string) (*entity.OkForLaunch, error) {
	return s.offerRepo.FindOkForLaunch(ctx, id)
}

func (s *OfferService) ListOkForLaunch(ctx context.Context, page, pageSize int) ([]entity.OkForLaunch, int64, error) {
	return s.offerRepo.ListOkForLaunch(ctx, page, pageSize)
}

func (s *OfferService) UpdateOkForLaunch(ctx context.Context, id string, input OkForLaunchInput) (*entity.OkForLaunch, error) {
	if err := input.Checkin.validate(); err != nil {
		return nil, err
	}

	ofl, err := s.offerRepo.FindOkForLaunch(ctx, id)
	if err != nil {
		return nil, err
	}

	ofl.Check = input.Check
	ofl.Date = input.Date
	ofl.Comments = input.Comments

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ofl.Checkin != nil {
			input.Checkin.apply(ofl.Checkin)
			if err := tx.Save(ofl.Checkin).Error; err != nil {
				return fmt.Errorf("update checkin: %w", err)
			}
		}
		ofl.Checkin = nil
		return tx.Save(ofl).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update ok-for-launch: %w", err)
	}
	return s.offerRepo.FindOkForLaunch(ctx, id)
}

// SetOkForLaunchUpload records the stored object key of the release
// document.
func (s *OfferService) SetOkForLaunchUpload(ctx context.Context, id, path string) error {
	if _, err := s.offerRepo.FindOkForLaunch(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&entity.OkForLaunch{}).
		Where("id = ?", id).Update("upload_path", path).Error
}

func (s *OfferService) DeleteOkForLaunch(ctx context.Context, id string) error {
	ofl, err := s.offerRepo.FindOkForLaunch(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&entity.OkForLaunch{}).Error; err != nil {
			return err
		}
		if ofl.CheckinID != nil {
			return tx.Where("id = ?", *ofl.CheckinID).Delete(&entity.Checkin{}).Error
		}
		return nil
	})
}

// ValidationForOfferInput carries the sheet fields plus the embedded
// checkin payload.
type ValidationForOfferInput struct {
	Name     string       `json:"name"`
	Check    bool         `json:"check"`
	Date     *time.Time   `json:"date"`
	Comments string       `json:"comments"`
	Checkin  CheckinInput `json:"checkin"`
}

func (s *OfferService) CreateValidationForOffer(ctx context.Context, input ValidationForOfferInput) (*entity.ValidationForOffer, error) {
	if err := input.Checkin.validate(); err != nil {
		return nil, err
	}

	vfo := &entity.ValidationForOffer{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Check:    input.Check,
		Date:     input.Date,
		Comments: input.Comments,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checkin := &entity.Checkin{ID: uuid.New().String()}
		input.Checkin.apply(checkin)
		if err := tx.Create(checkin).Error; err != nil {
			return fmt.Errorf("create checkin: %w", err)
		}
		vfo.CheckinID = &checkin.ID
		return tx.Create(vfo).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create validation-for-offer: %w", err)
	}
	return s.offerRepo.FindValidationForOffer(ctx, vfo.ID)
}

func (s *OfferService) GetValidationForOffer(ctx context.Context, id string) (*entity.ValidationForOffer, error) {
	return s.offerRepo.FindValidationForOffer(ctx, id)
}

func (s *OfferService) ListValidationForOffer(ctx context.Context, page, pageSize int) ([]entity.ValidationForOffer, int64, error) {
	return s.offerRepo.ListValidationForOffer(ctx, page, pageSize)
}

func (s *OfferService) UpdateValidationForOffer(ctx context.Context, id string, input ValidationForOfferInput) (*entity.ValidationForOffer, error) {
	if err := input.Checkin.validate(); err != nil {
		return nil, err
	}

	vfo, err := s.offerRepo.FindValidationForOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	vfo.Name = input.Name
	vfo.Check = input.Check
	vfo.Date = input.Date
	vfo.Comments = input.Comments

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if vfo.Checkin != nil {
			input.Checkin.apply(vfo.Checkin)
			if err := tx.Save(vfo.Checkin).Error; err != nil {
				return fmt.Errorf("update checkin: %w", err)
			}
		}
		vfo.Checkin = nil
		return tx.Save(vfo).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update validation-for-offer: %w", err)
	}
	return s.offerRepo.FindValidationForOffer(ctx, id)
}

func (s *OfferService) SetValidationForOfferUpload(ctx context.Context, id, path string) error {
	if _, err := s.offerRepo.FindValidationForOffer(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&entity.ValidationForOffer{}).
		Where("id = ?", id).Update("upload_path", path).Error
}

func (s *OfferService) DeleteValidationForOffer(ctx context.Context, id string) error {
	vfo, err := s.offerRepo.FindValidationForOffer(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&entity.ValidationForOffer{}).Error; err != nil {
			return err
		}
		if vfo.CheckinID != nil {
			return tx.Where("id = ?", *vfo.CheckinID).Delete(&entity.Checkin{}).Error
		}
		return nil
	})
}
