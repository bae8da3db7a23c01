package service

import (
	"context"
	"fmt"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate is the row lock the allocation and stock paths take before
// mutating a material's pool.
func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// MaterialService manages inventory items and their audit trail.
type MaterialService struct {
	materialRepo *repository.MaterialRepository
	db           *gorm.DB
}

func NewMaterialService(materialRepo *repository.MaterialRepository, db *gorm.DB) *MaterialService {
	return &MaterialService{materialRepo: materialRepo, db: db}
}

// MaterialInput carries the writable material columns.
type MaterialInput struct {
	Reference    string  `json:"reference" binding:"required"`
	Description  string  `json:"description"`
	Manufacturer string  `json:"manufacturer"`
	SupplierID   *string `json:"supplier_id"`
	LocationID   *string `json:"location_id"`
	CategoryID   *string `json:"category_id"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	OrderLot     float64 `json:"order_lot"`
	Price        float64 `json:"price"`
	Critical     bool    `json:"critical"`
	Consumable   bool    `json:"consumable"`
}

func (s *MaterialService) Create(ctx context.Context, input MaterialInput, changedBy string) (*entity.Material, error) {
	material := &entity.Material{
		ID:           uuid.New().String(),
		Reference:    input.Reference,
		Description:  input.Description,
		Manufacturer: input.Manufacturer,
		SupplierID:   input.SupplierID,
		LocationID:   input.LocationID,
		CategoryID:   input.CategoryID,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		OrderLot:     input.OrderLot,
		Price:        input.Price,
		Critical:     input.Critical,
		Consumable:   input.Consumable,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(material).Error; err != nil {
			return err
		}
		return tx.Create(&entity.MaterialHistory{
			ID:         uuid.New().String(),
			MaterialID: material.ID,
			Action:     "create",
			Detail:     fmt.Sprintf("created with stock %.2f", input.CurrentStock),
			ChangedBy:  changedBy,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	return s.materialRepo.FindByID(ctx, material.ID)
}

func (s *MaterialService) Get(ctx context.Context, id string) (*entity.Material, error) {
	return s.materialRepo.FindByIDWithHistory(ctx, id)
}

func (s *MaterialService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Material, int64, error) {
	return s.materialRepo.FindAll(ctx, page, pageSize, filters)
}

// Update rewrites the material. A reference change additionally appends
// a rename entry to the reference history.
func (s *MaterialService) Update(ctx context.Context, id string, input MaterialInput, changedBy string) (*entity.Material, error) {
	material, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldReference := material.Reference

	material.Reference = input.Reference
	material.Description = input.Description
	material.Manufacturer = input.Manufacturer
	material.SupplierID = input.SupplierID
	material.LocationID = input.LocationID
	material.CategoryID = input.CategoryID
	material.CurrentStock = input.CurrentStock
	material.MinimumStock = input.MinimumStock
	material.OrderLot = input.OrderLot
	material.Price = input.Price
	material.Critical = input.Critical
	material.Consumable = input.Consumable
	material.Supplier = nil
	material.Location = nil
	material.Category = nil

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(material).Error; err != nil {
			return err
		}
		if oldReference != input.Reference {
			if err := tx.Create(&entity.ReferenceHistory{
				ID:           uuid.New().String(),
				MaterialID:   id,
				OldReference: oldReference,
				NewReference: input.Reference,
				ChangedBy:    changedBy,
			}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&entity.MaterialHistory{
			ID:         uuid.New().String(),
			MaterialID: id,
			Action:     "update",
			Detail:     "material updated",
			ChangedBy:  changedBy,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}
	return s.materialRepo.FindByID(ctx, id)
}

// Delete removes the material with its histories and ledger rows.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	if _, err := s.materialRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ledgerIDs []string
		if err := tx.Model(&entity.MachineMaterial{}).
			Where("material_id = ?", id).
			Pluck("id", &ledgerIDs).Error; err != nil {
			return err
		}
		if len(ledgerIDs) > 0 {
			if err := tx.Where("machine_material_id IN ?", ledgerIDs).
				Delete(&entity.MachineMaterialHistory{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ledgerIDs).
				Delete(&entity.MachineMaterial{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("material_id = ?", id).Delete(&entity.MaterialHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("material_id = ?", id).Delete(&entity.ReferenceHistory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Material{}).Error
	})
}
