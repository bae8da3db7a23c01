package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

// AllocationService books material stock onto machines. Every mutation
// runs in one transaction: the ledger row, its history entry and the
// material's unallocated pool move together or not at all.
type AllocationService struct {
	materialRepo *repository.MaterialRepository
	machineRepo  *repository.MachineRepository
	db           *gorm.DB
}

func NewAllocationService(materialRepo *repository.MaterialRepository, machineRepo *repository.MachineRepository, db *gorm.DB) *AllocationService {
	return &AllocationService{materialRepo: materialRepo, machineRepo: machineRepo, db: db}
}

// AllocationItem is one machine booking of an allocate request.
type AllocationItem struct {
	MachineID string  `json:"machine_id" binding:"required"`
	Stock     float64 `json:"stock"`
	Comment   string  `json:"comment"`
}

// AllocateStock books stock of one material onto several machines. The
// request is rejected up front when the items sum past the unallocated
// pool, and re-checked per item against the running total; a failure
// anywhere rolls the whole request back.
func (s *AllocationService) AllocateStock(ctx context.Context, materialID string, items []AllocationItem, changedBy string) (*entity.Material, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no allocations requested")
	}

	var requested float64
	for _, item := range items {
		if item.Stock <= 0 {
			return nil, fmt.Errorf("%w: machine %s", ErrInvalidQuantity, item.MachineID)
		}
		requested += item.Stock
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var material entity.Material
		if err := tx.Clauses(forUpdate()).Where("id = ?", materialID).First(&material).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		if requested > material.CurrentStock {
			return fmt.Errorf("%w: requested %.2f, available %.2f",
				ErrInsufficientStock, requested, material.CurrentStock)
		}

		remaining := material.CurrentStock
		for _, item := range items {
			var machine entity.Machine
			if err := tx.Where("id = ?", item.MachineID).First(&machine).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("machine %s: %w", item.MachineID, repository.ErrNotFound)
				}
				return err
			}

			if item.Stock > remaining {
				return fmt.Errorf("%w: machine %s needs %.2f, %.2f left",
					ErrInsufficientStock, item.MachineID, item.Stock, remaining)
			}
			remaining -= item.Stock

			if err := applyAllocation(tx, materialID, item.MachineID, item.Stock, changedBy, item.Comment); err != nil {
				return err
			}
		}

		if err := tx.Model(&entity.Material{}).Where("id = ?", materialID).
			Update("current_stock", remaining).Error; err != nil {
			return err
		}

		history := &entity.MaterialHistory{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			Action:     "allocate",
			Detail:     fmt.Sprintf("allocated %.2f across %d machines", requested, len(items)),
			ChangedBy:  changedBy,
		}
		return tx.Create(history).Error
	})
	if err != nil {
		return nil, err
	}

	return s.materialRepo.FindByID(ctx, materialID)
}

// UpdateAllocation sets one ledger row to a new absolute amount. The
// signed difference moves between the row and the material's pool:
// raising the allocation draws from the pool, lowering it returns stock.
func (s *AllocationService) UpdateAllocation(ctx context.Context, machineID, materialID string, newStock float64, changedBy, comment string) (*entity.MachineMaterial, error) {
	if newStock < 0 {
		return nil, ErrInvalidQuantity
	}

	var updated *entity.MachineMaterial
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mm entity.MachineMaterial
		if err := tx.Clauses(forUpdate()).
			Where("machine_id = ? AND material_id = ?", machineID, materialID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var material entity.Material
		if err := tx.Clauses(forUpdate()).Where("id = ?", materialID).First(&material).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		diff := newStock - mm.AllocatedStock
		if diff > material.CurrentStock {
			return fmt.Errorf("%w: need %.2f more, available %.2f",
				ErrInsufficientStock, diff, material.CurrentStock)
		}

		previous := mm.AllocatedStock
		mm.AllocatedStock = newStock
		if err := tx.Save(&mm).Error; err != nil {
			return err
		}

		history := &entity.MachineMaterialHistory{
			ID:                uuid.New().String(),
			MachineMaterialID: mm.ID,
			PreviousStock:     previous,
			NewStock:          newStock,
			ChangedBy:         changedBy,
			Comment:           comment,
		}
		if err := tx.Create(history).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.Material{}).Where("id = ?", materialID).
			Update("current_stock", material.CurrentStock-diff).Error; err != nil {
			return err
		}

		updated = &mm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReleaseAllocation removes a ledger row and returns its stock to the
// material's pool.
func (s *AllocationService) ReleaseAllocation(ctx context.Context, machineID, materialID, changedBy string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mm entity.MachineMaterial
		if err := tx.Clauses(forUpdate()).
			Where("machine_id = ? AND material_id = ?", machineID, materialID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		if err := tx.Where("machine_material_id = ?", mm.ID).
			Delete(&entity.MachineMaterialHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", mm.ID).Delete(&entity.MachineMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Material{}).Where("id = ?", materialID).
			Update("current_stock", gorm.Expr("current_stock + ?", mm.AllocatedStock)).Error; err != nil {
			return err
		}

		history := &entity.MaterialHistory{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			Action:     "release",
			Detail:     fmt.Sprintf("released %.2f from machine %s", mm.AllocatedStock, machineID),
			ChangedBy:  changedBy,
		}
		return tx.Create(history).Error
	})
}

// MachineAllocations lists one machine's ledger rows.
func (s *AllocationService) MachineAllocations(ctx context.Context, machineID string) ([]entity.MachineMaterial, error) {
	if _, err := s.machineRepo.FindByID(ctx, machineID); err != nil {
		return nil, err
	}
	return s.machineRepo.FindAllocationsByMachine(ctx, machineID)
}

// MaterialAllocations lists every booking of one material.
func (s *AllocationService) MaterialAllocations(ctx context.Context, materialID string) ([]entity.MachineMaterial, error) {
	if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
		return nil, err
	}
	return s.machineRepo.FindAllocationsByMaterial(ctx, materialID)
}

// applyAllocation upserts one ledger row inside tx, appending the
// history entry for the change.
func applyAllocation(tx *gorm.DB, materialID, machineID string, stock float64, changedBy, comment string) error {
	var mm entity.MachineMaterial
	err := tx.Clauses(forUpdate()).
		Where("machine_id = ? AND material_id = ?", machineID, materialID).
		First(&mm).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		mm = entity.MachineMaterial{
			ID:             uuid.New().String(),
			MachineID:      machineID,
			MaterialID:     materialID,
			AllocatedStock: stock,
		}
		if err := tx.Create(&mm).Error; err != nil {
			return err
		}
		return tx.Create(&entity.MachineMaterialHistory{
			ID:                uuid.New().String(),
			MachineMaterialID: mm.ID,
			PreviousStock:     0,
			NewStock:          stock,
			ChangedBy:         changedBy,
			Comment:           comment,
		}).Error
	case err != nil:
		return err
	}

	previous := mm.AllocatedStock
	mm.AllocatedStock += stock
	if err := tx.Save(&mm).Error; err != nil {
		return err
	}
	return tx.Create(&entity.MachineMaterialHistory{
		ID:                uuid.New().String(),
		MachineMaterialID: mm.ID,
		PreviousStock:     previous,
		NewStock:          mm.AllocatedStock,
		ChangedBy:         changedBy,
		Comment:           comment,
	}).Error
}
