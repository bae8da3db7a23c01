package service

import (
	"context"
	"fmt"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineService manages production machines.
type MachineService struct {
	machineRepo *repository.MachineRepository
	db          *gorm.DB
}

func NewMachineService(machineRepo *repository.MachineRepository, db *gorm.DB) *MachineService {
	return &MachineService{machineRepo: machineRepo, db: db}
}

// MachineInput carries the writable machine columns.
type MachineInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (s *MachineService) Create(ctx context.Context, input MachineInput) (*entity.Machine, error) {
	status := input.Status
	if status == "" {
		status = "active"
	}
	machine := &entity.Machine{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
	}
	if err := s.machineRepo.Create(ctx, machine); err != nil {
		return nil, fmt.Errorf("create machine: %w", err)
	}
	return machine, nil
}

func (s *MachineService) Get(ctx context.Context, id string) (*entity.Machine, error) {
	return s.machineRepo.FindByID(ctx, id)
}

func (s *MachineService) List(ctx context.Context, page, pageSize int, search string) ([]entity.Machine, int64, error) {
	return s.machineRepo.FindAll(ctx, page, pageSize, search)
}

func (s *MachineService) Update(ctx context.Context, id string, input MachineInput) (*entity.Machine, error) {
	machine, err := s.machineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	machine.Name = input.Name
	machine.Description = input.Description
	if input.Status != "" {
		machine.Status = input.Status
	}
	if err := s.machineRepo.Update(ctx, machine); err != nil {
		return nil, fmt.Errorf("update machine: %w", err)
	}
	return machine, nil
}

// Delete removes the machine and returns any booked stock to the
// material pools.
func (s *MachineService) Delete(ctx context.Context, id string) error {
	if _, err := s.machineRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allocations []entity.MachineMaterial
		if err := tx.Clauses(forUpdate()).Where("machine_id = ?", id).Find(&allocations).Error; err != nil {
			return err
		}
		for _, mm := range allocations {
			if err := tx.Model(&entity.Material{}).Where("id = ?", mm.MaterialID).
				Update("current_stock", gorm.Expr("current_stock + ?", mm.AllocatedStock)).Error; err != nil {
				return err
			}
			if err := tx.Where("machine_material_id = ?", mm.ID).
				Delete(&entity.MachineMaterialHistory{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("machine_id = ?", id).Delete(&entity.MachineMaterial{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Machine{}).Error
	})
}
