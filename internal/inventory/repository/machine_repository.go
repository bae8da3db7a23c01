package repository

import (
	"context"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"gorm.io/gorm"
)

// MachineRepository persists machines and their allocation ledger rows.
type MachineRepository struct {
	db *gorm.DB
}

func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

func (r *MachineRepository) FindByID(ctx context.Context, id string) (*entity.Machine, error) {
	var machine entity.Machine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&machine).Error
	if err != nil {
		return nil, translate(err)
	}
	return &machine, nil
}

func (r *MachineRepository) FindAll(ctx context.Context, page, pageSize int, search string) ([]entity.Machine, int64, error) {
	var items []entity.Machine
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Machine{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *MachineRepository) Create(ctx context.Context, machine *entity.Machine) error {
	return r.db.WithContext(ctx).Create(machine).Error
}

func (r *MachineRepository) Update(ctx context.Context, machine *entity.Machine) error {
	return r.db.WithContext(ctx).Save(machine).Error
}

func (r *MachineRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Machine{}).Error
}

// FindAllocation loads one ledger row by machine and material.
func (r *MachineRepository) FindAllocation(ctx context.Context, machineID, materialID string) (*entity.MachineMaterial, error) {
	var mm entity.MachineMaterial
	err := r.db.WithContext(ctx).
		Where("machine_id = ? AND material_id = ?", machineID, materialID).
		First(&mm).Error
	if err != nil {
		return nil, translate(err)
	}
	return &mm, nil
}

// FindAllocationsByMachine lists the ledger rows of one machine with
// their material and audit trail.
func (r *MachineRepository) FindAllocationsByMachine(ctx context.Context, machineID string) ([]entity.MachineMaterial, error) {
	var items []entity.MachineMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("machine_id = ?", machineID).
		Find(&items).Error
	return items, err
}

// FindAllocationsByMaterial lists every machine booking of one material.
func (r *MachineRepository) FindAllocationsByMaterial(ctx context.Context, materialID string) ([]entity.MachineMaterial, error) {
	var items []entity.MachineMaterial
	err := r.db.WithContext(ctx).
		Preload("Machine").
		Where("material_id = ?", materialID).
		Find(&items).Error
	return items, err
}
