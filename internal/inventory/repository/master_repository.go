package repository

import (
	"context"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"gorm.io/gorm"
)

// MasterRepository persists the small master-data tables: suppliers,
// locations, categories, solicitantes and table statuses. They share the
// same CRUD shape, so one repository serves them all.
type MasterRepository struct {
	db *gorm.DB
}

func NewMasterRepository(db *gorm.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

func (r *MasterRepository) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var items []entity.Supplier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MasterRepository) FindSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	var item entity.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *MasterRepository) SaveSupplier(ctx context.Context, item *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MasterRepository) DeleteSupplier(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Supplier{}).Error
}

func (r *MasterRepository) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var items []entity.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MasterRepository) FindLocation(ctx context.Context, id string) (*entity.Location, error) {
	var item entity.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *MasterRepository) SaveLocation(ctx context.Context, item *entity.Location) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MasterRepository) DeleteLocation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Location{}).Error
}

func (r *MasterRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var items []entity.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MasterRepository) FindCategory(ctx context.Context, id string) (*entity.Category, error) {
	var item entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *MasterRepository) SaveCategory(ctx context.Context, item *entity.Category) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MasterRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Category{}).Error
}

func (r *MasterRepository) ListSolicitantes(ctx context.Context) ([]entity.Solicitante, error) {
	var items []entity.Solicitante
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MasterRepository) FindSolicitante(ctx context.Context, id string) (*entity.Solicitante, error) {
	var item entity.Solicitante
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *MasterRepository) SaveSolicitante(ctx context.Context, item *entity.Solicitante) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MasterRepository) DeleteSolicitante(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Solicitante{}).Error
}

func (r *MasterRepository) ListTableStatuses(ctx context.Context) ([]entity.TableStatus, error) {
	var items []entity.TableStatus
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *MasterRepository) FindTableStatus(ctx context.Context, id string) (*entity.TableStatus, error) {
	var item entity.TableStatus
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *MasterRepository) SaveTableStatus(ctx context.Context, item *entity.TableStatus) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MasterRepository) DeleteTableStatus(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.TableStatus{}).Error
}
