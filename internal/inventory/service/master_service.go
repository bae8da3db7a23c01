package service

import (
	"context"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/google/uuid"
)

// MasterService manages the small master-data tables behind the pedido
// and material dropdowns.
type MasterService struct {
	masterRepo *repository.MasterRepository
}

func NewMasterService(masterRepo *repository.MasterRepository) *MasterService {
	return &MasterService{masterRepo: masterRepo}
}

func (s *MasterService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return s.masterRepo.ListSuppliers(ctx)
}

func (s *MasterService) CreateSupplier(ctx context.Context, item *entity.Supplier) (*entity.Supplier, error) {
	item.ID = uuid.New().String()
	if err := s.masterRepo.SaveSupplier(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) UpdateSupplier(ctx context.Context, id string, input *entity.Supplier) (*entity.Supplier, error) {
	item, err := s.masterRepo.FindSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.Description = input.Description
	item.Email = input.Email
	item.Phone = input.Phone
	if err := s.masterRepo.SaveSupplier(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := s.masterRepo.FindSupplier(ctx, id); err != nil {
		return err
	}
	return s.masterRepo.DeleteSupplier(ctx, id)
}

func (s *MasterService) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return s.masterRepo.ListLocations(ctx)
}

func (s *MasterService) CreateLocation(ctx context.Context, item *entity.Location) (*entity.Location, error) {
	item.ID = uuid.New().String()
	if err := s.masterRepo.SaveLocation(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) UpdateLocation(ctx context.Context, id string, input *entity.Location) (*entity.Location, error) {
	item, err := s.masterRepo.FindLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	if err := s.masterRepo.SaveLocation(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) DeleteLocation(ctx context.Context, id string) error {
	if _, err := s.masterRepo.FindLocation(ctx, id); err != nil {
		return err
	}
	return s.masterRepo.DeleteLocation(ctx, id)
}

func (s *MasterService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.masterRepo.ListCategories(ctx)
}

func (s *MasterService) CreateCategory(ctx context.Context, item *entity.Category) (*entity.Category, error) {
	item.ID = uuid.New().String()
	if err := s.masterRepo.SaveCategory(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) UpdateCategory(ctx context.Context, id string, input *entity.Category) (*entity.Category, error) {
	item, err := s.masterRepo.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	if err := s.masterRepo.SaveCategory(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.masterRepo.FindCategory(ctx, id); err != nil {
		return err
	}
	return s.masterRepo.DeleteCategory(ctx, id)
}

func (s *MasterService) ListSolicitantes(ctx context.Context) ([]entity.Solicitante, error) {
	return s.masterRepo.ListSolicitantes(ctx)
}

func (s *MasterService) CreateSolicitante(ctx context.Context, item *entity.Solicitante) (*entity.Solicitante, error) {
	item.ID = uuid.New().String()
	if err := s.masterRepo.SaveSolicitante(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) UpdateSolicitante(ctx context.Context, id string, input *entity.Solicitante) (*entity.Solicitante, error) {
	item, err := s.masterRepo.FindSolicitante(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.Email = input.Email
	if err := s.masterRepo.SaveSolicitante(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) DeleteSolicitante(ctx context.Context, id string) error {
	if _, err := s.masterRepo.FindSolicitante(ctx, id); err != nil {
		return err
	}
	return s.masterRepo.DeleteSolicitante(ctx, id)
}

func (s *MasterService) ListTableStatuses(ctx context.Context) ([]entity.TableStatus, error) {
	return s.masterRepo.ListTableStatuses(ctx)
}

func (s *MasterService) CreateTableStatus(ctx context.Context, item *entity.TableStatus) (*entity.TableStatus, error) {
	item.ID = uuid.New().String()
	if err := s.masterRepo.SaveTableStatus(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) UpdateTableStatus(ctx context.Context, id string, input *entity.TableStatus) (*entity.TableStatus, error) {
	item, err := s.masterRepo.FindTableStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.Color = input.Color
	item.SortOrder = input.SortOrder
	if err := s.masterRepo.SaveTableStatus(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MasterService) DeleteTableStatus(ctx context.Context, id string) error {
	if _, err := s.masterRepo.FindTableStatus(ctx, id); err != nil {
		return err
	}
	return s.masterRepo.DeleteTableStatus(ctx, id)
}
