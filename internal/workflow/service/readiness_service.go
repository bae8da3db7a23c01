package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadinessService manages readiness aggregates. Creating one
// instantiates an empty checklist stage per discipline in the same
// transaction, so a readiness record never points at a missing stage.
type ReadinessService struct {
	readinessRepo *repository.ReadinessRepository
	db            *gorm.DB
}

func NewReadinessService(readinessRepo *repository.ReadinessRepository, db *gorm.DB) *ReadinessService {
	return &ReadinessService{readinessRepo: readinessRepo, db: db}
}

// Create builds the readiness record plus one empty stage per discipline.
func (s *ReadinessService) Create(ctx context.Context, project string) (*entity.Readiness, error) {
	readiness := &entity.Readiness{
		ID:      uuid.New().String(),
		Project: project,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs := readiness.StageRefs()
		for _, kind := range entity.ReadinessKinds {
			def, ok := entity.DefinitionFor(kind)
			if !ok {
				return fmt.Errorf("no definition for discipline %q", kind)
			}
			stage := &entity.Stage{
				ID:   uuid.New().String(),
				Kind: kind,
			}
			for i, name := range def.Fields {
				stage.Checks = append(stage.Checks, entity.StageCheck{
					ID:        uuid.New().String(),
					StageID:   stage.ID,
					Name:      name,
					SortOrder: i,
				})
			}
			if err := tx.Create(stage).Error; err != nil {
				return fmt.Errorf("create %s stage: %w", kind, err)
			}
			*refs[kind] = &stage.ID
		}
		return tx.Create(readiness).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create readiness: %w", err)
	}
	return readiness, nil
}

func (s *ReadinessService) Get(ctx context.Context, id string) (*entity.Readiness, error) {
	return s.readinessRepo.FindByID(ctx, id)
}

func (s *ReadinessService) List(ctx context.Context, page, pageSize int) ([]entity.Readiness, int64, error) {
	return s.readinessRepo.FindAll(ctx, page, pageSize)
}

func (s *ReadinessService) Update(ctx context.Context, id, project string) (*entity.Readiness, error) {
	readiness, err := s.readinessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	readiness.Project = project
	if err := s.readinessRepo.Update(ctx, readiness); err != nil {
		return nil, fmt.Errorf("update readiness: %w", err)
	}
	return readiness, nil
}

// Delete cascades to the discipline stages and their check rows and side
// records.
func (s *ReadinessService) Delete(ctx context.Context, id string, checklists *ChecklistService) error {
	readiness, err := s.readinessRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	refs := readiness.StageRefs()
	for _, kind := range entity.ReadinessKinds {
		stageID := *refs[kind]
		if stageID == nil {
			continue
		}
		if err := checklists.Delete(ctx, kind, *stageID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}

	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Readiness{}).Error
}
