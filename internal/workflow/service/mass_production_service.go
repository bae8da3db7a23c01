package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/google/uuid"
)

// MassProductionService manages the umbrella records that tie a project
// to its stage instances.
type MassProductionService struct {
	mpRepo *repository.MassProductionRepository
}

func NewMassProductionService(mpRepo *repository.MassProductionRepository) *MassProductionService {
	return &MassProductionService{mpRepo: mpRepo}
}

// MassProductionInput carries the writable columns; stage references are
// assigned by the stage endpoints, not here.
type MassProductionInput struct {
	Name               string     `json:"name" binding:"required"`
	Reference          string     `json:"reference"`
	Designation        string     `json:"designation"`
	Customer           string     `json:"customer"`
	Status             string     `json:"status"`
	PPAPSubmissionDate *time.Time `json:"ppap_submission_date"`
}

func validateMassProductionStatus(status string) error {
	switch status {
	case "", entity.MassProductionStatusOnGoing, entity.MassProductionStatusStandBy,
		entity.MassProductionStatusClosed, entity.MassProductionStatusCancelled:
		return nil
	}
	return fmt.Errorf("invalid status %q", status)
}

func (s *MassProductionService) Create(ctx context.Context, input MassProductionInput, createdBy string) (*entity.MassProduction, error) {
	if err := validateMassProductionStatus(input.Status); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = entity.MassProductionStatusOnGoing
	}

	mp := &entity.MassProduction{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Reference:          input.Reference,
		Designation:        input.Designation,
		Customer:           input.Customer,
		Status:             status,
		PPAPSubmissionDate: input.PPAPSubmissionDate,
		CreatedBy:          createdBy,
	}
	if err := s.mpRepo.Create(ctx, mp); err != nil {
		return nil, fmt.Errorf("create mass production: %w", err)
	}
	mp.ComputeDaysUntilPPAP(time.Now())
	return mp, nil
}

func (s *MassProductionService) Get(ctx context.Context, id string) (*entity.MassProduction, error) {
	mp, err := s.mpRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mp.ComputeDaysUntilPPAP(time.Now())
	return mp, nil
}

func (s *MassProductionService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.MassProduction, int64, error) {
	items, total, err := s.mpRepo.FindAll(ctx, page, pageSize, filters)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	for i := range items {
		items[i].ComputeDaysUntilPPAP(now)
	}
	return items, total, nil
}

func (s *MassProductionService) Update(ctx context.Context, id string, input MassProductionInput) (*entity.MassProduction, error) {
	if err := validateMassProductionStatus(input.Status); err != nil {
		return nil, err
	}

	mp, err := s.mpRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mp.Name = input.Name
	mp.Reference = input.Reference
	mp.Designation = input.Designation
	mp.Customer = input.Customer
	if input.Status != "" {
		mp.Status = input.Status
	}
	mp.PPAPSubmissionDate = input.PPAPSubmissionDate

	if err := s.mpRepo.Update(ctx, mp); err != nil {
		return nil, fmt.Errorf("update mass production: %w", err)
	}
	mp.ComputeDaysUntilPPAP(time.Now())
	return mp, nil
}

// AttachStage records a stage, feasibility, readiness or checkin id on
// the umbrella.
func (s *MassProductionService) AttachStage(ctx context.Context, id, slot, refID string) (*entity.MassProduction, error) {
	mp, err := s.mpRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch slot {
	case "feasibility":
		mp.FeasibilityID = &refID
	case entity.KindKickOff:
		mp.KickOffID = &refID
	case entity.KindDesign:
		mp.DesignID = &refID
	case entity.KindFacilities:
		mp.FacilitiesID = &refID
	case entity.KindPPTuning:
		mp.PPTuningID = &refID
	case entity.KindProcessQualif:
		mp.ProcessQualifID = &refID
	case entity.KindQualificationConfirmation:
		mp.QualificationConfirmationID = &refID
	case "readiness":
		mp.ReadinessID = &refID
	case "checkin":
		mp.CheckinID = &refID
	default:
		return nil, fmt.Errorf("unknown stage slot %q", slot)
	}

	if err := s.mpRepo.Update(ctx, mp); err != nil {
		return nil, fmt.Errorf("attach %s: %w", slot, err)
	}
	mp.ComputeDaysUntilPPAP(time.Now())
	return mp, nil
}

func (s *MassProductionService) Delete(ctx context.Context, id string) error {
	if _, err := s.mpRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.mpRepo.Delete(ctx, id)
}
