package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/google/uuid"
)

// CheckinService manages role sign-off sheets.
type CheckinService struct {
	checkinRepo *repository.CheckinRepository
}

func NewCheckinService(checkinRepo *repository.CheckinRepository) *CheckinService {
	return &CheckinService{checkinRepo: checkinRepo}
}

// RoleApprovalInput is one role's slot in a checkin payload.
type RoleApprovalInput struct {
	Value   bool       `json:"value"`
	Comment string     `json:"comment"`
	Date    *time.Time `json:"date"`
	Name    string     `json:"name"`
}

// CheckinInput is keyed by role name; unknown roles are rejected.
type CheckinInput struct {
	Roles map[string]RoleApprovalInput `json:"roles"`
}

func (in *CheckinInput) validate() error {
	known := make(map[string]struct{}, len(entity.CheckinRoles))
	for _, r := range entity.CheckinRoles {
		known[r] = struct{}{}
	}
	for name := range in.Roles {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown checkin role %q", name)
		}
	}
	return nil
}

func (in *CheckinInput) apply(checkin *entity.Checkin) {
	slots := checkin.Approvals()
	for _, role := range entity.CheckinRoles {
		slot := slots[role]
		payload := in.Roles[role]
		slot.Value = payload.Value
		slot.Comment = payload.Comment
		slot.Date = payload.Date
		slot.Name = payload.Name
	}
}

func (s *CheckinService) Create(ctx context.Context, input CheckinInput) (*entity.Checkin, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	checkin := &entity.Checkin{ID: uuid.New().String()}
	input.apply(checkin)
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		return nil, fmt.Errorf("create checkin: %w", err)
	}
	return checkin, nil
}

func (s *CheckinService) Get(ctx context.Context, id string) (*entity.Checkin, error) {
	return s.checkinRepo.FindByID(ctx, id)
}

func (s *CheckinService) List(ctx context.Context, page, pageSize int) ([]entity.Checkin, int64, error) {
	return s.checkinRepo.FindAll(ctx, page, pageSize)
}

// Update rewrites every role slot from the payload; omitted roles reset
// to an empty approval.
func (s *CheckinService) Update(ctx context.Context, id string, input CheckinInput) (*entity.Checkin, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	checkin, err := s.checkinRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	input.apply(checkin)
	if err := s.checkinRepo.Update(ctx, checkin); err != nil {
		return nil, fmt.Errorf("update checkin: %w", err)
	}
	return checkin, nil
}

func (s *CheckinService) Delete(ctx context.Context, id string) error {
	if _, err := s.checkinRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.checkinRepo.Delete(ctx, id)
}
