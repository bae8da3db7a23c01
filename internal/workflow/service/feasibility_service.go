package service

import (
	"context"
	"fmt"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeasibilityService owns the feasibility aggregate: the flattened study
// row, its owned checkin and the bulk-inserted detail rows.
type FeasibilityService struct {
	feasibilityRepo *repository.FeasibilityRepository
	db              *gorm.DB
}

func NewFeasibilityService(feasibilityRepo *repository.FeasibilityRepository, db *gorm.DB) *FeasibilityService {
	return &FeasibilityService{feasibilityRepo: feasibilityRepo, db: db}
}

// FeasibilityDetailInput is an optional per-attribute costing payload.
type FeasibilityDetailInput struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	SalesPrice  float64 `json:"sales_price"`
	Comments    string  `json:"comments"`
}

// CreateFeasibilityRequest carries the flattened booleans plus optional
// detail payloads keyed by attribute name.
type CreateFeasibilityRequest struct {
	Fields  map[string]bool                   `json:"fields"`
	Details map[string]FeasibilityDetailInput `json:"details"`
	Checkin *entity.Checkin                   `json:"checkin"`
}

// FeasibilityAttribute is the GET-time join of one boolean and its detail.
type FeasibilityAttribute struct {
	Value       bool    `json:"value"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	SalesPrice  float64 `json:"sales_price"`
	Comments    string  `json:"comments"`
}

// FeasibilityView is the reconstructed response shape.
type FeasibilityView struct {
	ID         string                          `json:"id"`
	CheckinID  *string                         `json:"checkin_id"`
	Checkin    *entity.Checkin                 `json:"checkin,omitempty"`
	Attributes map[string]FeasibilityAttribute `json:"attributes"`
	CreatedAt  interface{}                     `json:"created_at"`
	UpdatedAt  interface{}                     `json:"updated_at"`
}

// Create saves the owned checkin, the study and one detail row per
// declared attribute in a single transaction.
func (s *FeasibilityService) Create(ctx context.Context, req *CreateFeasibilityRequest) (*FeasibilityView, error) {
	for name := range req.Fields {
		if !isFeasibilityField(name) {
			return nil, fmt.Errorf("unknown feasibility field %q", name)
		}
	}
	for name := range req.Details {
		if !isFeasibilityField(name) {
			return nil, fmt.Errorf("unknown feasibility field %q", name)
		}
	}

	feasibility := &entity.Feasibility{ID: uuid.New().String()}
	flags := feasibility.Flags()
	for name, value := range req.Fields {
		*flags[name] = value
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checkin := req.Checkin
		if checkin == nil {
			checkin = &entity.Checkin{}
		}
		checkin.ID = uuid.New().String()
		if err := tx.Create(checkin).Error; err != nil {
			return fmt.Errorf("create checkin: %w", err)
		}
		feasibility.CheckinID = &checkin.ID

		if err := tx.Create(feasibility).Error; err != nil {
			return fmt.Errorf("create feasibility: %w", err)
		}

		details := make([]entity.FeasibilityDetail, 0, len(entity.FeasibilityFields))
		for _, name := range entity.FeasibilityFields {
			detail := entity.FeasibilityDetail{
				ID:            uuid.New().String(),
				FeasibilityID: feasibility.ID,
				AttributeName: name,
				Description:   "Detail for " + name,
			}
			if in, ok := req.Details[name]; ok {
				if in.Description != "" {
					detail.Description = in.Description
				}
				detail.Cost = in.Cost
				detail.SalesPrice = in.SalesPrice
				detail.Comments = in.Comments
			}
			details = append(details, detail)
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("create feasibility details: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, feasibility.ID)
}

// Get re-joins the detail rows onto the flattened booleans. A missing
// detail row yields a zero-valued stub, so the response shape is stable.
func (s *FeasibilityService) Get(ctx context.Context, id string) (*FeasibilityView, error) {
	feasibility, err := s.feasibilityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := s.feasibilityRepo.FindDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]entity.FeasibilityDetail, len(details))
	for _, d := range details {
		byName[d.AttributeName] = d
	}

	flags := feasibility.Flags()
	attributes := make(map[string]FeasibilityAttribute, len(entity.FeasibilityFields))
	for _, name := range entity.FeasibilityFields {
		attr := FeasibilityAttribute{
			Value:       *flags[name],
			Description: "Detail for " + name,
		}
		if d, ok := byName[name]; ok {
			attr.Description = d.Description
			attr.Cost = d.Cost
			attr.SalesPrice = d.SalesPrice
			attr.Comments = d.Comments
		}
		attributes[name] = attr
	}

	return &FeasibilityView{
		ID:         feasibility.ID,
		CheckinID:  feasibility.CheckinID,
		Checkin:    feasibility.Checkin,
		Attributes: attributes,
		CreatedAt:  feasibility.CreatedAt,
		UpdatedAt:  feasibility.UpdatedAt,
	}, nil
}

// List pages raw study rows (no detail join; the admin list view only
// shows the booleans).
func (s *FeasibilityService) List(ctx context.Context, page, pageSize int) ([]entity.Feasibility, int64, error) {
	return s.feasibilityRepo.FindAll(ctx, page, pageSize)
}

// UpdateRequest mirrors the create payload; absent booleans reset to
// false, matching the checklist update semantics.
func (s *FeasibilityService) Update(ctx context.Context, id string, req *CreateFeasibilityRequest) (*FeasibilityView, error) {
	for name := range req.Fields {
		if !isFeasibilityField(name) {
			return nil, fmt.Errorf("unknown feasibility field %q", name)
		}
	}

	feasibility, err := s.feasibilityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flags := feasibility.Flags()
	for _, name := range entity.FeasibilityFields {
		*flags[name] = req.Fields[name]
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(feasibility).Error; err != nil {
			return fmt.Errorf("update feasibility: %w", err)
		}
		for name, in := range req.Details {
			updates := map[string]interface{}{
				"cost":        in.Cost,
				"sales_price": in.SalesPrice,
				"comments":    in.Comments,
			}
			if in.Description != "" {
				updates["description"] = in.Description
			}
			if err := tx.Model(&entity.FeasibilityDetail{}).
				Where("feasibility_id = ? AND attribute_name = ?", id, name).
				Updates(updates).Error; err != nil {
				return fmt.Errorf("update feasibility detail %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the study, its details and its owned checkin.
func (s *FeasibilityService) Delete(ctx context.Context, id string) error {
	feasibility, err := s.feasibilityRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feasibility_id = ?", id).Delete(&entity.FeasibilityDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&entity.Feasibility{}).Error; err != nil {
			return err
		}
		if feasibility.CheckinID != nil {
			if err := tx.Where("id = ?", *feasibility.CheckinID).Delete(&entity.Checkin{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func isFeasibilityField(name string) bool {
	for _, f := range entity.FeasibilityFields {
		if f == name {
			return true
		}
	}
	return false
}
