package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistService is the one synchronizer behind every workflow stage
// kind. The definition registry supplies the field list and side-record
// type; create, update and delete keep the stage checks and their side
// records in lockstep inside a single transaction.
type ChecklistService struct {
	stageRepo *repository.StageRepository
	taskRepo  *repository.TaskRepository
	db        *gorm.DB
}

func NewChecklistService(stageRepo *repository.StageRepository, taskRepo *repository.TaskRepository, db *gorm.DB) *ChecklistService {
	return &ChecklistService{stageRepo: stageRepo, taskRepo: taskRepo, db: db}
}

// TaskInput is the side-record payload of a task-kind field.
type TaskInput struct {
	Check         bool       `json:"check"`
	Role          string     `json:"role"`
	AssignedUsers []string   `json:"assigned_users"`
	Planned       *time.Time `json:"planned"`
	Done          *time.Time `json:"done"`
	Comments      string     `json:"comments"`
}

// ValidationInput is the side-record payload of a validation-kind field.
type ValidationInput struct {
	TKO             bool       `json:"tko"`
	OT              bool       `json:"ot"`
	OTOP            bool       `json:"ot_op"`
	IS              bool       `json:"is"`
	SOP             bool       `json:"sop"`
	OkNok           string     `json:"ok_nok"`
	Who             string     `json:"who"`
	When            *time.Time `json:"when"`
	ValidationCheck bool       `json:"validation_check"`
	Comments        string     `json:"comments"`
}

// FieldInput is one checklist field of a create/update payload. A field
// omitted from the payload reads as the zero value, so its stored value
// resets to false on update.
type FieldInput struct {
	Value      bool             `json:"value"`
	Task       *TaskInput       `json:"task,omitempty"`
	Validation *ValidationInput `json:"validation,omitempty"`
}

// StageInput is a create/update payload keyed by declared field name.
// Unknown field names are rejected.
type StageInput struct {
	MassProductionID *string               `json:"mass_production_id"`
	Fields           map[string]FieldInput `json:"fields"`
}

func (in *StageInput) validate(def entity.StageDefinition) error {
	known := make(map[string]struct{}, len(def.Fields))
	for _, f := range def.Fields {
		known[f] = struct{}{}
	}
	for name := range in.Fields {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown field %q for %s", name, def.Kind)
		}
	}
	return nil
}

// Create builds a stage of the given kind: one check row per declared
// field, plus a side record for every field whose payload carries one.
// Side records and the stage commit or roll back together.
func (s *ChecklistService) Create(ctx context.Context, kind string, input StageInput) (*entity.Stage, error) {
	def, ok := entity.DefinitionFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown stage kind %q", kind)
	}
	if err := input.validate(def); err != nil {
		return nil, err
	}

	stage := &entity.Stage{
		ID:               uuid.New().String(),
		Kind:             kind,
		MassProductionID: input.MassProductionID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, name := range def.Fields {
			in := input.Fields[name]
			check := entity.StageCheck{
				ID:        uuid.New().String(),
				StageID:   stage.ID,
				Name:      name,
				Value:     in.Value,
				SortOrder: i,
			}
			sideID, err := createSideRecord(tx, def.SideKind, in)
			if err != nil {
				return err
			}
			if sideID != nil {
				if def.SideKind == entity.SideKindTask {
					check.TaskID = sideID
				} else {
					check.ValidationID = sideID
				}
			}
			stage.Checks = append(stage.Checks, check)
		}
		return tx.Create(stage).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	return s.stageRepo.FindByID(ctx, kind, stage.ID)
}

// Update rewrites every declared field from the payload. A field absent
// from the payload resets to false; this mirrors the behavior admin
// clients rely on, so it is deliberate. Side records are updated in
// place when the field already carries one, created and linked
// otherwise. The whole update is one transaction.
func (s *ChecklistService) Update(ctx context.Context, kind, id string, input StageInput) (*entity.Stage, error) {
	def, ok := entity.DefinitionFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown stage kind %q", kind)
	}
	if err := input.validate(def); err != nil {
		return nil, err
	}

	stage, err := s.stageRepo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	checksByName := make(map[string]*entity.StageCheck, len(stage.Checks))
	for i := range stage.Checks {
		checksByName[stage.Checks[i].Name] = &stage.Checks[i]
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.MassProductionID != nil {
			if err := tx.Model(&entity.Stage{}).Where("id = ?", stage.ID).
				Update("mass_production_id", *input.MassProductionID).Error; err != nil {
				return err
			}
		}
		for _, name := range def.Fields {
			in := input.Fields[name]
			check := checksByName[name]
			if check == nil {
				// Field list grew since this stage was stored; backfill the row.
				check = &entity.StageCheck{
					ID:      uuid.New().String(),
					StageID: stage.ID,
					Name:    name,
				}
				if err := tx.Create(check).Error; err != nil {
					return err
				}
			}

			updates := map[string]interface{}{"value": in.Value}

			if hasSidePayload(def.SideKind, in) {
				existing := check.SideRecordID()
				if existing != nil {
					if err := updateSideRecord(tx, def.SideKind, *existing, in); err != nil {
						return err
					}
				} else {
					sideID, err := createSideRecord(tx, def.SideKind, in)
					if err != nil {
						return err
					}
					if def.SideKind == entity.SideKindTask {
						updates["task_id"] = sideID
					} else {
						updates["validation_id"] = sideID
					}
				}
			}

			if err := tx.Model(&entity.StageCheck{}).Where("id = ?", check.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entity.Stage{}).Where("id = ?", stage.ID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", kind, err)
	}

	return s.stageRepo.FindByID(ctx, kind, id)
}

// Delete cascades: side records first, then check rows, then the stage,
// all in one transaction.
func (s *ChecklistService) Delete(ctx context.Context, kind, id string) error {
	def, ok := entity.DefinitionFor(kind)
	if !ok {
		return fmt.Errorf("unknown stage kind %q", kind)
	}

	stage, err := s.stageRepo.FindByID(ctx, kind, id)
	if err != nil {
		return err
	}

	var taskIDs, validationIDs []string
	for _, check := range stage.Checks {
		if check.TaskID != nil {
			taskIDs = append(taskIDs, *check.TaskID)
		}
		if check.ValidationID != nil {
			validationIDs = append(validationIDs, *check.ValidationID)
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(taskIDs) > 0 {
			if err := tx.Where("id IN ?", taskIDs).Delete(&entity.Task{}).Error; err != nil {
				return err
			}
		}
		if len(validationIDs) > 0 {
			if err := tx.Where("id IN ?", validationIDs).Delete(&entity.Validation{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("stage_id = ?", stage.ID).Delete(&entity.StageCheck{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ? AND kind = ?", stage.ID, def.Kind).Delete(&entity.Stage{}).Error; err != nil {
			return err
		}
		return nil
	})
}

// Get loads one stage.
func (s *ChecklistService) Get(ctx context.Context, kind, id string) (*entity.Stage, error) {
	if _, ok := entity.DefinitionFor(kind); !ok {
		return nil, fmt.Errorf("unknown stage kind %q", kind)
	}
	return s.stageRepo.FindByID(ctx, kind, id)
}

// List pages stages of one kind.
func (s *ChecklistService) List(ctx context.Context, kind string, page, pageSize int) ([]entity.Stage, int64, error) {
	if _, ok := entity.DefinitionFor(kind); !ok {
		return nil, 0, fmt.Errorf("unknown stage kind %q", kind)
	}
	return s.stageRepo.FindAll(ctx, kind, page, pageSize)
}

// SetTaskFile records the stored object key of a task's evidence file.
func (s *ChecklistService) SetTaskFile(ctx context.Context, taskID, path string) error {
	return s.taskRepo.UpdateFilePath(ctx, taskID, path)
}

func hasSidePayload(sideKind string, in FieldInput) bool {
	if sideKind == entity.SideKindTask {
		return in.Task != nil
	}
	return in.Validation != nil
}

func createSideRecord(tx *gorm.DB, sideKind string, in FieldInput) (*string, error) {
	switch sideKind {
	case entity.SideKindTask:
		if in.Task == nil {
			return nil, nil
		}
		task := &entity.Task{
			ID:            uuid.New().String(),
			Check:         in.Task.Check,
			Role:          in.Task.Role,
			AssignedUsers: in.Task.AssignedUsers,
			Planned:       in.Task.Planned,
			Done:          in.Task.Done,
			Comments:      in.Task.Comments,
		}
		if err := tx.Create(task).Error; err != nil {
			return nil, fmt.Errorf("create task: %w", err)
		}
		return &task.ID, nil
	case entity.SideKindValidation:
		if in.Validation == nil {
			return nil, nil
		}
		validation := &entity.Validation{
			ID:              uuid.New().String(),
			TKO:             in.Validation.TKO,
			OT:              in.Validation.OT,
			OTOP:            in.Validation.OTOP,
			IS:              in.Validation.IS,
			SOP:             in.Validation.SOP,
			OkNok:           in.Validation.OkNok,
			Who:             in.Validation.Who,
			When:            in.Validation.When,
			ValidationCheck: in.Validation.ValidationCheck,
			Comments:        in.Validation.Comments,
		}
		if err := tx.Create(validation).Error; err != nil {
			return nil, fmt.Errorf("create validation: %w", err)
		}
		return &validation.ID, nil
	}
	return nil, fmt.Errorf("unknown side kind %q", sideKind)
}

func updateSideRecord(tx *gorm.DB, sideKind, id string, in FieldInput) error {
	switch sideKind {
	case entity.SideKindTask:
		updates := map[string]interface{}{
			"check":          in.Task.Check,
			"role":           in.Task.Role,
			"assigned_users": entity.StringArray(in.Task.AssignedUsers),
			"planned":        in.Task.Planned,
			"done":           in.Task.Done,
			"comments":       in.Task.Comments,
		}
		return tx.Model(&entity.Task{}).Where("id = ?", id).Updates(updates).Error
	case entity.SideKindValidation:
		updates := map[string]interface{}{
			"tko":              in.Validation.TKO,
			"ot":               in.Validation.OT,
			"ot_op":            in.Validation.OTOP,
			"is":               in.Validation.IS,
			"sop":              in.Validation.SOP,
			"ok_nok":           in.Validation.OkNok,
			"who":              in.Validation.Who,
			"when":             in.Validation.When,
			"validation_check": in.Validation.ValidationCheck,
			"comments":         in.Validation.Comments,
		}
		return tx.Model(&entity.Validation{}).Where("id = ?", id).Updates(updates).Error
	}
	return fmt.Errorf("unknown side kind %q", sideKind)
}
