package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CallService manages material call-offs and runs the background sweep
// that expires pending calls past their window.
type CallService struct {
	callRepo *repository.CallRepository
	logger   *zap.Logger
}

func NewCallService(callRepo *repository.CallRepository, logger *zap.Logger) *CallService {
	return &CallService{callRepo: callRepo, logger: logger}
}

// CallInput carries the writable call columns.
type CallInput struct {
	MachineID  *string `json:"machine_id"`
	MaterialID *string `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Duration   int     `json:"duration"`
}

func (s *CallService) Create(ctx context.Context, input CallInput, createdBy string) (*entity.Call, error) {
	if input.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	call := &entity.Call{
		ID:         uuid.New().String(),
		MachineID:  input.MachineID,
		MaterialID: input.MaterialID,
		Quantity:   input.Quantity,
		Status:     entity.CallStatusPendiente,
		Duration:   input.Duration,
		CreatedBy:  createdBy,
	}
	if err := s.callRepo.Create(ctx, call); err != nil {
		return nil, fmt.Errorf("create call: %w", err)
	}
	return s.callRepo.FindByID(ctx, call.ID)
}

func (s *CallService) Get(ctx context.Context, id string) (*entity.Call, error) {
	return s.callRepo.FindByID(ctx, id)
}

func (s *CallService) List(ctx context.Context, page, pageSize int, status string) ([]entity.Call, int64, error) {
	return s.callRepo.FindAll(ctx, page, pageSize, status)
}

// Complete flips a pending call to Realizada. Calls already swept to
// Expirada stay expired.
func (s *CallService) Complete(ctx context.Context, id, completedBy string) (*entity.Call, error) {
	call, err := s.callRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if call.Status != entity.CallStatusPendiente {
		return nil, fmt.Errorf("call is %s, only pending calls can be completed", call.Status)
	}

	now := time.Now()
	call.Status = entity.CallStatusRealizada
	call.CompletedAt = &now
	call.CompletedBy = completedBy
	call.Machine = nil
	call.Material = nil

	if err := s.callRepo.Update(ctx, call); err != nil {
		return nil, fmt.Errorf("complete call: %w", err)
	}
	return s.callRepo.FindByID(ctx, id)
}

func (s *CallService) Delete(ctx context.Context, id string) error {
	if _, err := s.callRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.callRepo.Delete(ctx, id)
}

// SweepExpired expires every pending call past its window. Idempotent:
// a second sweep finds nothing to flip.
func (s *CallService) SweepExpired(ctx context.Context) (int64, error) {
	return s.callRepo.ExpirePending(ctx, time.Now())
}

// StartSweeper runs SweepExpired on the given interval until ctx ends.
func (s *CallService) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				expired, err := s.SweepExpired(ctx)
				if err != nil {
					s.logger.Error("Call sweep failed", zap.Error(err))
					continue
				}
				if expired > 0 {
					s.logger.Info("Expired pending calls", zap.Int64("count", expired))
				}
			}
		}
	}()
}
