package service

import (
	"context"
	"testing"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCallTest(t *testing.T) (*CallService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	if err := db.AutoMigrate(
		&entity.Machine{},
		&entity.Material{},
		&entity.Call{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	repos := repository.NewRepositories(db)
	svc := NewCallService(repos.Call, zap.NewNop())
	return svc, db
}

func backdateCall(t *testing.T, db *gorm.DB, id string, minutes int) {
	t.Helper()
	createdAt := time.Now().Add(-time.Duration(minutes) * time.Minute)
	if err := db.Model(&entity.Call{}).Where("id = ?", id).
		Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("Failed to backdate call: %v", err)
	}
}

func TestCallCreateDefaultsPending(t *testing.T) {
	svc, _ := setupCallTest(t)
	ctx := context.Background()

	call, err := svc.Create(ctx, CallInput{Quantity: 5, Duration: 30}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if call.Status != entity.CallStatusPendiente {
		t.Errorf("Expected status Pendiente, got %v", call.Status)
	}
	if call.CreatedBy != "user-1" {
		t.Errorf("Expected created_by user-1, got %v", call.CreatedBy)
	}

	if _, err := svc.Create(ctx, CallInput{Duration: 0}, "user-1"); err == nil {
		t.Error("Expected error for non-positive duration")
	}
}

func TestCallComplete(t *testing.T) {
	svc, _ := setupCallTest(t)
	ctx := context.Background()

	call, err := svc.Create(ctx, CallInput{Quantity: 5, Duration: 30}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	done, err := svc.Complete(ctx, call.ID, "user-2")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.Status != entity.CallStatusRealizada {
		t.Errorf("Expected status Realizada, got %v", done.Status)
	}
	if done.CompletedAt == nil || done.CompletedBy != "user-2" {
		t.Errorf("Expected completion stamp, got %v by %q", done.CompletedAt, done.CompletedBy)
	}

	// A completed call cannot be completed again.
	if _, err := svc.Complete(ctx, call.ID, "user-3"); err == nil {
		t.Error("Expected error completing a non-pending call")
	}
}

func TestCallSweepExpiresOnlyElapsedPending(t *testing.T) {
	svc, db := setupCallTest(t)
	ctx := context.Background()

	expired, err := svc.Create(ctx, CallInput{Duration: 10}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	backdateCall(t, db, expired.ID, 20)

	fresh, err := svc.Create(ctx, CallInput{Duration: 60}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completed, err := svc.Create(ctx, CallInput{Duration: 10}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Complete(ctx, completed.ID, "user-1"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	backdateCall(t, db, completed.ID, 20)

	count, err := svc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 call expired, got %d", count)
	}

	got, _ := svc.Get(ctx, expired.ID)
	if got.Status != entity.CallStatusExpirada {
		t.Errorf("Expected elapsed call Expirada, got %v", got.Status)
	}
	got, _ = svc.Get(ctx, fresh.ID)
	if got.Status != entity.CallStatusPendiente {
		t.Errorf("Expected fresh call still Pendiente, got %v", got.Status)
	}
	got, _ = svc.Get(ctx, completed.ID)
	if got.Status != entity.CallStatusRealizada {
		t.Errorf("Expected completed call untouched, got %v", got.Status)
	}
}

func TestCallSweepIsIdempotent(t *testing.T) {
	svc, db := setupCallTest(t)
	ctx := context.Background()

	call, err := svc.Create(ctx, CallInput{Duration: 5}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	backdateCall(t, db, call.ID, 10)

	first, err := svc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}
	if first != 1 {
		t.Errorf("Expected first sweep to expire 1, got %d", first)
	}

	second, err := svc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if second != 0 {
		t.Errorf("Expected second sweep to expire 0, got %d", second)
	}
}
