package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"gorm.io/gorm"
)

func setupAllocationTest(t *testing.T) (*AllocationService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	if err := db.AutoMigrate(
		&entity.Supplier{},
		&entity.Material{},
		&entity.MaterialHistory{},
		&entity.Machine{},
		&entity.MachineMaterial{},
		&entity.MachineMaterialHistory{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	repos := repository.NewRepositories(db)
	svc := NewAllocationService(repos.Material, repos.Machine, db)
	return svc, db
}

func seedMaterial(t *testing.T, db *gorm.DB, id string, stock float64) {
	t.Helper()
	if err := db.Create(&entity.Material{
		ID:           id,
		Reference:    "REF-" + id,
		Description:  "Test material",
		CurrentStock: stock,
	}).Error; err != nil {
		t.Fatalf("Failed to seed material: %v", err)
	}
}

func seedMachine(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	if err := db.Create(&entity.Machine{
		ID:     id,
		Name:   "Machine " + id,
		Status: "active",
	}).Error; err != nil {
		t.Fatalf("Failed to seed machine: %v", err)
	}
}

func TestAllocateStockAcrossMachines(t *testing.T) {
	svc, db := setupAllocationTest(t)
	ctx := context.Background()

	seedMaterial(t, db, "mat-1", 100)
	seedMachine(t, db, "mach-1")
	seedMachine(t, db, "mach-2")

	material, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{
		{MachineID: "mach-1", Stock: 40, Comment: "line 1"},
		{MachineID: "mach-2", Stock: 50, Comment: "line 2"},
	}, "user-1")
	if err != nil {
		t.Fatalf("AllocateStock failed: %v", err)
	}

	if material.CurrentStock != 10 {
		t.Errorf("Expected 10 left in pool, got %v", material.CurrentStock)
	}

	var rows []entity.MachineMaterial
	db.Where("material_id = ?", "mat-1").Order("machine_id").Find(&rows)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 ledger rows, got %d", len(rows))
	}
	if rows[0].AllocatedStock != 40 || rows[1].AllocatedStock != 50 {
		t.Errorf("Expected allocations 40/50, got %v/%v", rows[0].AllocatedStock, rows[1].AllocatedStock)
	}

	var historyCount int64
	db.Model(&entity.MachineMaterialHistory{}).Count(&historyCount)
	if historyCount != 2 {
		t.Errorf("Expected 2 ledger history entries, got %d", historyCount)
	}
}

func TestAllocateStockRepeatAddsToRow(t *testing.T) {
	svc, db := setupAllocationTest(t)
	ctx := context.Background()

	seedMaterial(t, db, "mat-1", 100)
	seedMachine(t, db, "mach-1")

	if _, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{{MachineID: "mach-1", Stock: 30}}, "user-1"); err != nil {
		t.Fatalf("first allocation failed: %v", err)
	}
	material, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{{MachineID: "mach-1", Stock: 20}}, "user-1")
	if err != nil {
		t.Fatalf("second allocation failed: %v", err)
	}

	if material.CurrentStock != 50 {
		t.Errorf("Expected 50 left in pool, got %v", material.CurrentStock)
	}

	var mm entity.MachineMaterial
	db.Where("machine_id = ? AND material_id = ?", "mach-1", "mat-1").First(&mm)
	if mm.AllocatedStock != 50 {
		t.Errorf("Expected single row holding 50, got %v", mm.AllocatedStock)
	}
}

func TestAllocateStockOverAllocationRollsBack(t *testing.T) {
	svc, db := setupAllocationTest(t)
	ctx := context.Background()

	seedMaterial(t, db, "mat-1", 100)
	seedMachine(t, db, "mach-1")
	seedMachine(t, db, "mach-2")

	_, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{
		{MachineID: "mach-1", Stock: 60},
		{MachineID: "mach-2", Stock: 60},
	}, "user-1")
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("Expected ErrInsufficientStock, got %v", err)
	}

	// Nothing changed: pool intact, no ledger rows, no histories.
	var material entity.Material
	db.Where("id = ?", "mat-1").First(&material)
	if material.CurrentStock != 100 {
		t.Errorf("Expected pool untouched at 100, got %v", material.CurrentStock)
	}
	var rowCount, histCount int64
	db.Model(&entity.MachineMaterial{}).Count(&rowCount)
	db.Model(&entity.MaterialHistory{}).Count(&histCount)
	if rowCount != 0 {
		t.Errorf("Expected 0 ledger rows after rollback, got %d", rowCount)
	}
	if histCount != 0 {
		t.Errorf("Expected 0 material histories after rollback, got %d", histCount)
	}
}

func TestAllocateStockRejectsNonPositive(t *testing.T) {
	svc, db := setupAllocationTest(t)
	ctx := context.Background()

	seedMaterial(t, db, "mat-1", 100)
	seedMachine(t, db, "mach-1")

	if _, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{{MachineID: "mach-1", Stock: 0}}, "user-1"); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity for zero stock, got %v", err)
	}
	if _, err := svc.AllocateStock(ctx, "mat-1", nil, "user-1"); err == nil {
		t.Error("Expected error for empty allocation list")
	}
}

func TestUpdateAllocationMovesDiff(t *testing.T) {
	svc, db := setupAllocationTest(t)
	ctx := context.Background()

	seedMaterial(t, db, "mat-1", 100)
	seedMachine(t, db, "mach-1")
	if _, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{{MachineID: "mach-1", Stock: 40}}, "user-1"); err != nil {
		t.Fatalf("allocation failed: %v", err)
	}

	// Raise 40 -> 70: draws 30 from the pool (60 -> 30).
	mm, err := svc.UpdateAllocation(ctx, "mach-1", "mat-1", 70, "user-1", "raise")
	if err != nil {
		t.Fatalf("UpdateAllocation failed: %v", err)
	}
	if mm.AllocatedStock != 70 {
		t.Errorf("Expected allocation 70, got %v", mm.AllocatedStock)
	}
	var material entity.Material
	db.Where("id = ?", "mat-1").First(&material)
	if material.CurrentStock != 30 {
		t.Errorf("Expected pool 30, got %v", material.CurrentStock)
	}

	// Lower 70 -> 20: returns 50 to the pool (30 -> 80).
	if _, err := svc.UpdateAllocation(ctx, "mach-1", "mat-1", 20, "user-1", "lower"); err != nil {
		t.Fatalf("UpdateAllocation failed: %v", err)
	}
	db.Where("id = ?", "mat-1").First(&material)
	if material.CurrentStock != 80 {
		t.Errorf("Expected pool 80, got %v", material.CurrentStock)
	}

	// Raising past the pool fails.
	if _, err := svc.UpdateAllocation(ctx, "mach-1", "mat-1", 200, "user-1", "too much"); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("Expected ErrInsufficientStock, got %v", err)
	}
}

func TestReleaseAllocationReturnsStock(t *testing.T) {
	svc, db := setupAllocationTest(t)
	ctx := context.Background()

	seedMaterial(t, db, "mat-1", 100)
	seedMachine(t, db, "mach-1")
	if _, err := svc.AllocateStock(ctx, "mat-1", []AllocationItem{{MachineID: "mach-1", Stock: 40}}, "user-1"); err != nil {
		t.Fatalf("allocation failed: %v", err)
	}

	if err := svc.ReleaseAllocation(ctx, "mach-1", "mat-1", "user-1"); err != nil {
		t.Fatalf("ReleaseAllocation failed: %v", err)
	}

	var material entity.Material
	db.Where("id = ?", "mat-1").First(&material)
	if material.CurrentStock != 100 {
		t.Errorf("Expected full pool back at 100, got %v", material.CurrentStock)
	}

	var rowCount int64
	db.Model(&entity.MachineMaterial{}).Count(&rowCount)
	if rowCount != 0 {
		t.Errorf("Expected ledger row removed, got %d", rowCount)
	}

	// Releasing again reports not found.
	if err := svc.ReleaseAllocation(ctx, "mach-1", "mat-1", "user-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second release, got %v", err)
	}
}
