package service

import (
	"context"
	"testing"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"gorm.io/gorm"
)

func setupReadinessTest(t *testing.T) (*ReadinessService, *ChecklistService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewReadinessService(repos.Readiness, db),
		NewChecklistService(repos.Stage, repos.Task, db),
		db
}

func TestReadinessCreateInstantiatesDisciplines(t *testing.T) {
	svc, _, db := setupReadinessTest(t)
	ctx := context.Background()

	readiness, err := svc.Create(ctx, "Project X")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	refs := readiness.StageRefs()
	for _, kind := range entity.ReadinessKinds {
		stageID := *refs[kind]
		if stageID == nil {
			t.Errorf("Discipline %q has no stage reference", kind)
			continue
		}

		var stage entity.Stage
		if err := db.Where("id = ?", *stageID).First(&stage).Error; err != nil {
			t.Errorf("Discipline %q stage missing: %v", kind, err)
			continue
		}
		if stage.Kind != kind {
			t.Errorf("Expected stage kind %q, got %q", kind, stage.Kind)
		}

		def, _ := entity.DefinitionFor(kind)
		var checkCount int64
		db.Model(&entity.StageCheck{}).Where("stage_id = ?", *stageID).Count(&checkCount)
		if int(checkCount) != len(def.Fields) {
			t.Errorf("Discipline %q: expected %d check rows, got %d", kind, len(def.Fields), checkCount)
		}
	}

	var stageCount int64
	db.Model(&entity.Stage{}).Count(&stageCount)
	if int(stageCount) != len(entity.ReadinessKinds) {
		t.Errorf("Expected %d stages, got %d", len(entity.ReadinessKinds), stageCount)
	}
}

func TestReadinessDeleteCascadesDisciplines(t *testing.T) {
	svc, checklists, db := setupReadinessTest(t)
	ctx := context.Background()

	readiness, err := svc.Create(ctx, "Project Y")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, readiness.ID, checklists); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var stageCount, checkCount, readinessCount int64
	db.Model(&entity.Stage{}).Count(&stageCount)
	db.Model(&entity.StageCheck{}).Count(&checkCount)
	db.Model(&entity.Readiness{}).Where("id = ?", readiness.ID).Count(&readinessCount)
	if stageCount != 0 {
		t.Errorf("Expected 0 stages after delete, got %d", stageCount)
	}
	if checkCount != 0 {
		t.Errorf("Expected 0 check rows after delete, got %d", checkCount)
	}
	if readinessCount != 0 {
		t.Errorf("Expected readiness removed, got %d", readinessCount)
	}
}
