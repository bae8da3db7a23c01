package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"gorm.io/gorm"
)

func setupChecklistTest(t *testing.T) (*ChecklistService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewChecklistService(repos.Stage, repos.Task, db), db
}

func TestSetTaskFileLinksAttachment(t *testing.T) {
	svc, db := setupChecklistTest(t)
	ctx := context.Background()

	stage, err := svc.Create(ctx, entity.KindKickOff, StageInput{
		Fields: map[string]FieldInput{
			"time_schedule_approved": {
				Value: true,
				Task:  &TaskInput{Check: true, Role: "project_manager"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var taskID string
	for _, check := range stage.Checks {
		if check.TaskID != nil {
			taskID = *check.TaskID
		}
	}
	if taskID == "" {
		t.Fatal("Expected a task side record")
	}

	if err := svc.SetTaskFile(ctx, taskID, "tasks/evidence.pdf"); err != nil {
		t.Fatalf("SetTaskFile failed: %v", err)
	}

	var task entity.Task
	if err := db.Where("id = ?", taskID).First(&task).Error; err != nil {
		t.Fatalf("load task: %v", err)
	}
	if task.FilePath != "tasks/evidence.pdf" {
		t.Errorf("Expected file path linked, got %q", task.FilePath)
	}
}

func TestSetTaskFileUnknownTask(t *testing.T) {
	svc, _ := setupChecklistTest(t)

	err := svc.SetTaskFile(context.Background(), "no-such-task", "tasks/evidence.pdf")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
