package repository

import (
	"context"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"gorm.io/gorm"
)

// TaskRepository persists task side records. Reads go through the stage
// aggregate, so the only direct access is the attachment link.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// UpdateFilePath points a task at its uploaded attachment.
func (r *TaskRepository) UpdateFilePath(ctx context.Context, id, path string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ?", id).
		Update("file_path", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
