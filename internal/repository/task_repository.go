package repository

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/database"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List returns all tasks, newest first
func (r *GormTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	return r.find(ctx)
}

// ListByProject returns the tasks of a project
func (r *GormTaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error) {
	return r.find(ctx, database.WhereEquals("project_id", projectID))
}

// ListByMember returns the tasks assigned to a team member
func (r *GormTaskRepository) ListByMember(ctx context.Context, memberID uint64) ([]models.Task, error) {
	return r.find(ctx, database.WhereEquals("assignee_id", memberID))
}

func (r *GormTaskRepository) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]models.Task, error) {
	tasks := []models.Task{}
	query := r.db.WithContext(ctx).Scopes(scopes...).Scopes(database.NewestFirst)
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update merges the patch into the stored task
func (r *GormTaskRepository) Update(ctx context.Context, id uint64, patch models.TaskPatch) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		patch.Apply(&task)
		return tx.Save(&task).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(r.db.WithContext(ctx), &models.Task{}, id)
}
