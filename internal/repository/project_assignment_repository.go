package repository

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/database"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectAssignmentRepository is a GORM implementation of ProjectAssignmentRepository
type GormProjectAssignmentRepository struct {
	db *gorm.DB
}

// NewProjectAssignmentRepository creates a new ProjectAssignmentRepository
func NewProjectAssignmentRepository(db *gorm.DB) ProjectAssignmentRepository {
	return &GormProjectAssignmentRepository{db: db}
}

func (r *GormProjectAssignmentRepository) List(ctx context.Context) ([]models.ProjectAssignment, error) {
	return r.find(ctx)
}

func (r *GormProjectAssignmentRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.ProjectAssignment, error) {
	return r.find(ctx, database.WhereEquals("project_id", projectID))
}

func (r *GormProjectAssignmentRepository) ListByMember(ctx context.Context, memberID uint64) ([]models.ProjectAssignment, error) {
	return r.find(ctx, database.WhereEquals("member_id", memberID))
}

func (r *GormProjectAssignmentRepository) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]models.ProjectAssignment, error) {
	assignments := []models.ProjectAssignment{}
	query := r.db.WithContext(ctx).Scopes(scopes...).Scopes(database.NewestFirst)
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *GormProjectAssignmentRepository) FindByID(ctx context.Context, id uint64) (*models.ProjectAssignment, error) {
	var assignment models.ProjectAssignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &assignment, nil
}

// FindByPair finds the newest assignment of a member to a project
func (r *GormProjectAssignmentRepository) FindByPair(ctx context.Context, projectID, memberID uint64) (*models.ProjectAssignment, error) {
	var assignment models.ProjectAssignment
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND member_id = ?", projectID, memberID).
		Scopes(database.NewestFirst).
		First(&assignment).Error; err != nil {
		return nil, translateError(err)
	}
	return &assignment, nil
}

func (r *GormProjectAssignmentRepository) Create(ctx context.Context, assignment *models.ProjectAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *GormProjectAssignmentRepository) Update(ctx context.Context, id uint64, patch models.ProjectAssignmentPatch) (*models.ProjectAssignment, error) {
	var assignment models.ProjectAssignment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&assignment, id).Error; err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		patch.Apply(&assignment)
		return tx.Save(&assignment).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &assignment, nil
}

func (r *GormProjectAssignmentRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(r.db.WithContext(ctx), &models.ProjectAssignment{}, id)
}
