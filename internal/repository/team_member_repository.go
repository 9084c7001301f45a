package repository

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/database"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamMemberRepository is a GORM implementation of TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

func (r *GormTeamMemberRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	members := []models.TeamMember{}
	if err := r.db.WithContext(ctx).Scopes(database.NewestFirst).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormTeamMemberRepository) FindByID(ctx context.Context, id uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &member, nil
}

func (r *GormTeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *GormTeamMemberRepository) Update(ctx context.Context, id uint64, patch models.TeamMemberPatch) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&member, id).Error; err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		patch.Apply(&member)
		return tx.Save(&member).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &member, nil
}

// Delete deletes a team member. Their assignments and task references are left dangling.
func (r *GormTeamMemberRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(r.db.WithContext(ctx), &models.TeamMember{}, id)
}
