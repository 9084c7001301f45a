package repository

import (
	"errors"

	"gorm.io/gorm"
)

// NewGormRepositories creates the database-backed repositories
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Projects:    NewProjectRepository(db),
		TeamMembers: NewTeamMemberRepository(db),
		Tasks:       NewTaskRepository(db),
		Assignments: NewProjectAssignmentRepository(db),
	}
}

// translateError maps gorm errors onto repository errors
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// deleteByID deletes one row of model's table and reports ErrNotFound when nothing matched
func deleteByID(db *gorm.DB, model any, id uint64) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
