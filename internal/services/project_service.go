package services

import (
	"context"
	"strings"
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
	"github.com/yukikurage/project-dashboard-api/internal/utils"
)

const entityProject = "project"

// ProjectService handles project business logic
type ProjectService struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Code        string               `json:"code" validate:"required"`
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"start_date" validate:"required"`
	EndDate     time.Time            `json:"end_date" validate:"required,gtfield=StartDate"`
	Status      models.ProjectStatus `json:"status" validate:"omitempty,oneof=active completed on-hold"`
}

// List returns all projects, newest first
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(entityProject, "list", 0, err)
	}
	return projects, nil
}

// GetByID returns the project or nil when it does not exist
func (s *ProjectService) GetByID(ctx context.Context, id uint64) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	return getOrNil(project, err, entityProject, id)
}

// Create validates the input, derives the duration and stores the project
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.ProjectStatusActive
	}

	project := &models.Project{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Duration:    utils.CeilDays(input.StartDate, input.EndDate),
		Status:      input.Status,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fail(entityProject, "create", 0, err)
	}
	return project, nil
}

// Update applies a partial patch. When either date changes and no duration is given,
// the duration is recomputed from the resulting dates.
func (s *ProjectService) Update(ctx context.Context, id uint64, patch models.ProjectPatch) (*models.Project, error) {
	patch.Code = trimmed(patch.Code)
	patch.Name = trimmed(patch.Name)
	if err := validateProjectPatch(patch); err != nil {
		return nil, err
	}

	if (patch.StartDate != nil || patch.EndDate != nil) && patch.Duration == nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, fail(entityProject, "update", id, err)
		}
		start, end := existing.StartDate, existing.EndDate
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.EndDate != nil {
			end = *patch.EndDate
		}
		duration := utils.CeilDays(start, end)
		patch.Duration = &duration
	}

	project, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fail(entityProject, "update", id, err)
	}
	return project, nil
}

// Delete removes a project. Its tasks and assignments are left in place.
func (s *ProjectService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(entityProject, "delete", id, err)
	}
	return nil
}

func validateProjectPatch(patch models.ProjectPatch) error {
	verr := &ValidationError{Fields: map[string]string{}}
	if patch.Code != nil && *patch.Code == "" {
		verr.Fields["code"] = "cannot be empty"
	}
	if patch.Name != nil && *patch.Name == "" {
		verr.Fields["name"] = "cannot be empty"
	}
	if patch.Status != nil && !patch.Status.Valid() {
		verr.Fields["status"] = "must be one of: active, completed, on-hold"
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		verr.Fields["duration"] = "must be at least 0"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
