package services

import (
	"context"
	"strings"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

const entityTeamMember = "team member"

// TeamMemberService handles team member business logic
type TeamMemberService struct {
	repo repository.TeamMemberRepository
}

func NewTeamMemberService(repo repository.TeamMemberRepository) *TeamMemberService {
	return &TeamMemberService{repo: repo}
}

// CreateTeamMemberInput represents input for creating a team member
type CreateTeamMemberInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func (s *TeamMemberService) List(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(entityTeamMember, "list", 0, err)
	}
	return members, nil
}

// GetByID returns the member or nil when it does not exist
func (s *TeamMemberService) GetByID(ctx context.Context, id uint64) (*models.TeamMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	return getOrNil(member, err, entityTeamMember, id)
}

func (s *TeamMemberService) Create(ctx context.Context, input CreateTeamMemberInput) (*models.TeamMember, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		Name:   input.Name,
		Email:  input.Email,
		Role:   strings.TrimSpace(input.Role),
		Avatar: input.Avatar,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fail(entityTeamMember, "create", 0, err)
	}
	return member, nil
}

func (s *TeamMemberService) Update(ctx context.Context, id uint64, patch models.TeamMemberPatch) (*models.TeamMember, error) {
	patch.Name = trimmed(patch.Name)
	patch.Email = trimmed(patch.Email)
	patch.Role = trimmed(patch.Role)

	if patch.Name != nil && *patch.Name == "" {
		return nil, newValidationError("name", "cannot be empty")
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return nil, err
		}
	}

	member, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fail(entityTeamMember, "update", id, err)
	}
	return member, nil
}

// Delete removes a member. Assignments and tasks pointing at it are left dangling.
func (s *TeamMemberService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(entityTeamMember, "delete", id, err)
	}
	return nil
}
