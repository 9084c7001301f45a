package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	applog "github.com/yukikurage/project-dashboard-api/internal/logger"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

const entityAssignment = "project assignment"

// AssignmentService handles project assignment business logic
type AssignmentService struct {
	repo repository.ProjectAssignmentRepository
}

func NewAssignmentService(repo repository.ProjectAssignmentRepository) *AssignmentService {
	return &AssignmentService{repo: repo}
}

// CreateAssignmentInput represents input for placing a member on a project
type CreateAssignmentInput struct {
	ProjectID uint64     `json:"project_id" validate:"required"`
	MemberID  uint64     `json:"member_id" validate:"required"`
	Role      string     `json:"role" validate:"required"`
	JoinedAt  *time.Time `json:"joined_at"`
}

func (s *AssignmentService) List(ctx context.Context) ([]models.ProjectAssignment, error) {
	assignments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(entityAssignment, "list", 0, err)
	}
	return assignments, nil
}

func (s *AssignmentService) GetByID(ctx context.Context, id uint64) (*models.ProjectAssignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	return getOrNil(assignment, err, entityAssignment, id)
}

func (s *AssignmentService) ListByProject(ctx context.Context, projectID uint64) ([]models.ProjectAssignment, error) {
	assignments, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fail(entityAssignment, "list", 0, err)
	}
	return assignments, nil
}

func (s *AssignmentService) ListByMember(ctx context.Context, memberID uint64) ([]models.ProjectAssignment, error) {
	assignments, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fail(entityAssignment, "list", 0, err)
	}
	return assignments, nil
}

// Create stores an assignment. Whether the project and the member exist is not checked.
func (s *AssignmentService) Create(ctx context.Context, input CreateAssignmentInput) (*models.ProjectAssignment, error) {
	input.Role = strings.TrimSpace(input.Role)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	assignment := &models.ProjectAssignment{
		ProjectID: input.ProjectID,
		MemberID:  input.MemberID,
		Role:      input.Role,
		JoinedAt:  now().UTC(),
	}
	if input.JoinedAt != nil {
		assignment.JoinedAt = *input.JoinedAt
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, fail(entityAssignment, "create", 0, err)
	}
	return assignment, nil
}

func (s *AssignmentService) Update(ctx context.Context, id uint64, patch models.ProjectAssignmentPatch) (*models.ProjectAssignment, error) {
	patch.Role = trimmed(patch.Role)
	if patch.Role != nil && *patch.Role == "" {
		return nil, newValidationError("role", "cannot be empty")
	}

	assignment, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fail(entityAssignment, "update", id, err)
	}
	return assignment, nil
}

func (s *AssignmentService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(entityAssignment, "delete", id, err)
	}
	return nil
}

// Unassign removes the newest assignment of memberID to projectID
func (s *AssignmentService) Unassign(ctx context.Context, projectID, memberID uint64) error {
	assignment, err := s.repo.FindByPair(ctx, projectID, memberID)
	if err != nil {
		if isNotFound(err) {
			err = &NotFoundError{
				Entity: entityAssignment,
				Key:    fmt.Sprintf("of member %d to project %d", memberID, projectID),
			}
			applog.Log.WithFields(logrus.Fields{
				"entity":     entityAssignment,
				"op":         "unassign",
				"project_id": projectID,
				"member_id":  memberID,
			}).Warn("member is not assigned to project")
			return err
		}
		return fail(entityAssignment, "unassign", 0, err)
	}
	return s.Delete(ctx, assignment.ID)
}
