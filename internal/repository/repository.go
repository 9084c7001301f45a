package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/project-dashboard-api/internal/models"
)

// ErrNotFound is returned when the requested record does not exist in the store
var ErrNotFound = errors.New("record not found")

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// List returns all projects, newest first
	List(ctx context.Context) ([]models.Project, error)

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uint64) (*models.Project, error)

	// Create stores a new project and assigns its ID
	Create(ctx context.Context, project *models.Project) error

	// Update merges the patch into an existing project
	Update(ctx context.Context, id uint64, patch models.ProjectPatch) (*models.Project, error)

	// Delete removes a project
	Delete(ctx context.Context, id uint64) error
}

// TeamMemberRepository defines the interface for team member data access
type TeamMemberRepository interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	FindByID(ctx context.Context, id uint64) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, id uint64, patch models.TeamMemberPatch) (*models.TeamMember, error)
	Delete(ctx context.Context, id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	List(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// ListByProject returns the tasks of a project, never nil
	ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error)

	// ListByMember returns the tasks assigned to a team member, never nil
	ListByMember(ctx context.Context, memberID uint64) ([]models.Task, error)

	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, id uint64, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id uint64) error
}

// ProjectAssignmentRepository defines the interface for project assignment data access
type ProjectAssignmentRepository interface {
	List(ctx context.Context) ([]models.ProjectAssignment, error)
	FindByID(ctx context.Context, id uint64) (*models.ProjectAssignment, error)

	// FindByPair finds the newest assignment of a member to a project
	FindByPair(ctx context.Context, projectID, memberID uint64) (*models.ProjectAssignment, error)

	ListByProject(ctx context.Context, projectID uint64) ([]models.ProjectAssignment, error)
	ListByMember(ctx context.Context, memberID uint64) ([]models.ProjectAssignment, error)
	Create(ctx context.Context, assignment *models.ProjectAssignment) error
	Update(ctx context.Context, id uint64, patch models.ProjectAssignmentPatch) (*models.ProjectAssignment, error)
	Delete(ctx context.Context, id uint64) error
}

// Repositories bundles one store per entity. All four come from the same backend.
type Repositories struct {
	Projects    ProjectRepository
	TeamMembers TeamMemberRepository
	Tasks       TaskRepository
	Assignments ProjectAssignmentRepository
}
