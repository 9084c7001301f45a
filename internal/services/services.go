package services

import (
	"errors"
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

// now is replaced in tests
var now = time.Now

// Services bundles the entity services and the workspace loader over one store backend
type Services struct {
	Projects    *ProjectService
	TeamMembers *TeamMemberService
	Tasks       *TaskService
	Assignments *AssignmentService
	Workspace   *WorkspaceService
}

// New wires every service to repos. drafter may be nil when AI drafting is not configured.
func New(repos repository.Repositories, drafter TaskDrafter) *Services {
	return &Services{
		Projects:    NewProjectService(repos.Projects),
		TeamMembers: NewTeamMemberService(repos.TeamMembers),
		Tasks:       NewTaskService(repos.Tasks, repos.Projects, drafter),
		Assignments: NewAssignmentService(repos.Assignments),
		Workspace:   NewWorkspaceService(repos),
	}
}

// getOrNil turns a not-found lookup into a nil record
func getOrNil[T any](record *T, err error, entity string, id uint64) (*T, error) {
	if err == nil {
		return record, nil
	}
	if isNotFound(err) {
		return nil, nil
	}
	return nil, fail(entity, "get", id, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
