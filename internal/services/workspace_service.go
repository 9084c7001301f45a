package services

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Workspace is every record of every entity
type Workspace struct {
	Projects    []models.Project
	TeamMembers []models.TeamMember
	Tasks       []models.Task
	Assignments []models.ProjectAssignment
}

// ProjectWorkspace is one project with the records its detail view joins against
type ProjectWorkspace struct {
	Project     models.Project
	Tasks       []models.Task
	Assignments []models.ProjectAssignment
	TeamMembers []models.TeamMember
}

// MemberWorkspace is one team member with its assignments and all projects
type MemberWorkspace struct {
	Member      models.TeamMember
	Assignments []models.ProjectAssignment
	Projects    []models.Project
}

// WorkspaceService loads the record sets a page needs. Fetches run concurrently and
// the load completes only when all of them have; the first failure cancels the rest.
type WorkspaceService struct {
	repos repository.Repositories
}

func NewWorkspaceService(repos repository.Repositories) *WorkspaceService {
	return &WorkspaceService{repos: repos}
}

// Load fetches all projects, members, tasks and assignments
func (s *WorkspaceService) Load(ctx context.Context) (*Workspace, error) {
	var ws Workspace
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		ws.Projects, err = s.repos.Projects.List(ctx)
		return wrapList(entityProject, err)
	})
	g.Go(func() (err error) {
		ws.TeamMembers, err = s.repos.TeamMembers.List(ctx)
		return wrapList(entityTeamMember, err)
	})
	g.Go(func() (err error) {
		ws.Tasks, err = s.repos.Tasks.List(ctx)
		return wrapList(entityTask, err)
	})
	g.Go(func() (err error) {
		ws.Assignments, err = s.repos.Assignments.List(ctx)
		return wrapList(entityAssignment, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ws, nil
}

// LoadProject fetches a project, its tasks, its assignments and all members
func (s *WorkspaceService) LoadProject(ctx context.Context, id uint64) (*ProjectWorkspace, error) {
	var ws ProjectWorkspace
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		project, err := s.repos.Projects.FindByID(ctx, id)
		if err != nil {
			return fail(entityProject, "get", id, err)
		}
		ws.Project = *project
		return nil
	})
	g.Go(func() (err error) {
		ws.Tasks, err = s.repos.Tasks.ListByProject(ctx, id)
		return wrapList(entityTask, err)
	})
	g.Go(func() (err error) {
		ws.Assignments, err = s.repos.Assignments.ListByProject(ctx, id)
		return wrapList(entityAssignment, err)
	})
	g.Go(func() (err error) {
		ws.TeamMembers, err = s.repos.TeamMembers.List(ctx)
		return wrapList(entityTeamMember, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ws, nil
}

// LoadMember fetches a member, its assignments and all projects
func (s *WorkspaceService) LoadMember(ctx context.Context, id uint64) (*MemberWorkspace, error) {
	var ws MemberWorkspace
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		member, err := s.repos.TeamMembers.FindByID(ctx, id)
		if err != nil {
			return fail(entityTeamMember, "get", id, err)
		}
		ws.Member = *member
		return nil
	})
	g.Go(func() (err error) {
		ws.Assignments, err = s.repos.Assignments.ListByMember(ctx, id)
		return wrapList(entityAssignment, err)
	})
	g.Go(func() (err error) {
		ws.Projects, err = s.repos.Projects.List(ctx)
		return wrapList(entityProject, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ws, nil
}

func wrapList(entity string, err error) error {
	if err == nil {
		return nil
	}
	return fail(entity, "list", 0, err)
}
