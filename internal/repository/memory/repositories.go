// Package memory implements the repositories over in-process tables, used for the
// mock backend and in tests.
package memory

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

// Dataset is the initial content of the in-memory store
type Dataset struct {
	Projects    []models.Project           `json:"projects"`
	TeamMembers []models.TeamMember        `json:"team_members"`
	Tasks       []models.Task              `json:"tasks"`
	Assignments []models.ProjectAssignment `json:"project_assignments"`
}

// NewRepositories creates in-memory repositories holding a copy of data
func NewRepositories(data Dataset) repository.Repositories {
	return repository.Repositories{
		Projects:    &ProjectRepository{t: newTable(projectID, identity[models.Project], data.Projects)},
		TeamMembers: &TeamMemberRepository{t: newTable(memberID, identity[models.TeamMember], data.TeamMembers)},
		Tasks:       &TaskRepository{t: newTable(taskID, cloneTask, data.Tasks)},
		Assignments: &ProjectAssignmentRepository{t: newTable(assignmentID, identity[models.ProjectAssignment], data.Assignments)},
	}
}

func projectID(p *models.Project) *uint64              { return &p.ID }
func memberID(m *models.TeamMember) *uint64            { return &m.ID }
func taskID(t *models.Task) *uint64                    { return &t.ID }
func assignmentID(a *models.ProjectAssignment) *uint64 { return &a.ID }

func identity[T any](v T) T { return v }

func cloneTask(t models.Task) models.Task {
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		t.AssigneeID = &id
	}
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

type ProjectRepository struct {
	t *table[models.Project]
}

func (r *ProjectRepository) List(_ context.Context) ([]models.Project, error) {
	return r.t.list(nil), nil
}

func (r *ProjectRepository) FindByID(_ context.Context, id uint64) (*models.Project, error) {
	return r.t.find(id)
}

func (r *ProjectRepository) Create(_ context.Context, project *models.Project) error {
	r.t.insert(project)
	return nil
}

func (r *ProjectRepository) Update(_ context.Context, id uint64, patch models.ProjectPatch) (*models.Project, error) {
	return r.t.update(id, func(p *models.Project) { patch.Apply(p) })
}

func (r *ProjectRepository) Delete(_ context.Context, id uint64) error {
	return r.t.remove(id)
}

type TeamMemberRepository struct {
	t *table[models.TeamMember]
}

func (r *TeamMemberRepository) List(_ context.Context) ([]models.TeamMember, error) {
	return r.t.list(nil), nil
}

func (r *TeamMemberRepository) FindByID(_ context.Context, id uint64) (*models.TeamMember, error) {
	return r.t.find(id)
}

func (r *TeamMemberRepository) Create(_ context.Context, member *models.TeamMember) error {
	r.t.insert(member)
	return nil
}

func (r *TeamMemberRepository) Update(_ context.Context, id uint64, patch models.TeamMemberPatch) (*models.TeamMember, error) {
	return r.t.update(id, func(m *models.TeamMember) { patch.Apply(m) })
}

func (r *TeamMemberRepository) Delete(_ context.Context, id uint64) error {
	return r.t.remove(id)
}

type TaskRepository struct {
	t *table[models.Task]
}

func (r *TaskRepository) List(_ context.Context) ([]models.Task, error) {
	return r.t.list(nil), nil
}

func (r *TaskRepository) ListByProject(_ context.Context, projectID uint64) ([]models.Task, error) {
	return r.t.list(func(t *models.Task) bool { return t.ProjectID == projectID }), nil
}

func (r *TaskRepository) ListByMember(_ context.Context, memberID uint64) ([]models.Task, error) {
	return r.t.list(func(t *models.Task) bool {
		return t.AssigneeID != nil && *t.AssigneeID == memberID
	}), nil
}

func (r *TaskRepository) FindByID(_ context.Context, id uint64) (*models.Task, error) {
	return r.t.find(id)
}

func (r *TaskRepository) Create(_ context.Context, task *models.Task) error {
	r.t.insert(task)
	return nil
}

func (r *TaskRepository) Update(_ context.Context, id uint64, patch models.TaskPatch) (*models.Task, error) {
	return r.t.update(id, func(t *models.Task) { patch.Apply(t) })
}

func (r *TaskRepository) Delete(_ context.Context, id uint64) error {
	return r.t.remove(id)
}

type ProjectAssignmentRepository struct {
	t *table[models.ProjectAssignment]
}

func (r *ProjectAssignmentRepository) List(_ context.Context) ([]models.ProjectAssignment, error) {
	return r.t.list(nil), nil
}

func (r *ProjectAssignmentRepository) ListByProject(_ context.Context, projectID uint64) ([]models.ProjectAssignment, error) {
	return r.t.list(func(a *models.ProjectAssignment) bool { return a.ProjectID == projectID }), nil
}

func (r *ProjectAssignmentRepository) ListByMember(_ context.Context, memberID uint64) ([]models.ProjectAssignment, error) {
	return r.t.list(func(a *models.ProjectAssignment) bool { return a.MemberID == memberID }), nil
}

func (r *ProjectAssignmentRepository) FindByID(_ context.Context, id uint64) (*models.ProjectAssignment, error) {
	return r.t.find(id)
}

func (r *ProjectAssignmentRepository) FindByPair(_ context.Context, projectID, memberID uint64) (*models.ProjectAssignment, error) {
	return r.t.first(func(a *models.ProjectAssignment) bool {
		return a.ProjectID == projectID && a.MemberID == memberID
	})
}

func (r *ProjectAssignmentRepository) Create(_ context.Context, assignment *models.ProjectAssignment) error {
	r.t.insert(assignment)
	return nil
}

func (r *ProjectAssignmentRepository) Update(_ context.Context, id uint64, patch models.ProjectAssignmentPatch) (*models.ProjectAssignment, error) {
	return r.t.update(id, func(a *models.ProjectAssignment) { patch.Apply(a) })
}

func (r *ProjectAssignmentRepository) Delete(_ context.Context, id uint64) error {
	return r.t.remove(id)
}
