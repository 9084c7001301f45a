package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
	"github.com/yukikurage/project-dashboard-api/internal/repository/memory"
)

var fixedNow = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

type ServiceTestSuite struct {
	suite.Suite
	repos   repository.Repositories
	svc     *Services
	drafter *stubDrafter
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	now = func() time.Time { return fixedNow }
	s.repos = memory.NewRepositories(memory.Dataset{})
	s.drafter = &stubDrafter{}
	s.svc = New(s.repos, s.drafter)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	now = time.Now
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ServiceTestSuite) createProject(code string) *models.Project {
	project, err := s.svc.Projects.Create(s.ctx, CreateProjectInput{
		Code:      code,
		Name:      "Project " + code,
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 1, 11),
	})
	s.Require().NoError(err)
	return project
}

func (s *ServiceTestSuite) TestProjectTaskScenario() {
	project := s.createProject("PROJ-1")
	s.Equal(10, project.Duration)
	s.Equal(models.ProjectStatusActive, project.Status)

	task, err := s.svc.Tasks.Create(s.ctx, CreateTaskInput{Title: "A", ProjectID: project.ID})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusTodo, task.Status)
	s.Equal(models.TaskPriorityMedium, task.Priority)
	s.True(task.CreatedAt.Equal(fixedNow))

	tasks, err := s.svc.Tasks.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Len(tasks, 1)
}

func (s *ServiceTestSuite) TestCreateThenGetReturnsStoredRecord() {
	project := s.createProject("P")
	found, err := s.svc.Projects.GetByID(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Equal(*project, *found)

	member, err := s.svc.TeamMembers.Create(s.ctx, CreateTeamMemberInput{Name: "Ana", Email: "ana@example.com", Role: "QA Engineer"})
	s.Require().NoError(err)
	foundMember, err := s.svc.TeamMembers.GetByID(s.ctx, member.ID)
	s.Require().NoError(err)
	s.Equal(*member, *foundMember)

	assignment, err := s.svc.Assignments.Create(s.ctx, CreateAssignmentInput{ProjectID: project.ID, MemberID: member.ID, Role: "Lead"})
	s.Require().NoError(err)
	s.True(assignment.JoinedAt.Equal(fixedNow))
	foundAssignment, err := s.svc.Assignments.GetByID(s.ctx, assignment.ID)
	s.Require().NoError(err)
	s.Equal(*assignment, *foundAssignment)
}

func (s *ServiceTestSuite) TestProjectDurationCeil() {
	project, err := s.svc.Projects.Create(s.ctx, CreateProjectInput{
		Code:      "HALF",
		Name:      "Half day",
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 1, 3).Add(6 * time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(3, project.Duration)
}

func (s *ServiceTestSuite) TestProjectCreateValidation() {
	_, err := s.svc.Projects.Create(s.ctx, CreateProjectInput{
		Name:      "No code",
		StartDate: date(2024, 1, 10),
		EndDate:   date(2024, 1, 10),
		Status:    "archived",
	})
	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal("is required", verr.Fields["code"])
	s.Equal("must be after start_date", verr.Fields["end_date"])
	s.Contains(verr.Fields["status"], "must be one of")

	projects, err := s.svc.Projects.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(projects)
}

func (s *ServiceTestSuite) TestProjectUpdateRecomputesDuration() {
	project := s.createProject("P")

	end := date(2024, 1, 31)
	updated, err := s.svc.Projects.Update(s.ctx, project.ID, models.ProjectPatch{EndDate: &end})
	s.Require().NoError(err)
	s.Equal(30, updated.Duration)

	// A start after the end leaves a zero duration rather than a negative one
	start := date(2024, 3, 1)
	updated, err = s.svc.Projects.Update(s.ctx, project.ID, models.ProjectPatch{StartDate: &start})
	s.Require().NoError(err)
	s.Equal(0, updated.Duration)
}

func (s *ServiceTestSuite) TestEmptyPatchLeavesRecordUnchanged() {
	project := s.createProject("P")
	updated, err := s.svc.Projects.Update(s.ctx, project.ID, models.ProjectPatch{})
	s.Require().NoError(err)
	s.Equal(*project, *updated)

	task, err := s.svc.Tasks.Create(s.ctx, CreateTaskInput{Title: "A", ProjectID: project.ID})
	s.Require().NoError(err)
	updatedTask, err := s.svc.Tasks.Update(s.ctx, task.ID, models.TaskPatch{})
	s.Require().NoError(err)
	s.Equal(*task, *updatedTask)
}

func (s *ServiceTestSuite) TestPatchValidation() {
	project := s.createProject("P")

	bad := models.ProjectStatus("archived")
	_, err := s.svc.Projects.Update(s.ctx, project.ID, models.ProjectPatch{Status: &bad})
	s.IsType(&ValidationError{}, err)

	priority := models.TaskPriority("urgent")
	_, err = s.svc.Tasks.Update(s.ctx, 1, models.TaskPatch{Priority: &priority})
	s.IsType(&ValidationError{}, err)

	email := "not-an-email"
	_, err = s.svc.TeamMembers.Update(s.ctx, 1, models.TeamMemberPatch{Email: &email})
	s.IsType(&ValidationError{}, err)
}

func (s *ServiceTestSuite) TestPatchTrimsStringFields() {
	project := s.createProject("P")
	member, err := s.svc.TeamMembers.Create(s.ctx, CreateTeamMemberInput{Name: "Ana", Email: "ana@example.com"})
	s.Require().NoError(err)
	task, err := s.svc.Tasks.Create(s.ctx, CreateTaskInput{Title: "A", ProjectID: project.ID})
	s.Require().NoError(err)
	assignment, err := s.svc.Assignments.Create(s.ctx, CreateAssignmentInput{ProjectID: project.ID, MemberID: member.ID, Role: "Lead"})
	s.Require().NoError(err)

	padded := func(v string) *string { return &v }

	updatedMember, err := s.svc.TeamMembers.Update(s.ctx, member.ID, models.TeamMemberPatch{
		Name:  padded("  Bob  "),
		Email: padded("  x@y.com  "),
		Role:  padded(" QA Engineer "),
	})
	s.Require().NoError(err)
	s.Equal("Bob", updatedMember.Name)
	s.Equal("x@y.com", updatedMember.Email)
	s.Equal("QA Engineer", updatedMember.Role)

	stored, err := s.svc.TeamMembers.GetByID(s.ctx, member.ID)
	s.Require().NoError(err)
	s.Equal("x@y.com", stored.Email)

	updatedProject, err := s.svc.Projects.Update(s.ctx, project.ID, models.ProjectPatch{Code: padded(" P-2 "), Name: padded(" Apollo ")})
	s.Require().NoError(err)
	s.Equal("P-2", updatedProject.Code)
	s.Equal("Apollo", updatedProject.Name)

	updatedTask, err := s.svc.Tasks.Update(s.ctx, task.ID, models.TaskPatch{Title: padded("  Write docs ")})
	s.Require().NoError(err)
	s.Equal("Write docs", updatedTask.Title)

	updatedAssignment, err := s.svc.Assignments.Update(s.ctx, assignment.ID, models.ProjectAssignmentPatch{Role: padded(" Owner ")})
	s.Require().NoError(err)
	s.Equal("Owner", updatedAssignment.Role)

	_, err = s.svc.TeamMembers.Update(s.ctx, member.ID, models.TeamMemberPatch{Name: padded("   ")})
	s.Require().Error(err)
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "name")
}

func (s *ServiceTestSuite) TestMissingIDsAreNotFound() {
	s.ErrorIs(s.svc.Projects.Delete(s.ctx, 99), ErrNotFound)
	s.ErrorIs(s.svc.TeamMembers.Delete(s.ctx, 99), ErrNotFound)
	s.ErrorIs(s.svc.Tasks.Delete(s.ctx, 99), ErrNotFound)
	s.ErrorIs(s.svc.Assignments.Delete(s.ctx, 99), ErrNotFound)

	_, err := s.svc.Tasks.Update(s.ctx, 99, models.TaskPatch{})
	var nf *NotFoundError
	s.Require().True(errors.As(err, &nf))
	s.Equal("task", nf.Entity)
	s.Equal(uint64(99), nf.ID)

	project, err := s.svc.Projects.GetByID(s.ctx, 99)
	s.NoError(err)
	s.Nil(project)
}

func (s *ServiceTestSuite) TestDeleteThenGetReturnsNil() {
	project := s.createProject("P")
	s.Require().NoError(s.svc.Projects.Delete(s.ctx, project.ID))

	found, err := s.svc.Projects.GetByID(s.ctx, project.ID)
	s.NoError(err)
	s.Nil(found)
}

func (s *ServiceTestSuite) TestUnassign() {
	project := s.createProject("P")
	_, err := s.svc.Assignments.Create(s.ctx, CreateAssignmentInput{ProjectID: project.ID, MemberID: 4, Role: "Lead"})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Assignments.Unassign(s.ctx, project.ID, 4))
	assignments, err := s.svc.Assignments.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Empty(assignments)

	err = s.svc.Assignments.Unassign(s.ctx, project.ID, 4)
	s.ErrorIs(err, ErrNotFound)
	s.Equal("project assignment of member 4 to project 1 not found", err.Error())
}

func (s *ServiceTestSuite) TestAssignmentValidation() {
	_, err := s.svc.Assignments.Create(s.ctx, CreateAssignmentInput{ProjectID: 1, MemberID: 2, Role: "  "})
	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal("is required", verr.Fields["role"])
}

func (s *ServiceTestSuite) TestSuggestTasks() {
	project := s.createProject("P")
	past := fixedNow.AddDate(0, 0, -3)
	future := fixedNow.AddDate(0, 0, 7)
	s.drafter.drafts = []TaskDraft{
		{Title: "  Write docs  ", Priority: models.TaskPriorityHigh, DueDate: &future},
		{Title: "", Priority: models.TaskPriorityLow},
		{Title: "Ship", Priority: "urgent", DueDate: &past},
	}

	drafts, err := s.svc.Tasks.SuggestTasks(s.ctx, project.ID, "we need to write the docs and ship")
	s.Require().NoError(err)
	s.Require().Len(drafts, 2)
	s.Equal("Write docs", drafts[0].Title)
	s.Equal(models.TaskPriorityMedium, drafts[1].Priority)
	s.Nil(drafts[1].DueDate)
	s.Equal(project.ID, s.drafter.project.ID)

	tasks, err := s.svc.Tasks.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(tasks, "drafts are not stored")
}

func (s *ServiceTestSuite) TestSuggestTasksFailures() {
	project := s.createProject("P")

	_, err := s.svc.Tasks.SuggestTasks(s.ctx, project.ID, " ")
	s.IsType(&ValidationError{}, err)

	_, err = s.svc.Tasks.SuggestTasks(s.ctx, 99, "text")
	s.ErrorIs(err, ErrNotFound)

	_, err = s.svc.Tasks.SuggestTasks(s.ctx, project.ID, "text")
	s.ErrorIs(err, ErrAINoTasksGenerated)

	s.drafter.drafts = make([]TaskDraft, 21)
	_, err = s.svc.Tasks.SuggestTasks(s.ctx, project.ID, "text")
	s.ErrorIs(err, ErrAITooManyTasks)

	s.drafter.drafts = []TaskDraft{{Title: " "}}
	_, err = s.svc.Tasks.SuggestTasks(s.ctx, project.ID, "text")
	s.ErrorIs(err, ErrAINoValidTasks)

	noAI := NewTaskService(s.repos.Tasks, s.repos.Projects, nil)
	_, err = noAI.SuggestTasks(s.ctx, project.ID, "text")
	s.ErrorIs(err, ErrAIServiceNotConfigured)
}

func (s *ServiceTestSuite) TestWorkspaceLoadProject() {
	project := s.createProject("P")
	other := s.createProject("Q")
	member, err := s.svc.TeamMembers.Create(s.ctx, CreateTeamMemberInput{Name: "Ana", Email: "ana@example.com"})
	s.Require().NoError(err)
	_, err = s.svc.Assignments.Create(s.ctx, CreateAssignmentInput{ProjectID: project.ID, MemberID: member.ID, Role: "Lead"})
	s.Require().NoError(err)
	_, err = s.svc.Tasks.Create(s.ctx, CreateTaskInput{Title: "A", ProjectID: project.ID})
	s.Require().NoError(err)
	_, err = s.svc.Tasks.Create(s.ctx, CreateTaskInput{Title: "B", ProjectID: other.ID})
	s.Require().NoError(err)

	ws, err := s.svc.Workspace.LoadProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Equal(project.ID, ws.Project.ID)
	s.Len(ws.Tasks, 1)
	s.Len(ws.Assignments, 1)
	s.Len(ws.TeamMembers, 1)

	_, err = s.svc.Workspace.LoadProject(s.ctx, 99)
	s.ErrorIs(err, ErrNotFound)

	mws, err := s.svc.Workspace.LoadMember(s.ctx, member.ID)
	s.Require().NoError(err)
	s.Len(mws.Assignments, 1)
	s.Len(mws.Projects, 2)

	all, err := s.svc.Workspace.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(all.Projects, 2)
	s.Len(all.Tasks, 2)
}

type stubDrafter struct {
	drafts  []TaskDraft
	project models.Project
}

func (d *stubDrafter) DraftTasks(_ context.Context, project models.Project, _ string) ([]TaskDraft, error) {
	d.project = project
	return d.drafts, nil
}

type failingTasks struct {
	repository.TaskRepository
	err error
}

func (f failingTasks) List(context.Context) ([]models.Task, error) {
	return nil, f.err
}

func TestWorkspaceLoad_FailsWhenAnyFetchFails(t *testing.T) {
	repos := memory.NewRepositories(memory.Dataset{})
	backendErr := errors.New("connection reset")
	repos.Tasks = failingTasks{TaskRepository: repos.Tasks, err: backendErr}

	ws, err := NewWorkspaceService(repos).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, ws)
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "failed to list task")
}

func TestParseDrafts(t *testing.T) {
	drafts, err := parseDrafts("```json\n[{\"title\":\"Plan\",\"priority\":\"HIGH\",\"due_date\":\"2024-02-01\"},{\"title\":\"Review\",\"due_date\":null}]\n```")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, models.TaskPriorityHigh, drafts[0].Priority)
	require.NotNil(t, drafts[0].DueDate)
	assert.Equal(t, time.February, drafts[0].DueDate.Month())
	assert.Nil(t, drafts[1].DueDate)

	_, err = parseDrafts("not json")
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "is required", "email": "must be a valid email address"}}
	assert.Equal(t, "validation failed: email must be a valid email address; name is required", err.Error())
}
