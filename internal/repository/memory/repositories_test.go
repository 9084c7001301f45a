package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

func TestProjectRepository_CreateAssignsNextIDAndPrepends(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{Projects: []models.Project{{ID: 3, Code: "C"}, {ID: 1, Code: "A"}}})

	project := &models.Project{Code: "NEW"}
	require.NoError(t, repos.Projects.Create(ctx, project))
	assert.Equal(t, uint64(4), project.ID)

	projects, err := repos.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "NEW", projects[0].Code)
	assert.Equal(t, "C", projects[1].Code)
}

func TestProjectRepository_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{})

	first := &models.Project{Code: "A"}
	second := &models.Project{Code: "B"}
	require.NoError(t, repos.Projects.Create(ctx, first))
	require.NoError(t, repos.Projects.Create(ctx, second))
	require.NoError(t, repos.Projects.Delete(ctx, second.ID))

	third := &models.Project{Code: "C"}
	require.NoError(t, repos.Projects.Create(ctx, third))
	assert.Equal(t, uint64(3), third.ID)
}

func TestProjectRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{})

	project := &models.Project{Code: "A", Name: "Original"}
	require.NoError(t, repos.Projects.Create(ctx, project))
	project.Name = "mutated after create"

	found, err := repos.Projects.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", found.Name)

	found.Name = "mutated after read"
	projects, err := repos.Projects.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original", projects[0].Name)
}

func TestProjectRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{Projects: []models.Project{{ID: 1, Code: "A", Name: "Apollo", Status: models.ProjectStatusActive}}})

	status := models.ProjectStatusCompleted
	updated, err := repos.Projects.Update(ctx, 1, models.ProjectPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, "Apollo", updated.Name)

	unchanged, err := repos.Projects.Update(ctx, 1, models.ProjectPatch{})
	require.NoError(t, err)
	assert.Equal(t, *updated, *unchanged)

	_, err = repos.Projects.Update(ctx, 2, models.ProjectPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repos.Projects.Delete(ctx, 1))
	assert.ErrorIs(t, repos.Projects.Delete(ctx, 1), repository.ErrNotFound)

	_, err = repos.Projects.FindByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_FilteredQueries(t *testing.T) {
	ctx := context.Background()
	assignee := uint64(2)
	repos := NewRepositories(Dataset{Tasks: []models.Task{
		{ID: 3, Title: "c", ProjectID: 1},
		{ID: 2, Title: "b", ProjectID: 2, AssigneeID: &assignee},
		{ID: 1, Title: "a", ProjectID: 1, AssigneeID: &assignee},
	}})

	byProject, err := repos.Tasks.ListByProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	assert.Equal(t, "c", byProject[0].Title)

	byMember, err := repos.Tasks.ListByMember(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byMember, 2)

	none, err := repos.Tasks.ListByProject(ctx, 9)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTaskRepository_PointerFieldsAreCopied(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{})

	assignee := uint64(5)
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	task := &models.Task{Title: "t", ProjectID: 1, AssigneeID: &assignee, DueDate: &due}
	require.NoError(t, repos.Tasks.Create(ctx, task))

	assignee = 6
	due = due.AddDate(1, 0, 0)

	found, err := repos.Tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), *found.AssigneeID)
	assert.Equal(t, 2024, found.DueDate.Year())
}

func TestProjectAssignmentRepository_FindByPair(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{Assignments: []models.ProjectAssignment{
		{ID: 2, ProjectID: 1, MemberID: 3, Role: "Developer"},
		{ID: 1, ProjectID: 1, MemberID: 2, Role: "Lead"},
	}})

	found, err := repos.Assignments.FindByPair(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Lead", found.Role)

	_, err = repos.Assignments.FindByPair(ctx, 2, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byMember, err := repos.Assignments.ListByMember(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, byMember, 1)
}

func TestTable_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Dataset{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repos.TeamMembers.Create(ctx, &models.TeamMember{Name: "m"})
		}()
	}
	wg.Wait()

	members, err := repos.TeamMembers.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 50)

	seen := make(map[uint64]bool)
	for _, m := range members {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
}

func TestSeedDataset(t *testing.T) {
	data, err := SeedDataset()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Projects)
	assert.NotEmpty(t, data.TeamMembers)
	assert.NotEmpty(t, data.Tasks)
	assert.NotEmpty(t, data.Assignments)

	projects := make(map[uint64]bool)
	for _, p := range data.Projects {
		projects[p.ID] = true
		assert.True(t, p.Status.Valid(), p.Code)
		assert.True(t, p.EndDate.After(p.StartDate), p.Code)
	}
	for _, task := range data.Tasks {
		assert.True(t, projects[task.ProjectID], task.Title)
		assert.True(t, task.Status.Valid(), task.Title)
		assert.True(t, task.Priority.Valid(), task.Title)
	}
}
