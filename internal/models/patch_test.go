package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectPatch_ApplyOnlyTouchesProvidedFields(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	project := Project{ID: 1, Code: "PROJ-1", Name: "Apollo", StartDate: start, Status: ProjectStatusActive}

	status := ProjectStatusOnHold
	ProjectPatch{Status: &status}.Apply(&project)

	assert.Equal(t, ProjectStatusOnHold, project.Status)
	assert.Equal(t, "PROJ-1", project.Code)
	assert.Equal(t, "Apollo", project.Name)
	assert.True(t, project.StartDate.Equal(start))
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, ProjectPatch{}.IsEmpty())
	assert.True(t, TeamMemberPatch{}.IsEmpty())
	assert.True(t, TaskPatch{}.IsEmpty())
	assert.True(t, ProjectAssignmentPatch{}.IsEmpty())

	assert.False(t, TaskPatch{ClearDueDate: true}.IsEmpty())
	assert.False(t, TaskPatch{ClearAssignee: true}.IsEmpty())
}

func TestTaskPatch_Clear(t *testing.T) {
	assignee := uint64(3)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task := Task{ID: 1, Title: "A", AssigneeID: &assignee, DueDate: &due}

	other := uint64(9)
	TaskPatch{ClearAssignee: true, AssigneeID: &other, ClearDueDate: true}.Apply(&task)

	assert.Nil(t, task.AssigneeID)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, "A", task.Title)
}

func TestTaskPatch_CopiesPointers(t *testing.T) {
	task := Task{ID: 1}
	assignee := uint64(4)
	TaskPatch{AssigneeID: &assignee}.Apply(&task)

	assignee = 5
	assert.Equal(t, uint64(4), *task.AssigneeID)
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, ProjectStatus("on-hold").Valid())
	assert.False(t, ProjectStatus("archived").Valid())
	assert.True(t, TaskStatus("in-progress").Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.True(t, TaskPriority("high").Valid())
	assert.False(t, TaskPriority("urgent").Valid())
}
