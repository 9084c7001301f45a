package dto

import (
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/models"
)

// ProjectRefDTO is the minimal project shown next to a task
type ProjectRefDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// MemberRefDTO is the minimal member shown as a task assignee
type MemberRefDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID         uint64              `json:"id"`
	Title      string              `json:"title"`
	ProjectID  uint64              `json:"project_id"`
	AssigneeID *uint64             `json:"assignee_id"`
	Status     models.TaskStatus   `json:"status"`
	Priority   models.TaskPriority `json:"priority"`
	CreatedAt  time.Time           `json:"created_at"`
	DueDate    *time.Time          `json:"due_date"`
	Project    *ProjectRefDTO      `json:"project,omitempty"`
	Assignee   *MemberRefDTO       `json:"assignee,omitempty"`
}

// TaskListResponse represents the filtered task list with status and priority badges
type TaskListResponse struct {
	Tasks          []TaskDTO                     `json:"tasks"`
	StatusCounts   aggregation.TaskStatusTally   `json:"status_counts"`
	PriorityCounts aggregation.TaskPriorityTally `json:"priority_counts"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(t models.Task) TaskDTO {
	return TaskDTO{
		ID:         t.ID,
		Title:      t.Title,
		ProjectID:  t.ProjectID,
		AssigneeID: t.AssigneeID,
		Status:     t.Status,
		Priority:   t.Priority,
		CreatedAt:  t.CreatedAt,
		DueDate:    t.DueDate,
	}
}

// ToTaskDTOs converts tasks and resolves their assignee and project from the given
// indexes. A nil index skips that lookup; dangling references are left unresolved.
func ToTaskDTOs(tasks []models.Task, members map[uint64]models.TeamMember, projects map[uint64]models.Project) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		d := ToTaskDTO(t)
		if t.AssigneeID != nil {
			if m, ok := members[*t.AssigneeID]; ok {
				d.Assignee = &MemberRefDTO{ID: m.ID, Name: m.Name, Avatar: m.Avatar}
			}
		}
		if p, ok := projects[t.ProjectID]; ok {
			d.Project = &ProjectRefDTO{ID: p.ID, Code: p.Code, Name: p.Name}
		}
		out[i] = d
	}
	return out
}
