package dto

import (
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Duration    int                  `json:"duration"`
	Status      models.ProjectStatus `json:"status"`
}

// ProjectSummaryDTO is a project card: the project with team and task counts and progress
type ProjectSummaryDTO struct {
	ProjectDTO
	TeamCount int     `json:"team_count"`
	TaskCount int     `json:"task_count"`
	Progress  float64 `json:"progress"`
}

// ProjectListResponse represents the filtered project list with status badges
type ProjectListResponse struct {
	Projects     []ProjectSummaryDTO            `json:"projects"`
	StatusCounts aggregation.ProjectStatusTally `json:"status_counts"`
}

// ProjectDetailDTO represents one project with its team and task breakdown
type ProjectDetailDTO struct {
	ProjectDTO
	Team             []TeamMemberWithRoleDTO     `json:"team"`
	Tasks            []TaskDTO                   `json:"tasks"`
	TaskStatusCounts aggregation.TaskStatusTally `json:"task_status_counts"`
	Progress         float64                     `json:"progress"`
	TaskCompletion   float64                     `json:"task_completion"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(p models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Duration:    p.Duration,
		Status:      p.Status,
	}
}

// ToProjectSummaries builds project cards from loaded tasks and assignments
func ToProjectSummaries(projects []models.Project, tasks []models.Task, assignments []models.ProjectAssignment, now time.Time) []ProjectSummaryDTO {
	out := make([]ProjectSummaryDTO, len(projects))
	for i, p := range projects {
		out[i] = ProjectSummaryDTO{
			ProjectDTO: ToProjectDTO(p),
			TeamCount:  aggregation.CountTeamMembers(assignments, p.ID),
			TaskCount:  aggregation.CountTasks(tasks, p.ID),
			Progress:   aggregation.ProjectProgress(p, now),
		}
	}
	return out
}

// ToProjectDetailDTO joins a project with its tasks and team
func ToProjectDetailDTO(p models.Project, tasks []models.Task, assignments []models.ProjectAssignment, members []models.TeamMember, now time.Time) ProjectDetailDTO {
	team := aggregation.AssignedMembers(p.ID, assignments, members)
	teamDTOs := make([]TeamMemberWithRoleDTO, len(team))
	for i, m := range team {
		teamDTOs[i] = ToTeamMemberWithRoleDTO(m)
	}

	return ProjectDetailDTO{
		ProjectDTO:       ToProjectDTO(p),
		Team:             teamDTOs,
		Tasks:            ToTaskDTOs(tasks, aggregation.MembersByID(members), nil),
		TaskStatusCounts: aggregation.TallyTaskStatus(tasks),
		Progress:         aggregation.ProjectProgress(p, now),
		TaskCompletion:   aggregation.TaskCompletion(tasks),
	}
}
