package dto

import (
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/models"
)

// TeamMemberDTO represents a team member in API responses
type TeamMemberDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// TeamMemberWithRoleDTO is a member as seen from one project
type TeamMemberWithRoleDTO struct {
	TeamMemberDTO
	AssignmentID uint64 `json:"assignment_id"`
	ProjectRole  string `json:"project_role"`
}

// MemberProjectDTO is a project as seen from one member
type MemberProjectDTO struct {
	ID           uint64               `json:"id"`
	Code         string               `json:"code"`
	Name         string               `json:"name"`
	Status       models.ProjectStatus `json:"status"`
	AssignmentID uint64               `json:"assignment_id"`
	ProjectRole  string               `json:"project_role"`
}

// TeamMemberDetailDTO represents a member with the projects they work on
type TeamMemberDetailDTO struct {
	TeamMemberDTO
	Projects []MemberProjectDTO `json:"projects"`
}

// TeamStats are the headline numbers of the team page
type TeamStats struct {
	TotalMembers   int `json:"total_members"`
	ActiveProjects int `json:"active_projects"`
	Managers       int `json:"managers"`
	Developers     int `json:"developers"`
}

// TeamListResponse represents the filtered member list
type TeamListResponse struct {
	Members []TeamMemberDetailDTO `json:"members"`
	Stats   TeamStats             `json:"stats"`
}

// ProjectAssignmentDTO represents an assignment in API responses
type ProjectAssignmentDTO struct {
	ID        uint64    `json:"id"`
	ProjectID uint64    `json:"project_id"`
	MemberID  uint64    `json:"member_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

func ToTeamMemberDTO(m models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:     m.ID,
		Name:   m.Name,
		Email:  m.Email,
		Role:   m.Role,
		Avatar: m.Avatar,
	}
}

func ToTeamMemberWithRoleDTO(m aggregation.AssignedMember) TeamMemberWithRoleDTO {
	return TeamMemberWithRoleDTO{
		TeamMemberDTO: ToTeamMemberDTO(m.TeamMember),
		AssignmentID:  m.AssignmentID,
		ProjectRole:   m.ProjectRole,
	}
}

// ToTeamMemberDetailDTO joins a member with the projects it is assigned to
func ToTeamMemberDetailDTO(m models.TeamMember, assignments []models.ProjectAssignment, projects []models.Project) TeamMemberDetailDTO {
	joined := aggregation.MemberProjects(m.ID, assignments, projects)
	out := make([]MemberProjectDTO, len(joined))
	for i, p := range joined {
		out[i] = MemberProjectDTO{
			ID:           p.ID,
			Code:         p.Code,
			Name:         p.Name,
			Status:       p.Status,
			AssignmentID: p.AssignmentID,
			ProjectRole:  p.ProjectRole,
		}
	}
	return TeamMemberDetailDTO{TeamMemberDTO: ToTeamMemberDTO(m), Projects: out}
}

// ToTeamListResponse builds the member list. Stats cover every member, not only the matches.
func ToTeamListResponse(matched, all []models.TeamMember, assignments []models.ProjectAssignment, projects []models.Project) TeamListResponse {
	members := make([]TeamMemberDetailDTO, len(matched))
	for i, m := range matched {
		members[i] = ToTeamMemberDetailDTO(m, assignments, projects)
	}
	return TeamListResponse{
		Members: members,
		Stats: TeamStats{
			TotalMembers:   len(all),
			ActiveProjects: aggregation.TallyProjectStatus(projects).Active,
			Managers:       aggregation.CountRole(all, "manager"),
			Developers:     aggregation.CountRole(all, "developer"),
		},
	}
}

func ToProjectAssignmentDTO(a models.ProjectAssignment) ProjectAssignmentDTO {
	return ProjectAssignmentDTO{
		ID:        a.ID,
		ProjectID: a.ProjectID,
		MemberID:  a.MemberID,
		Role:      a.Role,
		JoinedAt:  a.JoinedAt,
	}
}

func ToProjectAssignmentDTOs(assignments []models.ProjectAssignment) []ProjectAssignmentDTO {
	out := make([]ProjectAssignmentDTO, len(assignments))
	for i, a := range assignments {
		out[i] = ToProjectAssignmentDTO(a)
	}
	return out
}
