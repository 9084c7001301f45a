package aggregation

import "github.com/yukikurage/project-dashboard-api/internal/models"

// AssignedMember is a team member with the role held on one project
type AssignedMember struct {
	models.TeamMember
	AssignmentID uint64 `json:"assignment_id"`
	ProjectRole  string `json:"project_role"`
}

// MemberProject is a project with the role one member holds on it
type MemberProject struct {
	models.Project
	AssignmentID uint64 `json:"assignment_id"`
	ProjectRole  string `json:"project_role"`
}

// AssignedMembers resolves the members of a project in assignment order.
// Assignments pointing at a member that no longer exists are skipped.
func AssignedMembers(projectID uint64, assignments []models.ProjectAssignment, members []models.TeamMember) []AssignedMember {
	byID := make(map[uint64]models.TeamMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	out := []AssignedMember{}
	for _, a := range assignments {
		if a.ProjectID != projectID {
			continue
		}
		member, ok := byID[a.MemberID]
		if !ok {
			continue
		}
		out = append(out, AssignedMember{TeamMember: member, AssignmentID: a.ID, ProjectRole: a.Role})
	}
	return out
}

// MemberProjects resolves the projects of a member. Dangling project ids are skipped.
func MemberProjects(memberID uint64, assignments []models.ProjectAssignment, projects []models.Project) []MemberProject {
	byID := make(map[uint64]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	out := []MemberProject{}
	for _, a := range assignments {
		if a.MemberID != memberID {
			continue
		}
		project, ok := byID[a.ProjectID]
		if !ok {
			continue
		}
		out = append(out, MemberProject{Project: project, AssignmentID: a.ID, ProjectRole: a.Role})
	}
	return out
}

// MembersByID indexes members for assignee lookups
func MembersByID(members []models.TeamMember) map[uint64]models.TeamMember {
	byID := make(map[uint64]models.TeamMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return byID
}

// ProjectsByID indexes projects for task lookups
func ProjectsByID(projects []models.Project) map[uint64]models.Project {
	byID := make(map[uint64]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID
}
