package aggregation

import (
	"strings"

	"github.com/yukikurage/project-dashboard-api/internal/models"
)

// MatchesSearch reports whether any field contains term, ignoring case. The term is
// used as typed, surrounding spaces included. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// ProjectFilter selects projects by search term and status. Zero values match all.
type ProjectFilter struct {
	Search string
	Status models.ProjectStatus
}

// TaskFilter selects tasks. All set criteria must hold.
type TaskFilter struct {
	Search   string
	Status   models.TaskStatus
	Priority models.TaskPriority
}

func FilterProjects(projects []models.Project, f ProjectFilter) []models.Project {
	out := []models.Project{}
	for _, p := range projects {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if !MatchesSearch(f.Search, p.Name, p.Code) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func FilterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if !MatchesSearch(f.Search, t.Title) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func FilterMembers(members []models.TeamMember, search string) []models.TeamMember {
	out := []models.TeamMember{}
	for _, m := range members {
		if MatchesSearch(search, m.Name, m.Role, m.Email) {
			out = append(out, m)
		}
	}
	return out
}
