// Package aggregation joins and summarizes already-loaded entity lists.
// Nothing here does I/O; every function is safe to call on shared slices.
package aggregation

import "github.com/yukikurage/project-dashboard-api/internal/models"

// CountTeamMembers counts the assignments of a project
func CountTeamMembers(assignments []models.ProjectAssignment, projectID uint64) int {
	n := 0
	for i := range assignments {
		if assignments[i].ProjectID == projectID {
			n++
		}
	}
	return n
}

// CountTasks counts the tasks of a project
func CountTasks(tasks []models.Task, projectID uint64) int {
	n := 0
	for i := range tasks {
		if tasks[i].ProjectID == projectID {
			n++
		}
	}
	return n
}

// TaskStatusTally counts tasks per status
type TaskStatusTally struct {
	All        int `json:"all"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// TaskPriorityTally counts tasks per priority
type TaskPriorityTally struct {
	All    int `json:"all"`
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// ProjectStatusTally counts projects per status
type ProjectStatusTally struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	OnHold    int `json:"on_hold"`
}

func TallyTaskStatus(tasks []models.Task) TaskStatusTally {
	t := TaskStatusTally{All: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case models.TaskStatusTodo:
			t.Todo++
		case models.TaskStatusInProgress:
			t.InProgress++
		case models.TaskStatusCompleted:
			t.Completed++
		}
	}
	return t
}

func TallyTaskPriority(tasks []models.Task) TaskPriorityTally {
	t := TaskPriorityTally{All: len(tasks)}
	for i := range tasks {
		switch tasks[i].Priority {
		case models.TaskPriorityLow:
			t.Low++
		case models.TaskPriorityMedium:
			t.Medium++
		case models.TaskPriorityHigh:
			t.High++
		}
	}
	return t
}

func TallyProjectStatus(projects []models.Project) ProjectStatusTally {
	t := ProjectStatusTally{All: len(projects)}
	for i := range projects {
		switch projects[i].Status {
		case models.ProjectStatusActive:
			t.Active++
		case models.ProjectStatusCompleted:
			t.Completed++
		case models.ProjectStatusOnHold:
			t.OnHold++
		}
	}
	return t
}

// DashboardMetrics are the headline numbers of the dashboard
type DashboardMetrics struct {
	TotalProjects     int `json:"total_projects"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	OnHoldProjects    int `json:"on_hold_projects"`
	TeamMembers       int `json:"team_members"`
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	InProgressTasks   int `json:"in_progress_tasks"`
	TodoTasks         int `json:"todo_tasks"`
}

// Metrics computes the dashboard totals
func Metrics(projects []models.Project, members []models.TeamMember, tasks []models.Task) DashboardMetrics {
	ps := TallyProjectStatus(projects)
	ts := TallyTaskStatus(tasks)
	return DashboardMetrics{
		TotalProjects:     ps.All,
		ActiveProjects:    ps.Active,
		CompletedProjects: ps.Completed,
		OnHoldProjects:    ps.OnHold,
		TeamMembers:       len(members),
		TotalTasks:        ts.All,
		CompletedTasks:    ts.Completed,
		InProgressTasks:   ts.InProgress,
		TodoTasks:         ts.Todo,
	}
}

// CountRole counts members whose role contains term, ignoring case
func CountRole(members []models.TeamMember, term string) int {
	n := 0
	for i := range members {
		if term != "" && MatchesSearch(term, members[i].Role) {
			n++
		}
	}
	return n
}
