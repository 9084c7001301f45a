package aggregation

import (
	"sort"
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/utils"
)

// ProjectProgress is the share of a project's date range that has elapsed at now,
// in [0, 100]. A range that is empty or reversed yields 0.
func ProjectProgress(project models.Project, now time.Time) float64 {
	total := utils.WholeDaysBetween(project.StartDate, project.EndDate)
	if total <= 0 {
		return 0
	}
	elapsed := utils.WholeDaysBetween(project.StartDate, now)
	if elapsed < 0 {
		elapsed = 0
	}
	return clampPercent(float64(elapsed) / float64(total) * 100)
}

// TaskCompletion is the percentage of tasks that are completed, 0 for no tasks
func TaskCompletion(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	return float64(TallyTaskStatus(tasks).Completed) / float64(len(tasks)) * 100
}

// RecentProjects returns up to n projects, latest start date first.
// The input slice is not reordered.
func RecentProjects(projects []models.Project, n int) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
