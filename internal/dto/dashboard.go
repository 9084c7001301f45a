package dto

import (
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/constants"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

// DashboardResponse represents the dashboard page
type DashboardResponse struct {
	Metrics        aggregation.DashboardMetrics `json:"metrics"`
	RecentProjects []ProjectSummaryDTO          `json:"recent_projects"`
}

// ToDashboardResponse summarizes a loaded workspace
func ToDashboardResponse(ws *services.Workspace, now time.Time) DashboardResponse {
	recent := aggregation.RecentProjects(ws.Projects, constants.RecentProjectsLimit)
	return DashboardResponse{
		Metrics:        aggregation.Metrics(ws.Projects, ws.TeamMembers, ws.Tasks),
		RecentProjects: ToProjectSummaries(recent, ws.Tasks, ws.Assignments, now),
	}
}
