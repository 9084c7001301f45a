package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/middleware"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

// RegisterRoutes mounts the health check and every /api route on r
func RegisterRoutes(r *gin.Engine, svc *services.Services, backendMode string) {
	projectHandler := NewProjectHandler(svc)
	teamHandler := NewTeamMemberHandler(svc)
	taskHandler := NewTaskHandler(svc)
	assignmentHandler := NewAssignmentHandler(svc)
	dashboardHandler := NewDashboardHandler(svc)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Dashboard API is running",
			"backend": backendMode,
		})
	})

	requireID := middleware.RequireID("id")

	api := r.Group("/api")
	{
		api.GET("/dashboard", dashboardHandler.GetDashboard)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", requireID, projectHandler.GetProject)
			projects.PATCH("/:id", requireID, projectHandler.UpdateProject)
			projects.DELETE("/:id", requireID, projectHandler.DeleteProject)
			projects.GET("/:id/tasks", requireID, projectHandler.ListProjectTasks)
			projects.POST("/:id/tasks/suggest", requireID, projectHandler.SuggestTasks)
			projects.GET("/:id/assignments", requireID, projectHandler.ListProjectAssignments)
			projects.DELETE("/:id/members/:member_id", middleware.RequireID("id", "member_id"), projectHandler.UnassignMember)
		}

		team := api.Group("/team-members")
		{
			team.GET("", teamHandler.ListTeamMembers)
			team.GET("/roles", teamHandler.ListRoles)
			team.POST("", teamHandler.CreateTeamMember)
			team.GET("/:id", requireID, teamHandler.GetTeamMember)
			team.PATCH("/:id", requireID, teamHandler.UpdateTeamMember)
			team.DELETE("/:id", requireID, teamHandler.DeleteTeamMember)
			team.GET("/:id/tasks", requireID, teamHandler.ListMemberTasks)
			team.GET("/:id/assignments", requireID, teamHandler.ListMemberAssignments)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", requireID, taskHandler.GetTask)
			tasks.PATCH("/:id", requireID, taskHandler.UpdateTask)
			tasks.DELETE("/:id", requireID, taskHandler.DeleteTask)
		}

		assignments := api.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.GET("/:id", requireID, assignmentHandler.GetAssignment)
			assignments.PATCH("/:id", requireID, assignmentHandler.UpdateAssignment)
			assignments.DELETE("/:id", requireID, assignmentHandler.DeleteAssignment)
		}
	}
}
