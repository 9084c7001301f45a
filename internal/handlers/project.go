package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/project-dashboard-api/internal/errors"
	"github.com/yukikurage/project-dashboard-api/internal/middleware"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

// now is replaced in tests
var now = time.Now

// filterAll is the filter value that selects every record
const filterAll = "all"

// filterQuery reads a filter query parameter. "all" reads as no filter.
func filterQuery(c *gin.Context, key string) string {
	if v := c.Query(key); v != filterAll {
		return v
	}
	return ""
}

type ProjectHandler struct {
	svc *services.Services
}

func NewProjectHandler(svc *services.Services) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

type createProjectRequest struct {
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Status      models.ProjectStatus `json:"status"`
}

// ListProjects returns project cards filtered by ?search= and ?status=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter := aggregation.ProjectFilter{
		Search: c.Query("search"),
		Status: models.ProjectStatus(filterQuery(c, "status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		apierrors.BadRequest(c, "Invalid status")
		return
	}

	ws, err := h.svc.Workspace.Load(c.Request.Context())
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	matched := aggregation.FilterProjects(ws.Projects, filter)
	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Projects:     dto.ToProjectSummaries(matched, ws.Tasks, ws.Assignments, now()),
		StatusCounts: aggregation.TallyProjectStatus(ws.Projects),
	})
}

// GetProject returns a project with its team, task breakdown and progress
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	ws, err := h.svc.Workspace.LoadProject(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailDTO(ws.Project, ws.Tasks, ws.Assignments, ws.TeamMembers, now()))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	errs := map[string]string{}
	input := services.CreateProjectInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   parseDateField(errs, "start_date", req.StartDate),
		EndDate:     parseDateField(errs, "end_date", req.EndDate),
		Status:      req.Status,
	}
	if err := fieldErrors(errs); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	project, err := h.svc.Projects.Create(c.Request.Context(), input)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject applies a partial patch
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	body, err := bindPatch(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	patch, err := parseProjectPatch(body)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	project, err := h.svc.Projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	if err := h.svc.Projects.Delete(c.Request.Context(), id); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// ListProjectTasks returns the tasks of a project with their assignees
func (h *ProjectHandler) ListProjectTasks(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	ws, err := h.svc.Workspace.LoadProject(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(ws.Tasks, aggregation.MembersByID(ws.TeamMembers), nil),
	})
}

// ListProjectAssignments returns the assignments of a project
func (h *ProjectHandler) ListProjectAssignments(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	assignments, err := h.svc.Assignments.ListByProject(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": dto.ToProjectAssignmentDTOs(assignments),
	})
}

// UnassignMember removes a member from a project
func (h *ProjectHandler) UnassignMember(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")
	memberID, _ := middleware.GetID(c, "member_id")

	if err := h.svc.Assignments.Unassign(c.Request.Context(), id, memberID); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member removed from project",
	})
}

// SuggestTasks drafts tasks for a project from free text. Nothing is stored.
func (h *ProjectHandler) SuggestTasks(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	drafts, err := h.svc.Tasks.SuggestTasks(c.Request.Context(), id, req.Text)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": id,
		"drafts":     drafts,
	})
}
