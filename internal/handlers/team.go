package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/constants"
	"github.com/yukikurage/project-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/project-dashboard-api/internal/errors"
	"github.com/yukikurage/project-dashboard-api/internal/middleware"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

type TeamMemberHandler struct {
	svc *services.Services
}

func NewTeamMemberHandler(svc *services.Services) *TeamMemberHandler {
	return &TeamMemberHandler{svc: svc}
}

// ListTeamMembers returns members matching ?search= with the projects they are on
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	ws, err := h.svc.Workspace.Load(c.Request.Context())
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	matched := aggregation.FilterMembers(ws.TeamMembers, c.Query("search"))
	c.JSON(http.StatusOK, dto.ToTeamListResponse(matched, ws.TeamMembers, ws.Assignments, ws.Projects))
}

// ListRoles returns the suggested roles for the member form
func (h *TeamMemberHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"roles": constants.RoleSuggestions,
	})
}

// GetTeamMember returns a member with its projects and roles
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	ws, err := h.svc.Workspace.LoadMember(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberDetailDTO(ws.Member, ws.Assignments, ws.Projects))
}

// CreateTeamMember creates a new member
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var input services.CreateTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.svc.TeamMembers.Create(c.Request.Context(), input)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamMemberDTO(*member))
}

// UpdateTeamMember applies a partial patch
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	body, err := bindPatch(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	patch, err := parseTeamMemberPatch(body)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	member, err := h.svc.TeamMembers.Update(c.Request.Context(), id, patch)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberDTO(*member))
}

// DeleteTeamMember deletes a member. Its assignments are not removed.
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	if err := h.svc.TeamMembers.Delete(c.Request.Context(), id); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team member deleted successfully",
	})
}

// ListMemberTasks returns the tasks assigned to a member
func (h *TeamMemberHandler) ListMemberTasks(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	tasks, err := h.svc.Tasks.ListByMember(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks, nil, nil),
	})
}

// ListMemberAssignments returns the assignments of a member
func (h *TeamMemberHandler) ListMemberAssignments(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	assignments, err := h.svc.Assignments.ListByMember(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": dto.ToProjectAssignmentDTOs(assignments),
	})
}
