package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/project-dashboard-api/internal/errors"
	"github.com/yukikurage/project-dashboard-api/internal/middleware"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

type AssignmentHandler struct {
	svc *services.Services
}

func NewAssignmentHandler(svc *services.Services) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

type createAssignmentRequest struct {
	ProjectID uint64  `json:"project_id"`
	MemberID  uint64  `json:"member_id"`
	Role      string  `json:"role"`
	JoinedAt  *string `json:"joined_at"`
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.svc.Assignments.List(c.Request.Context())
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": dto.ToProjectAssignmentDTOs(assignments),
	})
}

func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	assignment, err := h.svc.Assignments.GetByID(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}
	if assignment == nil {
		apierrors.NotFound(c, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAssignmentDTO(*assignment))
}

// CreateAssignment places a member on a project
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	errs := map[string]string{}
	input := services.CreateAssignmentInput{
		ProjectID: req.ProjectID,
		MemberID:  req.MemberID,
		Role:      req.Role,
		JoinedAt:  parseOptionalDate(errs, "joined_at", req.JoinedAt),
	}
	if err := fieldErrors(errs); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	assignment, err := h.svc.Assignments.Create(c.Request.Context(), input)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectAssignmentDTO(*assignment))
}

// UpdateAssignment changes the role or join date of an assignment
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	body, err := bindPatch(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	patch, err := parseAssignmentPatch(body)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	assignment, err := h.svc.Assignments.Update(c.Request.Context(), id, patch)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAssignmentDTO(*assignment))
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	if err := h.svc.Assignments.Delete(c.Request.Context(), id); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment deleted successfully",
	})
}
