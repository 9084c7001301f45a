package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/project-dashboard-api/internal/errors"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

type DashboardHandler struct {
	svc *services.Services
}

func NewDashboardHandler(svc *services.Services) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetDashboard returns the headline metrics and the most recently started projects
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ws, err := h.svc.Workspace.Load(c.Request.Context())
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(ws, now()))
}
