package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/aggregation"
	"github.com/yukikurage/project-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/project-dashboard-api/internal/errors"
	"github.com/yukikurage/project-dashboard-api/internal/middleware"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

type TaskHandler struct {
	svc *services.Services
}

func NewTaskHandler(svc *services.Services) *TaskHandler {
	return &TaskHandler{svc: svc}
}

type createTaskRequest struct {
	Title      string              `json:"title"`
	ProjectID  uint64              `json:"project_id"`
	AssigneeID *uint64             `json:"assignee_id"`
	Status     models.TaskStatus   `json:"status"`
	Priority   models.TaskPriority `json:"priority"`
	CreatedAt  *string             `json:"created_at"`
	DueDate    *string             `json:"due_date"`
}

// ListTasks returns tasks filtered by ?search=, ?status= and ?priority=, all ANDed,
// with the project and assignee of each task resolved
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := aggregation.TaskFilter{
		Search:   c.Query("search"),
		Status:   models.TaskStatus(filterQuery(c, "status")),
		Priority: models.TaskPriority(filterQuery(c, "priority")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		apierrors.BadRequest(c, "Invalid status")
		return
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		apierrors.BadRequest(c, "Invalid priority")
		return
	}

	ws, err := h.svc.Workspace.Load(c.Request.Context())
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	matched := aggregation.FilterTasks(ws.Tasks, filter)
	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks:          dto.ToTaskDTOs(matched, aggregation.MembersByID(ws.TeamMembers), aggregation.ProjectsByID(ws.Projects)),
		StatusCounts:   aggregation.TallyTaskStatus(ws.Tasks),
		PriorityCounts: aggregation.TallyTaskPriority(ws.Tasks),
	})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	task, err := h.svc.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}
	if task == nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	errs := map[string]string{}
	input := services.CreateTaskInput{
		Title:      req.Title,
		ProjectID:  req.ProjectID,
		AssigneeID: req.AssigneeID,
		Status:     req.Status,
		Priority:   req.Priority,
		CreatedAt:  parseOptionalDate(errs, "created_at", req.CreatedAt),
		DueDate:    parseOptionalDate(errs, "due_date", req.DueDate),
	}
	if err := fieldErrors(errs); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	task, err := h.svc.Tasks.Create(c.Request.Context(), input)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial patch. due_date and assignee_id may be sent as null to clear them.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	body, err := bindPatch(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	patch, err := parseTaskPatch(body)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	task, err := h.svc.Tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, _ := middleware.GetID(c, "id")

	if err := h.svc.Tasks.Delete(c.Request.Context(), id); err != nil {
		apierrors.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
