package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/constants"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

const entityTask = "task"

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	drafter     TaskDrafter
}

// NewTaskService creates a new TaskService. drafter may be nil.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, drafter TaskDrafter) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		drafter:     drafter,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title      string              `json:"title" validate:"required"`
	ProjectID  uint64              `json:"project_id" validate:"required"`
	AssigneeID *uint64             `json:"assignee_id"`
	Status     models.TaskStatus   `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Priority   models.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	CreatedAt  *time.Time          `json:"created_at"`
	DueDate    *time.Time          `json:"due_date"`
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fail(entityTask, "list", 0, err)
	}
	return tasks, nil
}

// GetByID returns the task or nil when it does not exist
func (s *TaskService) GetByID(ctx context.Context, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	return getOrNil(task, err, entityTask, id)
}

// ListByProject returns the tasks of a project, never nil
func (s *TaskService) ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fail(entityTask, "list", 0, err)
	}
	return tasks, nil
}

// ListByMember returns the tasks assigned to a member, never nil
func (s *TaskService) ListByMember(ctx context.Context, memberID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fail(entityTask, "list", 0, err)
	}
	return tasks, nil
}

// Create stores a task with default status and priority. The project and
// assignee references are not checked.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		Title:     input.Title,
		ProjectID: input.ProjectID,
		Status:    input.Status,
		Priority:  input.Priority,
		CreatedAt: now().UTC(),
	}
	if input.CreatedAt != nil {
		task.CreatedAt = *input.CreatedAt
	}
	if input.AssigneeID != nil {
		assignee := *input.AssigneeID
		task.AssigneeID = &assignee
	}
	if input.DueDate != nil {
		due := *input.DueDate
		task.DueDate = &due
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fail(entityTask, "create", 0, err)
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id uint64, patch models.TaskPatch) (*models.Task, error) {
	patch.Title = trimmed(patch.Title)
	if err := validateTaskPatch(patch); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fail(entityTask, "update", id, err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fail(entityTask, "delete", id, err)
	}
	return nil
}

func validateTaskPatch(patch models.TaskPatch) error {
	verr := &ValidationError{Fields: map[string]string{}}
	if patch.Title != nil && *patch.Title == "" {
		verr.Fields["title"] = "cannot be empty"
	}
	if patch.ProjectID != nil && *patch.ProjectID == 0 {
		verr.Fields["project_id"] = "is required"
	}
	if patch.Status != nil && !patch.Status.Valid() {
		verr.Fields["status"] = "must be one of: todo, in-progress, completed"
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		verr.Fields["priority"] = "must be one of: low, medium, high"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// SuggestTasks drafts tasks for a project from free text. Drafts are not stored.
func (s *TaskService) SuggestTasks(ctx context.Context, projectID uint64, text string) ([]TaskDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newValidationError("text", "is required")
	}
	if s.drafter == nil {
		return nil, ErrAIServiceNotConfigured
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fail(entityProject, "get", projectID, err)
	}

	drafts, err := s.drafter.DraftTasks(ctx, *project, text)
	if err != nil {
		return nil, fmt.Errorf("failed to draft tasks: %w", err)
	}

	if len(drafts) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(drafts) > constants.MaxAIGeneratedTasks {
		return nil, fmt.Errorf("%w (max %d)", ErrAITooManyTasks, constants.MaxAIGeneratedTasks)
	}

	valid := make([]TaskDraft, 0, len(drafts))
	cutoff := now().Add(-24 * time.Hour)
	for _, draft := range drafts {
		draft.Title = strings.TrimSpace(draft.Title)
		if draft.Title == "" {
			continue
		}
		if !draft.Priority.Valid() {
			draft.Priority = models.TaskPriorityMedium
		}
		if draft.DueDate != nil && draft.DueDate.Before(cutoff) {
			draft.DueDate = nil
		}
		valid = append(valid, draft)
	}

	if len(valid) == 0 {
		return nil, ErrAINoValidTasks
	}
	return valid, nil
}
