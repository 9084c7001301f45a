package remote

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
)

const taskTable = "task_c"

var taskFields = []string{"Name", "title_c", "status_c", "priority_c", "created_at_c", "due_date_c", "project_id_c", "assignee_id_c"}

// TaskRepository stores tasks in the task_c table
type TaskRepository struct {
	table table[models.Task]
}

func NewTaskRepository(client RecordClient) *TaskRepository {
	return &TaskRepository{table: newTable(client, taskTable, taskFields, decodeTask)}
}

func decodeTask(r recordstore.Record) (models.Task, error) {
	id, err := recordID(taskTable, r)
	if err != nil {
		return models.Task{}, err
	}
	task := models.Task{
		ID:       id,
		Title:    toString(r["title_c"]),
		Status:   models.TaskStatus(toString(r["status_c"])),
		Priority: models.TaskPriority(toString(r["priority_c"])),
	}
	if task.Title == "" {
		task.Title = toString(r["Name"])
	}
	task.ProjectID, _ = toID(r["project_id_c"])
	if assignee, ok := toID(r["assignee_id_c"]); ok {
		task.AssigneeID = &assignee
	}
	task.CreatedAt, _ = toTime(r["created_at_c"])
	if due, ok := toTime(r["due_date_c"]); ok {
		task.DueDate = &due
	}
	return task, nil
}

func encodeTask(t *models.Task) recordstore.Record {
	return recordstore.Record{
		"Name":          t.Title,
		"title_c":       t.Title,
		"status_c":      string(t.Status),
		"priority_c":    string(t.Priority),
		"created_at_c":  formatTime(t.CreatedAt),
		"due_date_c":    optionalTime(t.DueDate),
		"project_id_c":  t.ProjectID,
		"assignee_id_c": optionalID(t.AssigneeID),
	}
}

func encodeTaskPatch(p models.TaskPatch) recordstore.Record {
	changes := recordstore.Record{}
	if p.Title != nil {
		changes["Name"] = *p.Title
		changes["title_c"] = *p.Title
	}
	if p.Status != nil {
		changes["status_c"] = string(*p.Status)
	}
	if p.Priority != nil {
		changes["priority_c"] = string(*p.Priority)
	}
	if p.ProjectID != nil {
		changes["project_id_c"] = *p.ProjectID
	}
	if p.ClearAssignee {
		changes["assignee_id_c"] = nil
	} else if p.AssigneeID != nil {
		changes["assignee_id_c"] = *p.AssigneeID
	}
	if p.ClearDueDate {
		changes["due_date_c"] = nil
	} else if p.DueDate != nil {
		changes["due_date_c"] = formatTime(*p.DueDate)
	}
	return changes
}

func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	return r.table.list(ctx)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error) {
	return r.table.list(ctx, recordstore.EqualTo("project_id_c", projectID))
}

func (r *TaskRepository) ListByMember(ctx context.Context, memberID uint64) ([]models.Task, error) {
	return r.table.list(ctx, recordstore.EqualTo("assignee_id_c", memberID))
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	return r.table.find(ctx, id)
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	created, err := r.table.create(ctx, encodeTask(task))
	if err != nil {
		return err
	}
	*task = created
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, patch models.TaskPatch) (*models.Task, error) {
	return r.table.update(ctx, id, encodeTaskPatch(patch))
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.table.remove(ctx, id)
}
