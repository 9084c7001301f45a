package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID         uint64       `gorm:"primarykey" json:"id"`
	Title      string       `gorm:"not null" json:"title"`
	ProjectID  uint64       `gorm:"not null;index" json:"project_id"`
	AssigneeID *uint64      `gorm:"index" json:"assignee_id"`
	Status     TaskStatus   `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Priority   TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	CreatedAt  time.Time    `json:"created_at"`
	DueDate    *time.Time   `json:"due_date"`
}

// TaskPatch holds the fields to change on a task.
// ClearAssignee and ClearDueDate take precedence over the matching value.
type TaskPatch struct {
	Title         *string
	ProjectID     *uint64
	AssigneeID    *uint64
	ClearAssignee bool
	Status        *TaskStatus
	Priority      *TaskPriority
	DueDate       *time.Time
	ClearDueDate  bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.ProjectID == nil && p.AssigneeID == nil && !p.ClearAssignee &&
		p.Status == nil && p.Priority == nil && p.DueDate == nil && !p.ClearDueDate
}

func (p TaskPatch) Apply(task *Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.ProjectID != nil {
		task.ProjectID = *p.ProjectID
	}
	if p.ClearAssignee {
		task.AssigneeID = nil
	} else if p.AssigneeID != nil {
		id := *p.AssigneeID
		task.AssigneeID = &id
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.ClearDueDate {
		task.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		task.DueDate = &due
	}
}
