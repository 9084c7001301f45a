package models

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
)

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Code        string        `gorm:"type:varchar(50);not null" json:"code"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	StartDate   time.Time     `gorm:"not null" json:"start_date"`
	EndDate     time.Time     `gorm:"not null" json:"end_date"`
	Duration    int           `gorm:"not null;default:0" json:"duration"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}

// ProjectPatch holds the fields to change on a project. Nil fields are left as they are.
type ProjectPatch struct {
	Code        *string
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Duration    *int
	Status      *ProjectStatus
}

// IsEmpty reports whether the patch changes nothing
func (p ProjectPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Description == nil &&
		p.StartDate == nil && p.EndDate == nil && p.Duration == nil && p.Status == nil
}

// Apply merges the patch into project
func (p ProjectPatch) Apply(project *Project) {
	if p.Code != nil {
		project.Code = *p.Code
	}
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.StartDate != nil {
		project.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		project.EndDate = *p.EndDate
	}
	if p.Duration != nil {
		project.Duration = *p.Duration
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
}
