package models

import "time"

// ProjectAssignment places a team member on a project with a project-specific role.
// The (project, member) pair is not unique at the store level.
type ProjectAssignment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"not null;index" json:"project_id"`
	MemberID  uint64    `gorm:"not null;index" json:"member_id"`
	Role      string    `gorm:"type:varchar(100);not null" json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

type ProjectAssignmentPatch struct {
	Role     *string
	JoinedAt *time.Time
}

func (p ProjectAssignmentPatch) IsEmpty() bool {
	return p.Role == nil && p.JoinedAt == nil
}

func (p ProjectAssignmentPatch) Apply(assignment *ProjectAssignment) {
	if p.Role != nil {
		assignment.Role = *p.Role
	}
	if p.JoinedAt != nil {
		assignment.JoinedAt = *p.JoinedAt
	}
}
