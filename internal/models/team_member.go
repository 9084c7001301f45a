package models

type TeamMember struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Email  string `gorm:"type:varchar(255);not null" json:"email"`
	Role   string `gorm:"type:varchar(100)" json:"role"`
	Avatar string `gorm:"type:varchar(1024)" json:"avatar"`
}

// TeamMemberPatch holds the fields to change on a team member
type TeamMemberPatch struct {
	Name   *string
	Email  *string
	Role   *string
	Avatar *string
}

func (p TeamMemberPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil && p.Avatar == nil
}

func (p TeamMemberPatch) Apply(member *TeamMember) {
	if p.Name != nil {
		member.Name = *p.Name
	}
	if p.Email != nil {
		member.Email = *p.Email
	}
	if p.Role != nil {
		member.Role = *p.Role
	}
	if p.Avatar != nil {
		member.Avatar = *p.Avatar
	}
}
