package remote

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
)

const teamMemberTable = "team_member_c"

var teamMemberFields = []string{"Name", "email_c", "role_c", "avatar_c"}

// TeamMemberRepository stores team members in the team_member_c table
type TeamMemberRepository struct {
	table table[models.TeamMember]
}

func NewTeamMemberRepository(client RecordClient) *TeamMemberRepository {
	return &TeamMemberRepository{table: newTable(client, teamMemberTable, teamMemberFields, decodeTeamMember)}
}

func decodeTeamMember(r recordstore.Record) (models.TeamMember, error) {
	id, err := recordID(teamMemberTable, r)
	if err != nil {
		return models.TeamMember{}, err
	}
	return models.TeamMember{
		ID:     id,
		Name:   toString(r["Name"]),
		Email:  toString(r["email_c"]),
		Role:   toString(r["role_c"]),
		Avatar: toString(r["avatar_c"]),
	}, nil
}

func encodeTeamMember(m *models.TeamMember) recordstore.Record {
	return recordstore.Record{
		"Name":     m.Name,
		"email_c":  m.Email,
		"role_c":   m.Role,
		"avatar_c": m.Avatar,
	}
}

func encodeTeamMemberPatch(p models.TeamMemberPatch) recordstore.Record {
	changes := recordstore.Record{}
	if p.Name != nil {
		changes["Name"] = *p.Name
	}
	if p.Email != nil {
		changes["email_c"] = *p.Email
	}
	if p.Role != nil {
		changes["role_c"] = *p.Role
	}
	if p.Avatar != nil {
		changes["avatar_c"] = *p.Avatar
	}
	return changes
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	return r.table.list(ctx)
}

func (r *TeamMemberRepository) FindByID(ctx context.Context, id uint64) (*models.TeamMember, error) {
	return r.table.find(ctx, id)
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	created, err := r.table.create(ctx, encodeTeamMember(member))
	if err != nil {
		return err
	}
	*member = created
	return nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, id uint64, patch models.TeamMemberPatch) (*models.TeamMember, error) {
	return r.table.update(ctx, id, encodeTeamMemberPatch(patch))
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uint64) error {
	return r.table.remove(ctx, id)
}
