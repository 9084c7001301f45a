package remote

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
)

const assignmentTable = "project_assignment_c"

var assignmentFields = []string{"Name", "role_c", "joined_at_c", "project_id_c", "member_id_c"}

// ProjectAssignmentRepository stores assignments in the project_assignment_c table
type ProjectAssignmentRepository struct {
	table table[models.ProjectAssignment]
}

func NewProjectAssignmentRepository(client RecordClient) *ProjectAssignmentRepository {
	return &ProjectAssignmentRepository{table: newTable(client, assignmentTable, assignmentFields, decodeAssignment)}
}

func assignmentName(role string) string {
	return role + " - Project Assignment"
}

func decodeAssignment(r recordstore.Record) (models.ProjectAssignment, error) {
	id, err := recordID(assignmentTable, r)
	if err != nil {
		return models.ProjectAssignment{}, err
	}
	assignment := models.ProjectAssignment{
		ID:   id,
		Role: toString(r["role_c"]),
	}
	assignment.ProjectID, _ = toID(r["project_id_c"])
	assignment.MemberID, _ = toID(r["member_id_c"])
	assignment.JoinedAt, _ = toTime(r["joined_at_c"])
	return assignment, nil
}

func encodeAssignment(a *models.ProjectAssignment) recordstore.Record {
	return recordstore.Record{
		"Name":         assignmentName(a.Role),
		"role_c":       a.Role,
		"joined_at_c":  formatTime(a.JoinedAt),
		"project_id_c": a.ProjectID,
		"member_id_c":  a.MemberID,
	}
}

func encodeAssignmentPatch(p models.ProjectAssignmentPatch) recordstore.Record {
	changes := recordstore.Record{}
	if p.Role != nil {
		changes["Name"] = assignmentName(*p.Role)
		changes["role_c"] = *p.Role
	}
	if p.JoinedAt != nil {
		changes["joined_at_c"] = formatTime(*p.JoinedAt)
	}
	return changes
}

func (r *ProjectAssignmentRepository) List(ctx context.Context) ([]models.ProjectAssignment, error) {
	return r.table.list(ctx)
}

func (r *ProjectAssignmentRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.ProjectAssignment, error) {
	return r.table.list(ctx, recordstore.EqualTo("project_id_c", projectID))
}

func (r *ProjectAssignmentRepository) ListByMember(ctx context.Context, memberID uint64) ([]models.ProjectAssignment, error) {
	return r.table.list(ctx, recordstore.EqualTo("member_id_c", memberID))
}

// FindByPair returns the newest assignment of memberID to projectID
func (r *ProjectAssignmentRepository) FindByPair(ctx context.Context, projectID, memberID uint64) (*models.ProjectAssignment, error) {
	return r.table.first(ctx,
		recordstore.EqualTo("project_id_c", projectID),
		recordstore.EqualTo("member_id_c", memberID),
	)
}

func (r *ProjectAssignmentRepository) FindByID(ctx context.Context, id uint64) (*models.ProjectAssignment, error) {
	return r.table.find(ctx, id)
}

func (r *ProjectAssignmentRepository) Create(ctx context.Context, assignment *models.ProjectAssignment) error {
	created, err := r.table.create(ctx, encodeAssignment(assignment))
	if err != nil {
		return err
	}
	*assignment = created
	return nil
}

func (r *ProjectAssignmentRepository) Update(ctx context.Context, id uint64, patch models.ProjectAssignmentPatch) (*models.ProjectAssignment, error) {
	return r.table.update(ctx, id, encodeAssignmentPatch(patch))
}

func (r *ProjectAssignmentRepository) Delete(ctx context.Context, id uint64) error {
	return r.table.remove(ctx, id)
}
