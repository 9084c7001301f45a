package remote

import (
	"context"

	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
)

const projectTable = "project_c"

var projectFields = []string{"Name", "code_c", "description_c", "start_date_c", "end_date_c", "duration_c", "status_c"}

// ProjectRepository stores projects in the project_c table
type ProjectRepository struct {
	table table[models.Project]
}

func NewProjectRepository(client RecordClient) *ProjectRepository {
	return &ProjectRepository{table: newTable(client, projectTable, projectFields, decodeProject)}
}

func decodeProject(r recordstore.Record) (models.Project, error) {
	id, err := recordID(projectTable, r)
	if err != nil {
		return models.Project{}, err
	}
	project := models.Project{
		ID:          id,
		Name:        toString(r["Name"]),
		Code:        toString(r["code_c"]),
		Description: toString(r["description_c"]),
		Duration:    toInt(r["duration_c"]),
		Status:      models.ProjectStatus(toString(r["status_c"])),
	}
	project.StartDate, _ = toTime(r["start_date_c"])
	project.EndDate, _ = toTime(r["end_date_c"])
	return project, nil
}

func encodeProject(p *models.Project) recordstore.Record {
	return recordstore.Record{
		"Name":          p.Name,
		"code_c":        p.Code,
		"description_c": p.Description,
		"start_date_c":  formatTime(p.StartDate),
		"end_date_c":    formatTime(p.EndDate),
		"duration_c":    p.Duration,
		"status_c":      string(p.Status),
	}
}

func encodeProjectPatch(p models.ProjectPatch) recordstore.Record {
	changes := recordstore.Record{}
	if p.Name != nil {
		changes["Name"] = *p.Name
	}
	if p.Code != nil {
		changes["code_c"] = *p.Code
	}
	if p.Description != nil {
		changes["description_c"] = *p.Description
	}
	if p.StartDate != nil {
		changes["start_date_c"] = formatTime(*p.StartDate)
	}
	if p.EndDate != nil {
		changes["end_date_c"] = formatTime(*p.EndDate)
	}
	if p.Duration != nil {
		changes["duration_c"] = *p.Duration
	}
	if p.Status != nil {
		changes["status_c"] = string(*p.Status)
	}
	return changes
}

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.table.list(ctx)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint64) (*models.Project, error) {
	return r.table.find(ctx, id)
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	created, err := r.table.create(ctx, encodeProject(project))
	if err != nil {
		return err
	}
	*project = created
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uint64, patch models.ProjectPatch) (*models.Project, error) {
	return r.table.update(ctx, id, encodeProjectPatch(patch))
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	return r.table.remove(ctx, id)
}
