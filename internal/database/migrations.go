package database

import (
	"fmt"

	applog "github.com/yukikurage/project-dashboard-api/internal/logger"
	"gorm.io/gorm"
)

type index struct {
	table   string
	name    string
	columns string
}

// secondaryIndexes are the indexes the page queries rely on beyond the foreign key
// indexes declared on the models
var secondaryIndexes = []index{
	{"projects", "idx_projects_status", "status"},
	{"projects", "idx_projects_start_date", "start_date"},
	{"tasks", "idx_tasks_status", "status"},
	{"tasks", "idx_tasks_priority", "priority"},
	{"tasks", "idx_tasks_due_date", "due_date"},
	// not unique: duplicate assignments of the same pair are allowed
	{"project_assignments", "idx_project_assignments_pair", "project_id, member_id"},
}

// AddIndexes adds the secondary indexes that do not exist yet
func AddIndexes(db *gorm.DB) error {
	for _, idx := range secondaryIndexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			applog.Log.WithField("index", idx.name).Debug("Index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		applog.Log.WithField("index", idx.name).Infof("Created index on %s(%s)", idx.table, idx.columns)
	}

	return nil
}
