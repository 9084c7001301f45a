package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-dashboard-api/internal/config"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"projects", "team_members", "tasks", "project_assignments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	for _, idx := range secondaryIndexes {
		assert.True(t, db.Migrator().HasIndex(idx.table, idx.name), idx.name)
	}

	// Running again is a no-op
	require.NoError(t, Migrate(db))
}

func TestScopes(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Task{}))

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, db.Create(&models.Task{Title: title, ProjectID: 1, Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}).Error)
	}
	require.NoError(t, db.Create(&models.Task{Title: "other", ProjectID: 2, Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}).Error)

	var tasks []models.Task
	require.NoError(t, db.Scopes(WhereEquals("project_id", uint64(1)), NewestFirst).Find(&tasks).Error)

	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestDialectorFor_UnknownDriver(t *testing.T) {
	_, err := dialectorFor(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)

	d, err := dialectorFor(&config.Config{DBDriver: "sqlite", DBPath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}
