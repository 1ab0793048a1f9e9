package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hiring-platform-api/internal/config"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: "file::memory:"}

	db, err := Connect(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	require.True(t, migrator.HasTable(&models.Application{}))
	require.True(t, migrator.HasIndex(&models.Application{}, "idx_applications_job_candidate"))
	require.True(t, migrator.HasIndex(&models.Job{}, "idx_jobs_listing"))

	// Running twice must be harmless.
	require.NoError(t, Migrate(db))
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
}
