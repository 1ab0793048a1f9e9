package database

import (
	"fmt"

	"github.com/yukikurage/hiring-platform-api/internal/logger"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes ensures the composite indexes the list queries rely on exist.
// Indexes are declared on the models; this only fills gaps left by older schemas.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model interface{}
		name  string
	}{
		{&models.Job{}, "idx_jobs_listing"},
		{&models.Application{}, "idx_applications_job_candidate"},
		{&models.Organization{}, "idx_organizations_slug"},
		{&models.User{}, "idx_users_email"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		logger.Info("Created index", "index", idx.name)
	}

	return nil
}
