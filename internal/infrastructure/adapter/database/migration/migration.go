package migration

import (
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date for all models.
// Order matters: investments and reviews reference users and campaigns.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	models := []any{
		&model.User{},
		&model.Campaign{},
		&model.Investment{},
		&model.Review{},
	}

	for _, mdl := range models {
		if err := m.db.AutoMigrate(mdl); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
