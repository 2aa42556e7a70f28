package db

import (
	"fmt"

	"gorm.io/gorm"

	"userbase/internal/logging"
	"userbase/models"
)

var syncedModels = []interface{}{
	&models.User{},
}

// SyncSchema reconciles the tables for every model. With force set the
// tables are dropped first, so all rows are lost.
func SyncSchema(gdb *gorm.DB, force bool) error {
	if force {
		logging.Info.Println("Forced schema sync: dropping existing tables")
		if err := gdb.Migrator().DropTable(syncedModels...); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}

	if err := gdb.AutoMigrate(syncedModels...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	logging.Info.Println("Database schema synchronized successfully")
	return nil
}
