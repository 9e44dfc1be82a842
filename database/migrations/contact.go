package migrations

import (
	"cardlink.app/configs/configslog"
	"cardlink.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContactsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating contacts table...")
	err := db.AutoMigrate(&models.Contact{})
	if err != nil {
		configslog.Log.Error("Failed to migrate contacts table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Contacts table migrated successfully")
	return nil
}
