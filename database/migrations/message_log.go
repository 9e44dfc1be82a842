package migrations

import (
	"cardlink.app/configs/configslog"
	"cardlink.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateMessageLogsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating message_logs table...")
	err := db.AutoMigrate(&models.MessageLog{})
	if err != nil {
		configslog.Log.Error("Failed to migrate message_logs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Message_logs table migrated successfully")
	return nil
}
