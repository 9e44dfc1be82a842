package migrations

import (
	"cardlink.app/configs/configslog"
	"cardlink.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardAnalyticsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating card_analytics table...")
	err := db.AutoMigrate(&models.CardAnalytics{})
	if err != nil {
		configslog.Log.Error("Failed to migrate card_analytics table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Card_analytics table migrated successfully")
	return nil
}
