package seeders

import (
	"context"
	"errors"

	"cardlink.app/configs"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDemoCard geliştirme ortamında örnek bir kartvizit oluşturur.
// Production'da ve halihazırda kart varsa hiçbir şey yapmaz.
func SeedDemoCard(db *gorm.DB) error {
	cfg := configs.Get()
	if cfg.IsProduction() {
		configslog.SLog.Info("Production ortamı, demo kart seed edilmeyecek.")
		return nil
	}

	var cardCount int64
	if err := db.Model(&models.Card{}).Count(&cardCount).Error; err != nil {
		configslog.Log.Error("Demo kart kontrolünde veritabanı hatası", zap.Error(err))
		return err
	}
	if cardCount > 0 {
		configslog.SLog.Debug("Kart kaydı mevcut, demo kart atlanıyor.")
		return nil
	}

	var systemUser models.User
	err := db.Where("email = ?", cfg.SystemUserEmail).First(&systemUser).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.SLog.Warn("Sistem kullanıcısı yok, demo kart seed edilmeyecek.")
		return nil
	}
	if err != nil {
		return err
	}

	shareKey, err := utils.GenerateSecureRandomString(20)
	if err != nil {
		configslog.Log.Error("Demo kart için paylaşım anahtarı üretilemedi", zap.Error(err))
		return err
	}

	ctx := context.WithValue(context.Background(), models.ContextUserIDKey, systemUser.ID)
	demoCard := models.Card{
		ShareKey:      shareKey,
		CreatorUserID: systemUser.ID,
		IsEnabled:     true,
		Detail: models.CardDetail{
			CardName:         "Demo Card",
			FirstName:        "Demo",
			LastName:         "User",
			Title:            "Founder",
			Company:          "CardLink",
			MobileNumber:     "+15550001234",
			AllowSaveContact: true,
		},
	}
	if err := db.WithContext(ctx).Create(&demoCard).Error; err != nil {
		configslog.Log.Error("Demo kart oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo kart oluşturuldu (ID: %d, ShareKey: %s).", demoCard.ID, demoCard.ShareKey)
	return nil
}
