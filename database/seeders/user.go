package seeders

import (
	"errors"

	"cardlink.app/configs"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSystemUser sistem kullanıcısını oluşturur veya parolasını günceller.
// Sistem kullanıcısı dashboard'a erişen tek hesaptır.
func SeedSystemUser(db *gorm.DB) error {
	cfg := configs.Get()

	if cfg.SystemUserPassword == "" {
		configslog.SLog.Warn("SYSTEM_USER_PASSWORD tanımlı değil, sistem kullanıcısı seed edilmeyecek.")
		return nil
	}

	hash, err := utils.HashPassword(cfg.SystemUserPassword)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı parolası hashlenemedi", zap.Error(err))
		return err
	}

	var existing models.User
	result := db.Where("email = ?", cfg.SystemUserEmail).First(&existing)

	if result.Error == nil {
		existing.PasswordHash = hash
		existing.IsSystem = true
		existing.IsActive = true
		if err := db.Save(&existing).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı güncellenemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem kullanıcısı '%s' güncellendi (ID: %d).", existing.Email, existing.ID)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	systemUser := models.User{
		Email:        cfg.SystemUserEmail,
		PasswordHash: hash,
		FullName:     "System",
		IsSystem:     true,
		IsActive:     true,
	}
	if err := db.Create(&systemUser).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı '%s' oluşturuldu (ID: %d).", systemUser.Email, systemUser.ID)
	return nil
}
