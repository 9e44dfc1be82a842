// services/auth_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"cardlink.app/configs"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/repositories"
	"cardlink.app/utils"

	"go.uber.org/zap"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya parola hatalı"
	ErrAuthEmailTaken         AuthServiceError = "bu e-posta zaten kayıtlı"
	ErrAuthUserDisabled       AuthServiceError = "hesap pasif durumda"
	ErrAuthInvalidInput       AuthServiceError = "e-posta ve parola zorunludur"
)

// IAuthService kimlik doğrulama işlemleri için arayüz.
// Oturum durumu sunucuda tutulmaz; her istek kendi token'ını taşır.
type IAuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	users repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register yeni bir kullanıcı oluşturur.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrAuthInvalidInput
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrAuthEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		configslog.Log.Error("Register: e-posta kontrolü başarısız", zap.Error(err))
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Register: parola hash'lenemedi", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydı: %s (ID %d)", user.Email, user.ID)
	return user, nil
}

// Login kimlik bilgilerini doğrular ve imzalı bir token döndürür.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrAuthInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrAuthInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrAuthInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrAuthUserDisabled
	}

	cfg := configs.Get()
	ttl := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, user.IsSystem, ttl)
	if err != nil {
		configslog.Log.Error("Login: token üretilemedi", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", nil, err
	}

	return token, user, nil
}

var _ IAuthService = (*AuthService)(nil)
