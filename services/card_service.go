// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"cardlink.app/configs/configsdatabase"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/pkg/queryparams"
	"cardlink.app/repositories"
	"cardlink.app/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "kartvizit bulunamadı"
	ErrCardCreationFailed CardServiceError = "kartvizit oluşturulamadı"
	ErrCardUpdateFailed   CardServiceError = "kartvizit güncellenemedi"
	ErrCardDeletionFailed CardServiceError = "kartvizit silinemedi"
	ErrCardForbidden      CardServiceError = "bu işlem için yetkiniz yok"
	ErrCrdInvalidInput    CardServiceError = "geçersiz girdi verisi"
	ErrCardNameRequired   CardServiceError = "isim ve soyisim zorunludur"
	ErrCrdKeyGeneration   CardServiceError = "kartvizit için paylaşım anahtarı üretilemedi"
)

// Paylaşım anahtarı uzunluğu; public URL'de kullanılır.
const shareKeyLength = 20

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, creatorUserID uint, detailData models.CardDetail) (*models.Card, error)
	GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error)
	GetCardByKey(ctx context.Context, key string) (*models.Card, error) // Public erişim
	GetCardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) // Admin
	UpdateCard(ctx context.Context, id uint, updatingUserID uint, detailData models.CardDetail, isEnabled bool) error
	DeleteCard(ctx context.Context, id uint, deletingUserID uint) error
	GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error)
	RecordCardView(ctx context.Context, cardID uint) error
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo          repositories.ICardRepository
	userRepo      repositories.IUserRepository
	analyticsRepo repositories.ICardAnalyticsRepository
	db            *gorm.DB // Transaction yönetimi için
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		repo:          repositories.NewCardRepository(),
		userRepo:      repositories.NewUserRepository(),
		analyticsRepo: repositories.NewCardAnalyticsRepository(),
		db:            configsdatabase.GetDB(),
	}
}

// ValidateCardDetail temel validasyonları yapar.
func ValidateCardDetail(detail models.CardDetail) error {
	if detail.FirstName == "" || detail.LastName == "" {
		return ErrCardNameRequired
	}
	if detail.CardName == "" {
		return fmt.Errorf("%w: kart adı zorunludur", ErrCrdInvalidInput)
	}
	return nil
}

// contextWithUserID context'e user_id ekler (BaseModel hook'ları için).
func contextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, models.ContextUserIDKey, userID)
}

// CreateCard yeni bir kartvizit ve detayını TEK BİR TRANSACTION içinde oluşturur.
// Paylaşım anahtarı transaction içinde üretilip benzersizliği kontrol edilir.
func (s *CardService) CreateCard(ctx context.Context, creatorUserID uint, detailData models.CardDetail) (*models.Card, error) {
	if err := ValidateCardDetail(detailData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz oluşturan kullanıcı ID", ErrCrdInvalidInput)
	}

	var createdCard *models.Card

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, creatorUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		// Benzersiz paylaşım anahtarı üret; çakışmada yeniden dene.
		var shareKey string
		const maxKeyAttempts = 5
		for i := 0; i < maxKeyAttempts; i++ {
			keyAttempt, keyErr := utils.GenerateSecureRandomString(shareKeyLength)
			if keyErr != nil {
				return ErrCrdKeyGeneration
			}
			exists, existsErr := cardRepoTx.ShareKeyExists(txCtx, keyAttempt)
			if existsErr != nil {
				configslog.Log.Error("Paylaşım anahtarı benzersizlik kontrolü hatası", zap.Error(existsErr))
				return ErrCrdKeyGeneration
			}
			if !exists {
				shareKey = keyAttempt
				break
			}
			configslog.Log.Warn("Paylaşım anahtarı çakışması, yeniden deneniyor...", zap.String("key", keyAttempt))
		}
		if shareKey == "" {
			return ErrCrdKeyGeneration
		}

		card := models.Card{
			ShareKey:      shareKey,
			CreatorUserID: creatorUserID,
			IsEnabled:     true,
			Detail:        detailData,
		}
		if err := cardRepoTx.CreateCard(txCtx, &card); err != nil {
			configslog.Log.Error("Kartvizit oluşturulamadı", zap.Error(err))
			return ErrCardCreationFailed
		}

		createdCard = &card
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kartvizit oluşturuldu: CardID %d, ShareKey: %s", createdCard.ID, createdCard.ShareKey)
	return createdCard, nil
}

// GetCardByID belirli bir kartviziti ID ve kullanıcı yetkisine göre getirir.
func (s *CardService) GetCardByID(ctx context.Context, id uint, requestingUserID uint) (*models.Card, error) {
	card, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByID: repo error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	requestingUser, userErr := s.userRepo.FindByID(ctx, requestingUserID)
	if userErr != nil {
		configslog.Log.Error("GetCardByID yetki kontrolü: kullanıcı bulunamadı",
			zap.Uint("user_id", requestingUserID), zap.Error(userErr))
		return nil, ErrCardForbidden
	}
	if !requestingUser.IsSystem && card.CreatorUserID != requestingUserID {
		configslog.Log.Warn("Yetkisiz kartvizit erişim denemesi",
			zap.Uint("card_id", id), zap.Uint("user_id", requestingUserID), zap.Uint("owner_id", card.CreatorUserID))
		return nil, ErrCardForbidden
	}

	return card, nil
}

// GetCardByKey public paylaşım anahtarı ile AKTİF kartviziti getirir.
func (s *CardService) GetCardByKey(ctx context.Context, key string) (*models.Card, error) {
	if key == "" {
		return nil, ErrCardNotFound
	}
	card, err := s.repo.FindEnabledByShareKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByKey: repo error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return card, nil
}

// GetCardsForUserPaginated kullanıcıya ait kartvizitleri sayfalayarak getirir.
func (s *CardService) GetCardsForUserPaginated(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if creatorUserID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	params.Normalize()

	cards, totalCount, err := s.repo.FindAllCardsByUserIDPaginated(ctx, creatorUserID, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizitleri alınırken hata", zap.Uint("creator_user_id", creatorUserID), zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetAllCardsPaginated tüm kartvizitleri listeler (admin görünümü).
func (s *CardService) GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Normalize()

	cards, totalCount, err := s.repo.GetAllCardsPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Kartvizit listesi alınırken hata", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateCard mevcut bir kartviziti ve detaylarını günceller.
func (s *CardService) UpdateCard(ctx context.Context, id uint, updatingUserID uint, detailData models.CardDetail, isEnabled bool) error {
	if err := ValidateCardDetail(detailData); err != nil {
		return fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}
	if id == 0 || updatingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya güncelleyen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, updatingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		// Mevcut kaydı kilitli olarak al.
		var existingCard models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Detail").First(&existingCard, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("UpdateCard: kayıt alınamadı", zap.Uint("id", id), zap.Error(err))
			return err
		}

		// Yetki kontrolü.
		requestingUser, userErr := userRepoTx.FindByID(txCtx, updatingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && existingCard.CreatorUserID != updatingUserID {
			return ErrCardForbidden
		}

		// Pasifleştirme boolean'dır; contact kayıtlarına dokunulmaz.
		existingCard.IsEnabled = isEnabled

		existingDetail := existingCard.Detail
		existingDetail.CardName = detailData.CardName
		existingDetail.FirstName = detailData.FirstName
		existingDetail.LastName = detailData.LastName
		existingDetail.Title = detailData.Title
		existingDetail.Company = detailData.Company
		existingDetail.MobileNumber = detailData.MobileNumber
		existingDetail.OfficeNumber = detailData.OfficeNumber
		existingDetail.WorkAddress = detailData.WorkAddress
		existingDetail.AvatarURL = detailData.AvatarURL
		existingDetail.LogoURL = detailData.LogoURL
		existingDetail.ThemeColor = detailData.ThemeColor
		existingDetail.AllowSaveContact = detailData.AllowSaveContact

		if err := cardRepoTx.UpdateDetail(txCtx, &existingDetail); err != nil {
			configslog.Log.Error("Kartvizit detayı güncellenemedi", zap.Uint("detail_id", existingDetail.ID), zap.Error(err))
			return ErrCardUpdateFailed
		}
		if err := cardRepoTx.UpdateCard(txCtx, &existingCard); err != nil {
			configslog.Log.Error("Kartvizit güncellenemedi", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}

		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Kartvizit güncellendi: ID %d", id)
	return nil
}

// DeleteCard bir kartviziti siler (soft delete). Contact kayıtları kalır.
func (s *CardService) DeleteCard(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrCrdInvalidInput)
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithUserID(ctx, deletingUserID)
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		var cardToDelete models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cardToDelete, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("DeleteCard: kayıt alınamadı", zap.Uint("id", id), zap.Error(err))
			return err
		}

		requestingUser, userErr := userRepoTx.FindByID(txCtx, deletingUserID)
		if userErr != nil {
			return ErrCardForbidden
		}
		if !requestingUser.IsSystem && cardToDelete.CreatorUserID != deletingUserID {
			return ErrCardForbidden
		}

		if err := cardRepoTx.DeleteCard(txCtx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kartvizit silinemedi", zap.Uint("id", id), zap.Error(err))
			return ErrCardDeletionFailed
		}

		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Kartvizit silindi: ID %d", id)
	return nil
}

// GetCardCountForUser kullanıcıya ait kartvizit sayısını alır.
func (s *CardService) GetCardCountForUser(ctx context.Context, creatorUserID uint) (int64, error) {
	count, err := s.repo.CountCardsByUserID(ctx, creatorUserID)
	if err != nil {
		configslog.Log.Error("Kullanıcı kartvizit sayısı alınırken hata", zap.Uint("creator_user_id", creatorUserID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// RecordCardView public görüntüleme sayacını artırır. Sayaç public kart
// görüntüleme akışına aittir; intro pipeline bu sayaca dokunmaz.
func (s *CardService) RecordCardView(ctx context.Context, cardID uint) error {
	if err := s.analyticsRepo.IncrementViewCount(ctx, cardID); err != nil {
		configslog.Log.Warn("Görüntüleme sayacı artırılamadı", zap.Uint("card_id", cardID), zap.Error(err))
		return err
	}
	return nil
}

var _ ICardService = (*CardService)(nil)
