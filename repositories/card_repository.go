// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"
	"strings"

	"cardlink.app/configs/configsdatabase"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	FindEnabledByShareKey(ctx context.Context, key string) (*models.Card, error)
	ShareKeyExists(ctx context.Context, key string) (bool, error)
	UpdateCard(ctx context.Context, card *models.Card) error
	UpdateDetail(ctx context.Context, detail *models.CardDetail) error
	DeleteCard(ctx context.Context, id uint) error
	FindAllCardsByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	CountCardsByUserID(ctx context.Context, userID uint) (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	base *BaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	db := configsdatabase.GetDB()
	return &CardRepository{base: NewBaseRepository[models.Card](db), db: db}
}

// NewCardRepositoryTx transaction üzerinde çalışan bir örnek oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return &CardRepository{base: NewBaseRepository[models.Card](tx), db: tx}
}

// CreateCard kartı ve detayını (cascade) oluşturur.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	return r.base.Create(ctx, card)
}

// GetCardByID kartı Detail ve Analytics ile yükler.
func (r *CardRepository) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Detail").Preload("Analytics").First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.GetCardByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindEnabledByShareKey public anahtar ile AKTİF kartı bulur.
// Pasif kart da "yok" muamelesi görür.
func (r *CardRepository) FindEnabledByShareKey(ctx context.Context, key string) (*models.Card, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Detail").
		Where("share_key = ? AND is_enabled = ?", key, true).
		First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.FindEnabledByShareKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// ShareKeyExists anahtarın zaten kullanımda olup olmadığını kontrol eder.
func (r *CardRepository) ShareKeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("share_key = ?", key).Count(&count).Error
	return count > 0, err
}

// UpdateCard kartın ana kaydını Save ile günceller (hook'lar çalışır).
func (r *CardRepository) UpdateCard(ctx context.Context, card *models.Card) error {
	return r.db.WithContext(ctx).Omit("Detail", "Analytics").Save(card).Error
}

// UpdateDetail kart detayını Save ile günceller.
func (r *CardRepository) UpdateDetail(ctx context.Context, detail *models.CardDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// DeleteCard kartı soft-delete eder. Contact kayıtları bilinçli olarak kalır.
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// applyListFilters isim/şirket ve durum filtrelerini sorguya ekler.
func applyListFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Name != "" {
		search := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where(
			"LOWER(card_details.first_name) LIKE ? OR LOWER(card_details.last_name) LIKE ? OR LOWER(card_details.company) LIKE ?",
			search, search, search,
		)
	}
	switch params.Status {
	case "enabled":
		query = query.Where("cards.is_enabled = ?", true)
	case "disabled":
		query = query.Where("cards.is_enabled = ?", false)
	}
	return query
}

// Detail tablosuna göre sıralama için izin verilen kolonlar.
var cardSortColumns = map[string]string{
	"id":         "cards.id",
	"created_at": "cards.created_at",
	"is_enabled": "cards.is_enabled",
	"first_name": "card_details.first_name",
	"last_name":  "card_details.last_name",
	"company":    "card_details.company",
	"card_name":  "card_details.card_name",
}

// listCards ortak listeleme sorgusunu çalıştırır.
func (r *CardRepository) listCards(ctx context.Context, base *gorm.DB, params queryparams.ListParams) ([]models.Card, int64, error) {
	params.Normalize()

	var results []models.Card
	var totalCount int64

	query := applyListFilters(base, params)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	orderColumn, ok := cardSortColumns[params.SortBy]
	if !ok {
		orderColumn = "cards.created_at"
	}
	query = query.Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Select("cards.*")

	if err := query.Find(&results).Error; err != nil {
		return nil, 0, err
	}

	// JOIN'lu sorguda Detail'i ayrıca yükle.
	if len(results) > 0 {
		cardIDs := make([]uint, len(results))
		for i, card := range results {
			cardIDs[i] = card.ID
		}
		var details []models.CardDetail
		if err := r.db.WithContext(ctx).Where("card_id IN ?", cardIDs).Find(&details).Error; err != nil {
			configslog.Log.Warn("CardRepository.listCards: detaylar yüklenemedi", zap.Error(err))
		} else {
			detailsMap := make(map[uint]models.CardDetail, len(details))
			for _, d := range details {
				detailsMap[d.CardID] = d
			}
			for i := range results {
				if detail, found := detailsMap[results[i].ID]; found {
					results[i].Detail = detail
				}
			}
		}
	}

	return results, totalCount, nil
}

// FindAllCardsByUserIDPaginated kullanıcıya ait kartları sayfalayarak listeler.
func (r *CardRepository) FindAllCardsByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("geçersiz kullanıcı ID")
	}
	base := r.db.WithContext(ctx).Model(&models.Card{}).
		Joins("JOIN card_details ON card_details.card_id = cards.id").
		Where("cards.creator_user_id = ?", userID)
	return r.listCards(ctx, base, params)
}

// GetAllCardsPaginated tüm kartları listeler (admin görünümü).
func (r *CardRepository) GetAllCardsPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Card{}).
		Joins("JOIN card_details ON card_details.card_id = cards.id")
	return r.listCards(ctx, base, params)
}

// CountCardsByUserID kullanıcıya ait kart sayısını alır.
func (r *CardRepository) CountCardsByUserID(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.New("geçersiz kullanıcı ID")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("creator_user_id = ?", userID).Count(&count).Error
	return count, err
}

var _ ICardRepository = (*CardRepository)(nil)
