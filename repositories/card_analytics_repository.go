// repositories/card_analytics_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"cardlink.app/configs/configsdatabase"
	"cardlink.app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ICardAnalyticsRepository kart görüntüleme sayaçları için arayüz.
type ICardAnalyticsRepository interface {
	IncrementViewCount(ctx context.Context, cardID uint) error
	GetByCardID(ctx context.Context, cardID uint) (*models.CardAnalytics, error)
}

// CardAnalyticsRepository ICardAnalyticsRepository arayüzünü uygular.
type CardAnalyticsRepository struct {
	db *gorm.DB
}

// NewCardAnalyticsRepository yeni bir örnek oluşturur.
func NewCardAnalyticsRepository() ICardAnalyticsRepository {
	return &CardAnalyticsRepository{db: configsdatabase.GetDB()}
}

// IncrementViewCount sayacı atomik olarak artırır; satır yoksa oluşturur.
func (r *CardAnalyticsRepository) IncrementViewCount(ctx context.Context, cardID uint) error {
	if cardID == 0 {
		return errors.New("geçersiz kart ID")
	}
	now := time.Now()
	row := models.CardAnalytics{CardID: cardID, ViewCount: 1, LastViewedAt: &now}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "card_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"view_count":     gorm.Expr("card_analytics.view_count + 1"),
			"last_viewed_at": now,
			"updated_at":     now,
		}),
	}).Create(&row).Error
}

func (r *CardAnalyticsRepository) GetByCardID(ctx context.Context, cardID uint) (*models.CardAnalytics, error) {
	var row models.CardAnalytics
	err := r.db.WithContext(ctx).Where("card_id = ?", cardID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

var _ ICardAnalyticsRepository = (*CardAnalyticsRepository)(nil)
