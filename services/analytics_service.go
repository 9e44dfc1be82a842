// services/analytics_service.go
package services

import (
	"context"
	"errors"
	"time"

	"cardlink.app/configs/configslog"
	"cardlink.app/pkg/queryparams"
	"cardlink.app/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecentContact en son bağlantının özeti.
type RecentContact struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// ConnectionMetrics dashboard için türetilmiş metrikler. Saklanmaz, her
// çağrıda yeniden hesaplanır. Dört sorgu tek transaction'a sarılmaz; tutarlı
// bir anlık görüntü garanti edilmez.
// Degraded=true ise en az bir sorgu başarısız olmuştur; sıfırlar gerçek sıfır
// değil, eksik veridir.
type ConnectionMetrics struct {
	Total         int64          `json:"total"`
	ThisMonth     int64          `json:"thisMonth"`
	TopCity       *string        `json:"topCity"`
	TopCityCount  int64          `json:"topCityCount"`
	RecentContact *RecentContact `json:"recentContact"`
	Degraded      bool           `json:"degraded"`
}

// ContactLocation harita katmanına giden tek satır.
type ContactLocation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
	CardName  string    `json:"cardName"`
}

// IConnectionAnalyticsService bağlantı analitiği için arayüz.
type IConnectionAnalyticsService interface {
	GetConnectionMetrics(ctx context.Context, ownerID uint) *ConnectionMetrics
	ListGeolocatedContacts(ctx context.Context, ownerID uint) ([]ContactLocation, error)
	GetContactsForOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

// ConnectionAnalyticsService IConnectionAnalyticsService arayüzünü uygular.
type ConnectionAnalyticsService struct {
	contacts repositories.IContactRepository
	now      func() time.Time // Testlerde sabitlenebilir
}

// NewConnectionAnalyticsService yeni bir örnek oluşturur.
func NewConnectionAnalyticsService() IConnectionAnalyticsService {
	return &ConnectionAnalyticsService{
		contacts: repositories.NewContactRepository(),
		now:      time.Now,
	}
}

// GetConnectionMetrics dört bağımsız sorguyu çalıştırır ve asla hata döndürmez.
// Sorgu hatası metrikleri sıfırlar ve Degraded bayrağını kaldırır.
func (s *ConnectionAnalyticsService) GetConnectionMetrics(ctx context.Context, ownerID uint) *ConnectionMetrics {
	metrics := &ConnectionMetrics{}
	now := s.now()

	total, err := s.contacts.CountByOwner(ctx, ownerID)
	if err != nil {
		configslog.Log.Error("analytics: toplam sayım başarısız", zap.Uint("owner_id", ownerID), zap.Error(err))
		metrics.Degraded = true
	} else {
		metrics.Total = total
	}

	// Takvim ayı değil, sorgu anından geriye 30 gün (alt sınır dahil).
	since := now.AddDate(0, 0, -30)
	monthCount, err := s.contacts.CountByOwnerSince(ctx, ownerID, since)
	if err != nil {
		configslog.Log.Error("analytics: 30 günlük sayım başarısız", zap.Uint("owner_id", ownerID), zap.Error(err))
		metrics.Degraded = true
	} else {
		metrics.ThisMonth = monthCount
	}

	cities, err := s.contacts.ListCitiesByOwner(ctx, ownerID)
	if err != nil {
		configslog.Log.Error("analytics: şehir listesi alınamadı", zap.Uint("owner_id", ownerID), zap.Error(err))
		metrics.Degraded = true
	} else if top, count := topCity(cities); count > 0 {
		metrics.TopCity = &top
		metrics.TopCityCount = count
	}

	recent, err := s.contacts.FindMostRecentByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		// Hiç bağlantı yok; hata değil.
	case err != nil:
		configslog.Log.Error("analytics: son bağlantı alınamadı", zap.Uint("owner_id", ownerID), zap.Error(err))
		metrics.Degraded = true
	default:
		metrics.RecentContact = &RecentContact{Name: recent.Name, Date: recent.CreatedAt}
	}

	return metrics
}

// topCity şehirleri birebir eşleşmeyle gruplar ve en kalabalık olanı seçer.
// Eşitlikte alfabetik olarak küçük olan kazanır; böylece sonuç satır
// sırasından bağımsız ve deterministiktir.
func topCity(cities []string) (string, int64) {
	counts := make(map[string]int64, len(cities))
	for _, city := range cities {
		if city == "" {
			continue
		}
		counts[city]++
	}

	var top string
	var topCount int64
	for city, n := range counts {
		if n > topCount || (n == topCount && city < top) {
			top = city
			topCount = n
		}
	}
	return top, topCount
}

// ListGeolocatedContacts her iki koordinatı dolu bağlantıları yeniden-eskiye
// döndürür. Harita her dashboard yüklemesinde bu sonlu listeyi yeniden çeker.
func (s *ConnectionAnalyticsService) ListGeolocatedContacts(ctx context.Context, ownerID uint) ([]ContactLocation, error) {
	rows, err := s.contacts.FindGeolocatedByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]ContactLocation, 0, len(rows))
	for _, row := range rows {
		result = append(result, ContactLocation{
			ID:        row.ID,
			Name:      row.Name,
			Phone:     row.Phone,
			City:      row.City,
			State:     row.State,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			CreatedAt: row.CreatedAt,
			CardName:  row.CardName,
		})
	}
	return result, nil
}

// GetContactsForOwnerPaginated panel için sayfalı contact listesi.
func (s *ConnectionAnalyticsService) GetContactsForOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Normalize()
	contacts, totalCount, err := s.contacts.FindAllByOwnerPaginated(ctx, ownerID, params)
	if err != nil {
		configslog.Log.Error("analytics: contact listesi alınamadı", zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: contacts,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

var _ IConnectionAnalyticsService = (*ConnectionAnalyticsService)(nil)
