// repositories/contact_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"cardlink.app/configs/configsdatabase"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/pkg/queryparams"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GeolocatedContactRow harita beslemesi için düzleştirilmiş satır.
// Kart adı card_details tablosundan join ile gelir.
type GeolocatedContactRow struct {
	ID        uuid.UUID `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	Phone     string    `gorm:"column:phone"`
	City      *string   `gorm:"column:city"`
	State     *string   `gorm:"column:state"`
	Latitude  float64   `gorm:"column:latitude"`
	Longitude float64   `gorm:"column:longitude"`
	CreatedAt time.Time `gorm:"column:created_at"`
	CardName  string    `gorm:"column:card_name"`
}

// IContactRepository contact veritabanı işlemleri için arayüz.
// Pipeline tarafından insert + tek status güncellemesi; analitik tarafından
// yalnızca okuma yapılır.
type IContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status string, sentAt *time.Time, errorMessage *string) error
	MarkFailedIfPending(ctx context.Context, id uuid.UUID, errorMessage string) error
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	CountByOwnerSince(ctx context.Context, ownerID uint, since time.Time) (int64, error)
	ListCitiesByOwner(ctx context.Context, ownerID uint) ([]string, error)
	FindMostRecentByOwner(ctx context.Context, ownerID uint) (*models.Contact, error)
	FindGeolocatedByOwner(ctx context.Context, ownerID uint) ([]GeolocatedContactRow, error)
	FindAllByOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) ([]models.Contact, int64, error)
}

// ContactRepository IContactRepository arayüzünü uygular.
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository yeni bir ContactRepository örneği oluşturur.
func NewContactRepository() IContactRepository {
	return &ContactRepository{db: configsdatabase.GetDB()}
}

// NewContactRepositoryTx transaction üzerinde çalışan bir örnek oluşturur.
func NewContactRepositoryTx(tx *gorm.DB) IContactRepository {
	return &ContactRepository{db: tx}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if contact == nil {
		return errors.New("oluşturulacak contact nil olamaz")
	}
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateDeliveryStatus pipeline'ın tek seferlik durum güncellemesidir.
func (r *ContactRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status string, sentAt *time.Time, errorMessage *string) error {
	result := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sent_status":   status,
			"sent_at":       sentAt,
			"error_message": errorMessage,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailedIfPending yalnızca hâlâ pending olan kaydı failed'a çeker.
// Pipeline beklenmedik şekilde sonlanırsa kayıt mesajsız pending kalmasın diye
// cleanup adımı tarafından kullanılır; sent/failed durumunu asla geri almaz.
func (r *ContactRepository) MarkFailedIfPending(ctx context.Context, id uuid.UUID, errorMessage string) error {
	return r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("id = ? AND sent_status = ?", id, models.SentStatusPending).
		Updates(map[string]interface{}{
			"sent_status":   models.SentStatusFailed,
			"error_message": errorMessage,
		}).Error
}

func (r *ContactRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("card_owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *ContactRepository) CountByOwnerSince(ctx context.Context, ownerID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("card_owner_id = ? AND created_at >= ?", ownerID, since).Count(&count).Error
	return count, err
}

// ListCitiesByOwner şehri dolu contact'ların şehirlerini döndürür.
// Gruplama servis katmanında yapılır.
func (r *ContactRepository) ListCitiesByOwner(ctx context.Context, ownerID uint) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("card_owner_id = ? AND city IS NOT NULL", ownerID).
		Pluck("city", &cities).Error
	return cities, err
}

func (r *ContactRepository) FindMostRecentByOwner(ctx context.Context, ownerID uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).
		Where("card_owner_id = ?", ownerID).
		Order("created_at DESC").
		First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindGeolocatedByOwner her iki koordinatı da dolu contact'ları yeniden-eskiye
// sıralı döndürür.
func (r *ContactRepository) FindGeolocatedByOwner(ctx context.Context, ownerID uint) ([]GeolocatedContactRow, error) {
	var rows []GeolocatedContactRow
	err := r.db.WithContext(ctx).Model(&models.Contact{}).
		Select("contacts.id, contacts.name, contacts.phone, contacts.city, contacts.state, contacts.latitude, contacts.longitude, contacts.created_at, card_details.card_name").
		Joins("JOIN cards ON cards.id = contacts.card_id").
		Joins("JOIN card_details ON card_details.card_id = cards.id").
		Where("contacts.card_owner_id = ? AND contacts.latitude IS NOT NULL AND contacts.longitude IS NOT NULL", ownerID).
		Order("contacts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("ContactRepository.FindGeolocatedByOwner: DB error", zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// FindAllByOwnerPaginated panel contact listesi için sayfalı sorgu.
func (r *ContactRepository) FindAllByOwnerPaginated(ctx context.Context, ownerID uint, params queryparams.ListParams) ([]models.Contact, int64, error) {
	params.Normalize()

	var contacts []models.Contact
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Contact{}).Where("card_owner_id = ?", ownerID)
	if params.Status != "" {
		query = query.Where("sent_status = ?", params.Status)
	}
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return contacts, 0, nil
	}

	err := query.Order("created_at " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&contacts).Error
	return contacts, totalCount, err
}

var _ IContactRepository = (*ContactRepository)(nil)
