// repositories/message_log_repository.go
package repositories

import (
	"context"
	"errors"

	"cardlink.app/configs/configsdatabase"
	"cardlink.app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IMessageLogRepository teslimat denetim kayıtları için arayüz.
// Tablo append-only'dir; update/delete metodu bilinçli olarak yoktur.
type IMessageLogRepository interface {
	Create(ctx context.Context, entry *models.MessageLog) error
	ListByContact(ctx context.Context, contactID uuid.UUID) ([]models.MessageLog, error)
}

// MessageLogRepository IMessageLogRepository arayüzünü uygular.
type MessageLogRepository struct {
	db *gorm.DB
}

// NewMessageLogRepository yeni bir MessageLogRepository örneği oluşturur.
func NewMessageLogRepository() IMessageLogRepository {
	return &MessageLogRepository{db: configsdatabase.GetDB()}
}

// NewMessageLogRepositoryTx transaction üzerinde çalışan bir örnek oluşturur.
func NewMessageLogRepositoryTx(tx *gorm.DB) IMessageLogRepository {
	return &MessageLogRepository{db: tx}
}

func (r *MessageLogRepository) Create(ctx context.Context, entry *models.MessageLog) error {
	if entry == nil {
		return errors.New("oluşturulacak log kaydı nil olamaz")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *MessageLogRepository) ListByContact(ctx context.Context, contactID uuid.UUID) ([]models.MessageLog, error) {
	var entries []models.MessageLog
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

var _ IMessageLogRepository = (*MessageLogRepository)(nil)
