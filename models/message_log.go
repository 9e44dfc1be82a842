package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageLog her SMS teslim denemesi için append-only denetim kaydıdır.
// Contact.SentStatus değişebilir; bu tablo asla güncellenmez veya silinmez.
type MessageLog struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContactID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Status            string    `gorm:"type:varchar(10);not null"`
	ProviderMessageID *string   `gorm:"type:varchar(100)"`
	APIResponse       string    `gorm:"type:jsonb"` // Sağlayıcının ham yanıtı
	CreatedAt         time.Time
}

func (MessageLog) TableName() string { return "message_logs" }

func (m *MessageLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
