package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact bir bağlantı (connection) olayıdır: public kartı görüntüleyen birinin
// form gönderimiyle oluşur. Pipeline dışında hiçbir bileşen bu kaydı değiştirmez;
// tek mutasyon teslimat durumunun pending -> sent/failed güncellemesidir.
type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID      uint      `gorm:"index;not null"`
	CardOwnerID uint      `gorm:"index;not null"` // Sorgu kolaylığı için denormalize

	Name  string `gorm:"type:varchar(150);not null"`
	Phone string `gorm:"type:varchar(30);not null"`

	// Geolocation zenginleştirmesi; çözümlenemezse hepsi null kalır.
	City      *string  `gorm:"type:varchar(100);index"`
	State     *string  `gorm:"type:varchar(100)"`
	Country   *string  `gorm:"type:varchar(100)"`
	Latitude  *float64
	Longitude *float64

	SentStatus   string     `gorm:"type:varchar(10);not null;default:'pending';index"`
	ErrorMessage *string    `gorm:"type:text"`
	SentAt       *time.Time

	CreatedAt time.Time `gorm:"index"`
}

// Teslimat durumları. pending -> sent veya pending -> failed, tam bir kez.
const (
	SentStatusPending = "pending"
	SentStatusSent    = "sent"
	SentStatusFailed  = "failed"
)

func (Contact) TableName() string { return "contacts" }

// BeforeCreate opak ID üretir.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
