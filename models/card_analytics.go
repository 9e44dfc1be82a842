package models

import "time"

// CardAnalytics public kart görüntüleme sayaçlarını tutar.
// Sadece public görüntüleme akışı tarafından güncellenir; intro pipeline dokunmaz.
type CardAnalytics struct {
	BaseModel
	CardID       uint       `gorm:"uniqueIndex;not null"`
	ViewCount    int64      `gorm:"not null;default:0"`
	LastViewedAt *time.Time
}

func (CardAnalytics) TableName() string { return "card_analytics" }
