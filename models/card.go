package models

// Card dijital kartvizitin ana kaydıdır. ShareKey public URL anahtarıdır;
// pasifleştirme IsEnabled ile yapılır, bağlı contact kayıtları silinmez.
type Card struct {
	BaseModel
	ShareKey      string `gorm:"type:varchar(20);uniqueIndex;not null"`
	CreatorUserID uint   `gorm:"index;not null"`
	IsEnabled     bool   `gorm:"default:true;index"`

	// GORM İlişkileri
	Detail    CardDetail     `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Analytics *CardAnalytics `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
