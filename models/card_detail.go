package models

// CardDetail kartvizitin görünen alanlarını içerir.
type CardDetail struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null"` // cards.id FK

	// Kartın görünen adı (örn: "Work", "Freelance")
	CardName string `gorm:"type:varchar(100);not null"`

	// Kişisel Bilgiler
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Title     string `gorm:"type:varchar(100)"` // Ünvan
	Company   string `gorm:"type:varchar(150)"`

	// İletişim Bilgileri
	MobileNumber string `gorm:"type:varchar(30)"` // Intro SMS'i bu numaraya gider
	OfficeNumber string `gorm:"type:varchar(30)"`
	WorkAddress  string `gorm:"type:text"`

	// Görsel Öğeler
	AvatarURL  string `gorm:"type:varchar(500)"`
	LogoURL    string `gorm:"type:varchar(500)"`
	ThemeColor string `gorm:"type:varchar(7)"` // Örn: #1A73E8

	// vCard indirme izni
	AllowSaveContact bool `gorm:"default:true"`
}
