package models

// User kartvizit sahiplerini ve sistem yöneticisini temsil eder.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	FullName     string `gorm:"type:varchar(150)"` // Intro mesajında kullanılır
	IsSystem     bool   `gorm:"default:false"`     // Dashboard erişimi
	IsActive     bool   `gorm:"default:true;index"`
}
