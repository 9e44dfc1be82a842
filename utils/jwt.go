// utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims oturum token'ının içeriği. Global session state yerine her istekte
// bu token çözülür ve handler'lara locals üzerinden taşınır.
type Claims struct {
	UserID   uint `json:"user_id"`
	IsSystem bool `json:"is_system"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("geçersiz veya süresi dolmuş token")

// GenerateToken kullanıcı için imzalı bir JWT üretir.
func GenerateToken(secret string, userID uint, isSystem bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		IsSystem: isSystem,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "cardlink",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken token'ı doğrular ve claim'leri döndürür.
func ValidateToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
