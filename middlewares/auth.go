// middlewares/auth.go
package middlewares

import (
	"strings"

	"cardlink.app/configs"
	"cardlink.app/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware Authorization başlığındaki bearer token'ı doğrular ve
// kullanıcı bilgisini locals'a koyar. Ambient session yoktur; her istek
// kendi token'ıyla gelir.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum açmanız gerekiyor"})
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := utils.ValidateToken(configs.Get().JWTSecret, tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Geçersiz veya süresi dolmuş oturum"})
	}

	c.Locals("userID", claims.UserID)
	c.Locals("isSystem", claims.IsSystem)
	return c.Next()
}

// RequireSystem yalnızca sistem yöneticilerine izin verir.
// AuthMiddleware'den sonra kullanılmalıdır.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok || !isSystem {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu alana erişim yetkiniz yok"})
		}
		return c.Next()
	}
}

// UserID locals'taki kullanıcı ID'sini okur; yoksa 0 döner.
func UserID(c *fiber.Ctx) uint {
	id, ok := c.Locals("userID").(uint)
	if !ok {
		return 0
	}
	return id
}
