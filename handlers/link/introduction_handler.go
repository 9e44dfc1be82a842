// handlers/link/introduction_handler.go
package link

import (
	"errors"
	"strings"

	"cardlink.app/configs/configslog"
	"cardlink.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IntroductionHandler public contact formunun gönderimini yönetir.
type IntroductionHandler struct {
	introService services.IIntroductionService
}

// NewIntroductionHandler yeni bir IntroductionHandler örneği oluşturur.
func NewIntroductionHandler() *IntroductionHandler {
	return &IntroductionHandler{introService: services.NewIntroductionService()}
}

// introRequest public sayfanın gönderdiği JSON gövde.
type introRequest struct {
	CardID string `json:"cardId"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

// clientAddress istemci adresini başlıklardan çıkarır: önce forwarded-for
// listesinin ilk elemanı, sonra real-ip, yoksa "unknown".
func clientAddress(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if addr := strings.TrimSpace(strings.Split(fwd, ",")[0]); addr != "" {
			return addr
		}
	}
	if realIP := c.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}

// Submit (POST /api/intro) tanışma pipeline'ını çalıştırır.
// Handler hiçbir hatayı dışarı kaçırmaz; her durumda yapılandırılmış JSON döner.
func (h *IntroductionHandler) Submit(c *fiber.Ctx) error {
	var req introRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("intro: istek gövdesi çözümlenemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	result, err := h.introService.SubmitIntroduction(c.UserContext(), services.IntroductionRequest{
		CardKey:       req.CardID,
		Name:          req.Name,
		Phone:         req.Phone,
		SourceAddress: clientAddress(c),
	})
	if err != nil {
		// Contact yazılmadan dönen hatalar (invalid, not found) ve yazıldıktan
		// sonra fırlatılanlar (persistence, not configured) burada toplanır.
		message := "An error occurred"
		var introErr services.IntroductionError
		if errors.As(err, &introErr) {
			message = introErr.Error()
		}
		configslog.Log.Error("intro: gönderim başarısız", zap.String("card_id", req.CardID), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}

	// Sağlayıcının reddi raporlanan bir sonuçtur; durum kodu 200 kalır.
	return c.JSON(fiber.Map{
		"success": result.Success,
		"message": result.Message,
	})
}
