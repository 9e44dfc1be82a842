// handlers/dashboard/dashboard_card_handler.go
package dashboard

import (
	"cardlink.app/configs/configslog"
	"cardlink.app/pkg/queryparams"
	"cardlink.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler sistem yöneticisinin tüm kartları gördüğü uçlar.
type CardHandler struct {
	cardService services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{cardService: services.NewCardService()}
}

// ListCards (GET /dashboard/cards) tüm kartvizitleri sayfalı listeler.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}

	result, err := h.cardService.GetAllCardsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("dashboard ListCards error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartvizitler listelenemedi"})
	}
	return c.JSON(result)
}
