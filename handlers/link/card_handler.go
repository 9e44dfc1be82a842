// handlers/link/card_handler.go
package link

import (
	"errors"
	"fmt"

	"cardlink.app/configs"
	"cardlink.app/configs/configslog"
	"cardlink.app/pkg/vcardgen"
	"cardlink.app/services"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// CardHandler public kartvizit isteklerini yönetir.
type CardHandler struct {
	cardService services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{cardService: services.NewCardService()}
}

// ShowCard (GET /:key) public kartvizit sayfasını gösterir ve görüntüleme
// sayacını artırır.
func (h *CardHandler) ShowCard(c *fiber.Ctx) error {
	key := c.Params("key")

	card, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return h.renderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("ShowCard: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return h.renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	// Sayaç hatası sayfayı engellemez.
	_ = h.cardService.RecordCardView(c.UserContext(), card.ID)

	return c.Render("public/card_view", fiber.Map{
		"Title":  card.Detail.FirstName + " " + card.Detail.LastName,
		"Card":   card,
		"Detail": card.Detail,
	})
}

// DownloadVCard (GET /:key/vcf) kartın vCard dosyasını indirir.
func (h *CardHandler) DownloadVCard(c *fiber.Ctx) error {
	key := c.Params("key")

	card, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kartvizit bulunamadı"})
		}
		configslog.Log.Error("DownloadVCard: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartvizit yüklenemedi"})
	}
	if !card.Detail.AllowSaveContact {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu kart için rehbere kaydetme kapalı"})
	}

	content, err := vcardgen.Generate(card.Detail)
	if err != nil {
		configslog.Log.Error("DownloadVCard: vCard üretilemedi", zap.Uint("card_id", card.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "vCard üretilemedi"})
	}

	c.Set(fiber.HeaderContentType, "text/vcard; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, vcardgen.Filename(card.Detail)))
	return c.SendString(content)
}

// ShowQRCode (GET /:key/qr) public kart URL'sini PNG QR olarak döndürür.
func (h *CardHandler) ShowQRCode(c *fiber.Ctx) error {
	key := c.Params("key")

	card, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kartvizit bulunamadı"})
		}
		configslog.Log.Error("ShowQRCode: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartvizit yüklenemedi"})
	}

	publicURL := configs.Get().PublicBaseURL + "/" + card.ShareKey
	png, err := qrcode.Encode(publicURL, qrcode.Medium, 256)
	if err != nil {
		configslog.Log.Error("ShowQRCode: QR üretilemedi", zap.Uint("card_id", card.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "QR kod üretilemedi"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// renderNotFound standart 404 sayfasını render eder.
func (h *CardHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	})
}

// renderError standart 500 hata sayfasını render eder.
func (h *CardHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	})
}
