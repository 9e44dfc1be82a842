// handlers/panel/panel_card_handler.go
package panel

import (
	"errors"

	"cardlink.app/configs/configslog"
	"cardlink.app/middlewares"
	"cardlink.app/models"
	"cardlink.app/pkg/queryparams"
	"cardlink.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler kart sahibinin kendi kartvizitlerini yönettiği JSON API.
type CardHandler struct {
	cardService services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{cardService: services.NewCardService()}
}

// cardRequest kart oluşturma/güncelleme gövdesi.
type cardRequest struct {
	CardName         string `json:"cardName"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Title            string `json:"title"`
	Company          string `json:"company"`
	MobileNumber     string `json:"mobileNumber"`
	OfficeNumber     string `json:"officeNumber"`
	WorkAddress      string `json:"workAddress"`
	AvatarURL        string `json:"avatarUrl"`
	LogoURL          string `json:"logoUrl"`
	ThemeColor       string `json:"themeColor"`
	AllowSaveContact bool   `json:"allowSaveContact"`
	IsEnabled        bool   `json:"isEnabled"`
}

func (r cardRequest) toDetail() models.CardDetail {
	return models.CardDetail{
		CardName:         r.CardName,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Title:            r.Title,
		Company:          r.Company,
		MobileNumber:     r.MobileNumber,
		OfficeNumber:     r.OfficeNumber,
		WorkAddress:      r.WorkAddress,
		AvatarURL:        r.AvatarURL,
		LogoURL:          r.LogoURL,
		ThemeColor:       r.ThemeColor,
		AllowSaveContact: r.AllowSaveContact,
	}
}

// cardErrorStatus servis hatasını HTTP durum koduna çevirir.
func cardErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrCardForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrCrdInvalidInput), errors.Is(err, services.ErrCardNameRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ListCards (GET /panel/cards) kullanıcının kartlarını sayfalı listeler.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}

	result, err := h.cardService.GetCardsForUserPaginated(c.UserContext(), middlewares.UserID(c), params)
	if err != nil {
		configslog.Log.Error("ListCards error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartvizitler listelenemedi"})
	}
	return c.JSON(result)
}

// CreateCard (POST /panel/cards) yeni kart oluşturur.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req cardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	card, err := h.cardService.CreateCard(c.UserContext(), middlewares.UserID(c), req.toDetail())
	if err != nil {
		configslog.Log.Error("CreateCard error", zap.Error(err))
		return c.Status(cardErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// GetCard (GET /panel/cards/:id) tek kartı getirir.
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart ID"})
	}

	card, err := h.cardService.GetCardByID(c.UserContext(), uint(id), middlewares.UserID(c))
	if err != nil {
		return c.Status(cardErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(card)
}

// UpdateCard (PUT /panel/cards/:id) kartı ve detayını günceller.
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart ID"})
	}

	var req cardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.cardService.UpdateCard(c.UserContext(), uint(id), middlewares.UserID(c), req.toDetail(), req.IsEnabled); err != nil {
		configslog.Log.Error("UpdateCard error", zap.Int("id", id), zap.Error(err))
		return c.Status(cardErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Kartvizit güncellendi"})
}

// DeleteCard (DELETE /panel/cards/:id) kartı siler.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart ID"})
	}

	if err := h.cardService.DeleteCard(c.UserContext(), uint(id), middlewares.UserID(c)); err != nil {
		configslog.Log.Error("DeleteCard error", zap.Int("id", id), zap.Error(err))
		return c.Status(cardErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Kartvizit silindi"})
}
