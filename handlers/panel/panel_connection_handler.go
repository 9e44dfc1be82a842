// handlers/panel/panel_connection_handler.go
package panel

import (
	"cardlink.app/configs/configslog"
	"cardlink.app/middlewares"
	"cardlink.app/pkg/queryparams"
	"cardlink.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConnectionHandler dashboard'un bağlantı analitiği uçları.
type ConnectionHandler struct {
	analyticsService services.IConnectionAnalyticsService
}

// NewConnectionHandler yeni bir ConnectionHandler örneği oluşturur.
func NewConnectionHandler() *ConnectionHandler {
	return &ConnectionHandler{analyticsService: services.NewConnectionAnalyticsService()}
}

// Metrics (GET /panel/connections/metrics) türetilmiş metrikleri döndürür.
// Servis asla hata döndürmez; sorgu hatası Degraded bayrağıyla görünür.
func (h *ConnectionHandler) Metrics(c *fiber.Ctx) error {
	metrics := h.analyticsService.GetConnectionMetrics(c.UserContext(), middlewares.UserID(c))
	return c.JSON(metrics)
}

// MapData (GET /panel/connections/map) koordinatlı bağlantıları döndürür.
// Harita her dashboard yüklemesinde bu listeyi baştan çeker.
func (h *ConnectionHandler) MapData(c *fiber.Ctx) error {
	contacts, err := h.analyticsService.ListGeolocatedContacts(c.UserContext(), middlewares.UserID(c))
	if err != nil {
		configslog.Log.Error("MapData error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Harita verisi alınamadı"})
	}
	return c.JSON(contacts)
}

// ListContacts (GET /panel/connections) bağlantıları sayfalı listeler.
func (h *ConnectionHandler) ListContacts(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}

	result, err := h.analyticsService.GetContactsForOwnerPaginated(c.UserContext(), middlewares.UserID(c), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Bağlantılar listelenemedi"})
	}
	return c.JSON(result)
}
