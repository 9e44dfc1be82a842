package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	// --- Rota Grupları ---
	registerAuthRoutes(app)      // /auth rotaları
	registerPanelRoutes(app)     // /panel rotaları
	registerDashboardRoutes(app) // /dashboard rotaları

	// --- Public Link Rotaları ---
	// :key parametresi her şeyi yakaladığı için en sonda kayıt edilmeli.
	registerPublicLinkRoutes(app)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

// notFoundHandler eşleşmeyen tüm rotaları yakalar.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":   "Sayfa Bulunamadı",
			"Message": "Aradığınız sayfa bulunamadı.",
		})
	}
}
