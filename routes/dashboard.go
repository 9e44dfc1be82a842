package routes

import (
	handlers "cardlink.app/handlers/dashboard"
	"cardlink.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları tanımlar.
// Sadece IsSystem=true olan kullanıcılar erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	cardHandler := handlers.NewCardHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,  // 1. Giriş yapmış mı?
		middlewares.RequireSystem(), // 2. Sistem yöneticisi mi?
	)

	// --- Kartvizit Yönetimi (Admin Görünümü) ---
	dashboardGroup.Get("/cards", cardHandler.ListCards) // GET /dashboard/cards
}
