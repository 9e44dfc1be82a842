package routes

import (
	panel_handlers "cardlink.app/handlers/panel"
	"cardlink.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Kart sahibi kendi kartlarını ve bağlantılarını buradan yönetir.
func registerPanelRoutes(app *fiber.App) {
	cardHandler := panel_handlers.NewCardHandler()
	connectionHandler := panel_handlers.NewConnectionHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	// --- Kullanıcının Kendi Kartvizitleri ---
	panelGroup.Get("/cards", cardHandler.ListCards)          // GET /panel/cards
	panelGroup.Post("/cards", cardHandler.CreateCard)        // POST /panel/cards
	panelGroup.Get("/cards/:id", cardHandler.GetCard)        // GET /panel/cards/{id}
	panelGroup.Put("/cards/:id", cardHandler.UpdateCard)     // PUT /panel/cards/{id}
	panelGroup.Delete("/cards/:id", cardHandler.DeleteCard)  // DELETE /panel/cards/{id}

	// --- Bağlantılar ve Analitik ---
	panelGroup.Get("/connections", connectionHandler.ListContacts)    // GET /panel/connections
	panelGroup.Get("/connections/metrics", connectionHandler.Metrics) // GET /panel/connections/metrics
	panelGroup.Get("/connections/map", connectionHandler.MapData)     // GET /panel/connections/map
}
