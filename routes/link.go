package routes

import (
	"time"

	link_handlers "cardlink.app/handlers/link"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// registerPublicLinkRoutes public kart rotalarını ve tanışma API'sini tanımlar.
// :key rotası her path'i yakaladığı için diğer gruplardan SONRA kayıt edilmeli.
func registerPublicLinkRoutes(app *fiber.App) {
	cardHandler := link_handlers.NewCardHandler()
	introHandler := link_handlers.NewIntroductionHandler()

	// --- Tanışma API'si ---
	// Kart sayfası herhangi bir origin'den embed edilebildiği için CORS açık.
	apiGroup := app.Group("/api")
	apiGroup.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST, OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	apiGroup.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
	}))
	apiGroup.Post("/intro", introHandler.Submit) // POST /api/intro

	// --- Public Kart Sayfaları ---
	app.Get("/:key", cardHandler.ShowCard)         // GET /{key}
	app.Get("/:key/vcf", cardHandler.DownloadVCard) // GET /{key}/vcf
	app.Get("/:key/qr", cardHandler.ShowQRCode)     // GET /{key}/qr
}
