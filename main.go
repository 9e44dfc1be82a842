package main

import (
	"os"
	"os/signal"
	"syscall"

	"cardlink.app/configs"
	"cardlink.app/configs/configsdatabase"
	"cardlink.app/configs/configslog"
	"cardlink.app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}

	configslog.InitLogger(cfg.IsProduction())
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "cardlink",
		Views:   engine,
	})

	routes.SetupRoutes(app)

	// Graceful shutdown: sinyal gelince dinleyiciyi kapat.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	addr := ":" + cfg.Port
	configslog.SLog.Infof("Sunucu %s adresinde dinliyor...", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
