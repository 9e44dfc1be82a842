package main

import (
	"flag"

	"cardlink.app/configs"
	"cardlink.app/configs/configsdatabase"
	"cardlink.app/configs/configslog"
	"cardlink.app/database"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}
	configslog.InitLogger(cfg.IsProduction())
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
