// configs/configslog/logger.go
package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger.
// SLog aynı logger'ın sugared hali; formatlı mesajlar için.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func init() {
	// InitLogger çağrılmadan loglama yapılırsa nil pointer olmasın diye
	// varsayılan olarak no-op logger kullanılır.
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// InitLogger global logger'ları kurar. production=true ise JSON encoder,
// aksi halde okunabilir console encoder kullanılır.
func InitLogger(production bool) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın sessizce devam etmesi anlamsız.
		panic("logger kurulamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'daki logları flush eder. main'de defer ile çağrılmalı.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
