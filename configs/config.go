// configs/config.go
package configs

import (
	"fmt"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config uygulamanın tüm ortam değişkenlerini tek bir tipte toplar.
// .env dosyası varsa godotenv ile yüklenir, değerler cleanenv ile okunur.
type Config struct {
	AppEnv        string `env:"APP_ENV" env-default:"development"`
	Port          string `env:"PORT" env-default:"3000"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:3000"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:""`
	DBName     string `env:"DB_NAME" env-default:"cardlink"`
	DBSSLMode  string `env:"DB_SSLMODE" env-default:"disable"`

	JWTSecret     string `env:"JWT_SECRET" env-default:""`
	JWTTTLMinutes int    `env:"JWT_TTL_MINUTES" env-default:"1440"`

	VonageAPIKey    string `env:"VONAGE_API_KEY" env-default:""`
	VonageAPISecret string `env:"VONAGE_API_SECRET" env-default:""`
	VonageSender    string `env:"VONAGE_SENDER" env-default:"CardLink"`
	VonageBaseURL   string `env:"VONAGE_BASE_URL" env-default:"https://rest.nexmo.com"`

	IPAPIBaseURL        string `env:"IPAPI_BASE_URL" env-default:"https://ipapi.co"`
	IPAPITimeoutSeconds int    `env:"IPAPI_TIMEOUT_SECONDS" env-default:"5"`

	SystemUserEmail    string `env:"SYSTEM_USER_EMAIL" env-default:"system@cardlink.app"`
	SystemUserPassword string `env:"SYSTEM_USER_PASSWORD" env-default:""`
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgErr  error
)

// Load ortam değişkenlerini okur. Birden fazla çağrı güvenlidir.
func Load() (*Config, error) {
	cfgOnce.Do(func() {
		// .env opsiyoneldir; bulunamaması hata değildir.
		_ = godotenv.Load()

		c := &Config{}
		if err := cleanenv.ReadEnv(c); err != nil {
			cfgErr = fmt.Errorf("ortam değişkenleri okunamadı: %w", err)
			return
		}
		cfg = c
	})
	return cfg, cfgErr
}

// Get yüklenmiş konfigürasyonu döndürür. Load çağrılmadıysa panik yerine
// varsayılanlarla yükler (testler ve cmd araçları için pratik).
func Get() *Config {
	c, err := Load()
	if err != nil || c == nil {
		return &Config{}
	}
	return c
}

// DSN GORM postgres sürücüsü için bağlantı cümlesini üretir.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsProduction ortamın production olup olmadığını söyler.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
