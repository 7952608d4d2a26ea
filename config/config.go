package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DevJWTSecret is the fallback signing key for local runs. Refusing to
// boot with it outside local mode is handled in main.
const DevJWTSecret = "dev-secret-change-me"

// Settings holds everything the service reads from the environment.
// main loads .env first, so values can come from either place.
type Settings struct {
	Mode     string `env:"MODE" envDefault:"local"`
	Port     string `env:"PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DATABASE_URL wins over the discrete DB_* vars when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPass      string `env:"DB_PASS"`
	DBName      string `env:"DB_NAME" envDefault:"booking"`

	RedisHost string `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	RedisPort int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPass string `env:"REDIS_PASS"`

	JWTSecretKey             string `env:"JWT_SECRET_KEY" envDefault:"dev-secret-change-me"`
	JWTAlgorithm             string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	MediaDir      string `env:"MEDIA_DIR" envDefault:"static/images"`
	ResizeWorkers int    `env:"RESIZE_WORKERS" envDefault:"4"`
}

func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// DSN resolves the Postgres connection string, preferring DATABASE_URL.
func (s Settings) DSN() string {
	if raw := strings.TrimSpace(s.DatabaseURL); raw != "" {
		return raw
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		s.DBHost, s.DBPort, s.DBUser, s.DBPass, s.DBName,
	)
}

func (s Settings) RedisAddr() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}
