package config

import (
	"errors"
	"os"
	"time"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. The server
// refuses to start without an externally supplied signing secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

// Load builds the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "freight_user:freight_password@tcp(127.0.0.1:3306)/intelligent_freight?parseTime=true"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpiry:   24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
