package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Seed     SeedConfig
	Redis    RedisConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port        string
	AppEnv      string
	FrontendURL string
	AdminURL    string
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type SeedConfig struct {
	OnStartup bool
	// LegacyMode is where reseed takes product-level price and stock from: "literal"
	// keeps the values authored in the catalog, "derive" recomputes them from the variants.
	LegacyMode   string
	AtomicReseed bool
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// In production the variables are set on the host.
	if err := godotenv.Load(); err != nil {
		return nil
	}
	return nil
}

// ValidateEnv checks that critical environment variables are set.
func ValidateEnv() error {
	var missing []string

	if os.Getenv("JWT_SECRET") == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if os.Getenv("DATABASE_URL") == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}
	return nil
}

// Warnings lists non-critical variables that are unset.
func Warnings() []string {
	var warnings []string
	if os.Getenv("ADMIN_PASSWORD") == "" {
		warnings = append(warnings, "ADMIN_PASSWORD not set - default admin will use the built-in password")
	}
	if os.Getenv("FRONTEND_URL") == "" {
		warnings = append(warnings, "FRONTEND_URL not set - CORS may not work correctly")
	}
	if os.Getenv("ADMIN_URL") == "" {
		warnings = append(warnings, "ADMIN_URL not set")
	}
	if os.Getenv("REDIS_URL") == "" {
		warnings = append(warnings, "REDIS_URL not set - catalog responses will not be cached")
	}
	return warnings
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        GetEnv("PORT", "8080"),
			AppEnv:      GetEnv("APP_ENV", "production"),
			FrontendURL: os.Getenv("FRONTEND_URL"),
			AdminURL:    os.Getenv("ADMIN_URL"),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		},
		Admin: AdminConfig{
			Email:    GetEnv("ADMIN_EMAIL", "admin@fruitbasket.in"),
			Password: GetEnv("ADMIN_PASSWORD", "admin123"),
			Name:     GetEnv("ADMIN_NAME", "Store Admin"),
		},
		Seed: SeedConfig{
			OnStartup:          getEnvBool("SEED_ON_STARTUP", true),
			LegacyMode:   GetEnv("RESEED_LEGACY_MODE", "literal"),
			AtomicReseed: getEnvBool("RESEED_ATOMIC", true),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			CacheTTL: time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:    GetEnv("LOG_LEVEL", ""),
			Encoding: GetEnv("LOG_ENCODING", ""),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.AppEnv == "dev"
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}
