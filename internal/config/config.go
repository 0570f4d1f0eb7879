package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	AllowOrigins string
	APIKey       string
	JWTSecret    string
	TokenTTL     time.Duration

	DatabaseURL string

	RedisAddr       string
	RedisPassword   string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:            getenv("PORT", "3001"),
		AllowOrigins:    getenv("ALLOW_ORIGINS", "*"),
		APIKey:          getenv("API_KEY", ""),
		JWTSecret:       getenv("JWT_SECRET", ""),
		TokenTTL:        time.Duration(atoi("TOKEN_TTL_DAYS", 7)) * 24 * time.Hour,
		DatabaseURL:     databaseURL(),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RateLimitMax:    atoi("RATE_LIMIT_MAX", 10),
		RateLimitWindow: time.Duration(atoi("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

// databaseURL prefers DATABASE_URL and falls back to composing a DSN from
// the individual DB_* parts.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", ""),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_NAME", "zendb"),
		getenv("DB_SSLMODE", "disable"),
	)
}
