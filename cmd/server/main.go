// Command server starts the zen-tracker REST API.
package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"zen-tracker-go/internal/auth"
	"zen-tracker-go/internal/config"
	httpserver "zen-tracker-go/internal/http"
	"zen-tracker-go/internal/ratelimit"
	"zen-tracker-go/internal/store"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Fatal("missing JWT_SECRET")
	}
	if cfg.APIKey == "" {
		logger.Fatal("missing API_KEY")
	}

	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := st.AutoMigrate(); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	var limiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		limiter, err = ratelimit.NewRedisFixedWindowLimiter(
			cfg.RedisAddr, cfg.RedisPassword, "zen:ratelimit",
			cfg.RateLimitMax, cfg.RateLimitWindow,
		)
		if err != nil {
			logger.Fatal("configure rate limiter", zap.Error(err))
		}
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	r := httpserver.NewServer(cfg, logger, st, tokens, limiter)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
