package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	TelegramBotToken string

	HTTPAddress      string
	AllowedOrigins   []string
	AllowCredentials bool
}

// Load reads config.json from the working directory (if present) and lets
// environment variables override it. Required keys fail fast here so the
// process never starts half-configured.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	for _, key := range []string{
		"DATABASE_URL",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"JWT_SECRET", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL",
		"TELEGRAM_BOT_TOKEN",
		"HTTP_ADDRESS", "ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ACCESS_TOKEN_TTL", 15*time.Minute)
	v.SetDefault("REFRESH_TOKEN_TTL", 30*24*time.Hour)
	v.SetDefault("HTTP_ADDRESS", ":8080")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      v.GetString("DATABASE_URL"),
		RedisAddress:     v.GetString("REDIS_ADDRESS"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AccessTokenTTL:   v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:  v.GetDuration("REFRESH_TOKEN_TTL"),
		TelegramBotToken: v.GetString("TELEGRAM_BOT_TOKEN"),
		HTTPAddress:      v.GetString("HTTP_ADDRESS"),
		AllowedOrigins:   v.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials: v.GetBool("ALLOW_CREDENTIALS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET is required and must be at least 16 characters")
	}
	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	return cfg, nil
}
