package config

import (
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/recipes")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:ABC")
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("REFRESH_TOKEN_TTL", "3h")
	t.Setenv("REDIS_ADDRESS", "localhost:6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("AccessTokenTTL want 2m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 3*time.Hour {
		t.Fatalf("RefreshTokenTTL want 3h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.RedisAddress != "localhost:6380" {
		t.Fatalf("RedisAddress want localhost:6380, got %v", cfg.RedisAddress)
	}
	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("HTTPAddress default want :8080, got %v", cfg.HTTPAddress)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/recipes")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:ABC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("default AccessTokenTTL want 15m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 30*24*time.Hour {
		t.Fatalf("default RefreshTokenTTL want 720h, got %v", cfg.RefreshTokenTTL)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:ABC")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing DATABASE_URL, got nil")
	}
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:ABC")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to short JWT_SECRET, got nil")
	}
}
