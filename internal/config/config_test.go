package config

import (
	"testing"
	"time"
)

func setDBEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "admin")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "streaming")
}

func TestLoadReadsEnvironment(t *testing.T) {
	setDBEnv(t)

	cfg := Load()
	if cfg.Env != "test" || cfg.Port != "8080" {
		t.Fatalf("app config = %+v", cfg)
	}
	if cfg.DBUser != "admin" || cfg.DBPass != "secret" || cfg.DBHost != "127.0.0.1" || cfg.DBPort != "3306" || cfg.DBName != "streaming" {
		t.Fatalf("db config = %+v", cfg)
	}
}

func TestLoadAllowsEmptyPassword(t *testing.T) {
	setDBEnv(t)
	t.Setenv("DB_PASS", "")

	if cfg := Load(); cfg.DBPass != "" {
		t.Fatalf("DBPass = %q, want empty", cfg.DBPass)
	}
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Fatal("limiter should default to enabled")
	}
	if cfg.Limit != 120 || cfg.Window != time.Minute || cfg.Prefix != "rl" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadRateLimitConfigOverridesAndClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_LIMIT", "-3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := LoadRateLimitConfig()
	if cfg.Enabled {
		t.Fatal("limiter should be disabled")
	}
	if cfg.Limit != 1 {
		t.Fatalf("Limit = %d, want clamp to 1", cfg.Limit)
	}
	if cfg.Window != 30*time.Second {
		t.Fatalf("Window = %v, want 30s", cfg.Window)
	}
}

func TestEnvHelpersIgnoreGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_LIMIT", "not-a-number")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")

	cfg := LoadRateLimitConfig()
	if cfg.Limit != 120 || cfg.Window != time.Minute {
		t.Fatalf("garbage values should fall back to defaults: %+v", cfg)
	}
}
