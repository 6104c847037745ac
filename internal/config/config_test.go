package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "HOST", "MONGODB_URI", "MONGODB_DATABASE", "MONGODB_TIMEOUT", "RATE_LIMIT_ENABLED"} {
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "5001" {
		t.Fatalf("default port = %q, want 5001", cfg.Server.Port)
	}
	if cfg.MongoDB.URI != "mongodb://127.0.0.1/boutique-jeux" {
		t.Fatalf("default mongo URI = %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "boutique-jeux" {
		t.Fatalf("default mongo database = %q", cfg.MongoDB.Database)
	}
	if cfg.MongoDB.Timeout != 10*time.Second {
		t.Fatalf("default mongo timeout = %v", cfg.MongoDB.Timeout)
	}
	if cfg.RateLimit.Enabled {
		t.Fatalf("rate limit should be disabled by default")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db.example:27017/shop")
	t.Setenv("MONGODB_DATABASE", "shop")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_USE_REDIS", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.MongoDB.URI != "mongodb://db.example:27017/shop" {
		t.Fatalf("mongo URI = %q", cfg.MongoDB.URI)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if !cfg.RateLimit.Enabled || !cfg.RateLimit.UseRedis {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
}
