package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "forum_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("AUTH_FALLBACK_SECRET", "testsecret123456789012345678901234")
	os.Setenv("SESSION_TTL_MINUTES", "60")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Auth.SessionTTL != 60*time.Minute {
		t.Fatalf("unexpected session TTL: %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.CookieName != "forum_session" {
		t.Fatalf("unexpected cookie name: %q", cfg.Auth.CookieName)
	}
}
