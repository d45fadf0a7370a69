package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "https://waocard.co/app" {
		t.Errorf("upstream url = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.ServerKey != "" || cfg.Upstream.Username != "" || cfg.Upstream.Password != "" {
		t.Error("upstream credentials must default to empty, never to baked-in values")
	}
	if cfg.Redis.Enabled {
		t.Error("redis must be disabled without REDIS_URL")
	}
	if cfg.Site.CacheTTL != 60*time.Second {
		t.Errorf("cache ttl = %v", cfg.Site.CacheTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WAOCARD_SERVER_KEY", "key-from-env")
	t.Setenv("WAOCARD_RETRIES", "3")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Upstream.ServerKey != "key-from-env" {
		t.Errorf("server key = %q", cfg.Upstream.ServerKey)
	}
	if cfg.Upstream.Retries != 3 {
		t.Errorf("retries = %d", cfg.Upstream.Retries)
	}
	if !cfg.Redis.Enabled {
		t.Error("redis should be enabled when REDIS_URL is set")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v", cfg.Server.ReadTimeout)
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("WAOCARD_RETRIES", "not-a-number")
	if got := getEnvAsInt("WAOCARD_RETRIES", 1); got != 1 {
		t.Errorf("got %d, want the default", got)
	}
}
