package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Host         string
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		IdleTimeout  time.Duration
	}
	Upstream struct {
		BaseURL   string
		ServerKey string
		Username  string
		Password  string
		Timeout   time.Duration
		Retries   int
	}
	Redis struct {
		URL     string
		Enabled bool
	}
	Session struct {
		Secret     string
		Expiration time.Duration
	}
	Site struct {
		CanonicalURL string
		CacheTTL     time.Duration
	}
	LogLevel string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server configuration
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getEnvAsDuration("SERVER_READ_TIMEOUT", "10s")
	cfg.Server.WriteTimeout = getEnvAsDuration("SERVER_WRITE_TIMEOUT", "10s")
	cfg.Server.IdleTimeout = getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s")

	// Upstream WaoCard API. Credentials come from the environment only;
	// they must never be compiled into the binary.
	cfg.Upstream.BaseURL = getEnv("WAOCARD_API_URL", "https://waocard.co/app")
	cfg.Upstream.ServerKey = getEnv("WAOCARD_SERVER_KEY", "")
	cfg.Upstream.Username = getEnv("WAOCARD_USERNAME", "")
	cfg.Upstream.Password = getEnv("WAOCARD_PASSWORD", "")
	cfg.Upstream.Timeout = getEnvAsDuration("WAOCARD_TIMEOUT", "10s")
	cfg.Upstream.Retries = getEnvAsInt("WAOCARD_RETRIES", 1)

	// Redis configuration (optional event/token cache)
	cfg.Redis.URL = getEnv("REDIS_URL", "")
	cfg.Redis.Enabled = cfg.Redis.URL != ""

	// Session configuration
	cfg.Session.Secret = getEnv("SESSION_SECRET", "dev-session-secret")
	cfg.Session.Expiration = getEnvAsDuration("SESSION_EXPIRATION", "24h")

	// Site configuration
	cfg.Site.CanonicalURL = getEnv("SITE_CANONICAL_URL", "https://waocard.co/app")
	cfg.Site.CacheTTL = getEnvAsDuration("EVENTS_CACHE_TTL", "60s")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	val := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0)
	}
	return duration
}

func getEnvAsInt(key string, defaultValue int) int {
	val := getEnv(key, strconv.Itoa(defaultValue))
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return intVal
}
