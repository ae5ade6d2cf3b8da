package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

type Config struct {
	ServerPort            string
	DatabaseURL           string
	RedisURL              string
	JWTSecret             string
	WebhookAPIKey         string
	DashboardPasswordHash string
	SessionTTL            time.Duration
}

func LoadConfig() (*Config, error) {
	ttlStr := getEnv("SESSION_TTL", "24h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, errors.New("invalid SESSION_TTL format")
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		// Compared verbatim on every webhook request; trim once here so a
		// trailing newline in the env file doesn't lock every script out.
		WebhookAPIKey:         strings.TrimSpace(os.Getenv("WEBHOOK_API_KEY")),
		DashboardPasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),
		SessionTTL:            ttl,
	}

	// Validate required fields. WEBHOOK_API_KEY and DASHBOARD_PASSWORD_HASH
	// are not required: leaving either unset disables the corresponding auth
	// mode (every request in that mode gets 401) without preventing startup.
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// Helper: get env with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
