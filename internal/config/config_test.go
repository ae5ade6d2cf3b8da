package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dashboard")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("WEBHOOK_API_KEY", "")
	t.Setenv("DASHBOARD_PASSWORD_HASH", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.WebhookAPIKey)
	assert.Empty(t, cfg.DashboardPasswordHash)
}

func TestLoadConfig_RequiredFields(t *testing.T) {
	cases := []string{"DATABASE_URL", "REDIS_URL", "JWT_SECRET"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoadConfig_WebhookKeyTrimmed(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBHOOK_API_KEY", "  my-secret-key\n")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "my-secret-key", cfg.WebhookAPIKey)
}

func TestLoadConfig_SessionTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL", "90m")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
}

func TestLoadConfig_InvalidSessionTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL", "ninety minutes")

	_, err := LoadConfig()
	require.Error(t, err)
}
