package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bistro-gateway", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "dev-secret", cfg.Auth.AccessKey)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ACCESS_KEY", "prod-secret")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "15")
	t.Setenv("PAYMENT_TOKEN", "sk_test_abc")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "prod-secret", cfg.Auth.AccessKey)
	assert.Equal(t, 15, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "sk_test_abc", cfg.Payment.SecretKey)
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
