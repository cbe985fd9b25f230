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

	assert.Equal(t, "domainflow-backend", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "https://api.openai.com", cfg.OpenAI.BaseURL)
	assert.True(t, cfg.Demo.Enabled)
	assert.Equal(t, "demo", cfg.Demo.Username)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("DEMO_SEED", "false")
	t.Setenv("OPENAI_TIMEOUT", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Demo.Enabled)
	// Bare integers are read as seconds.
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout)
}
