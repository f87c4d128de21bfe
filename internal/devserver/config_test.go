package devserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8085", cfg.Addr)
	assert.Equal(t, 20.0, cfg.RateLimit)
	assert.Equal(t, 40, cfg.RateBurst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("DEVSERVER_ADDR", ":9999")
	t.Setenv("DEVSERVER_RATE_LIMIT", "0")
	t.Setenv("DEVSERVER_RATE_BURST", "3")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, 3, cfg.RateBurst)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("DEVSERVER_RATE_BURST", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	assert.Contains(t, Usage(), "DEVSERVER_ADDR")
}
