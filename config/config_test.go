package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocate-directory/config"
)

func Test_LoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, config.StoreDriverSeed, cfg.Store.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Store.CacheTTL)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
	assert.Equal(t, 400*time.Millisecond, cfg.Client.Debounce)
	assert.Equal(t, 300*time.Millisecond, cfg.Client.SpinnerGrace)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func Test_LoadConfig_Environment(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.StoreDriverPostgres)
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CLIENT_DEBOUNCE", "250ms")
	t.Setenv("CLIENT_SPINNER_GRACE", "not-a-duration")
	t.Setenv("CLIENT_TIMEOUT", "-1s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Store.CacheTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Client.Debounce)
	assert.Equal(t, 300*time.Millisecond, cfg.Client.SpinnerGrace)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}
