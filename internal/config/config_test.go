package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "Edu Portal", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	require.True(t, cfg.SeedDemoData)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORTAL_APP_NAME", "Portal Staging")
	t.Setenv("PORTAL_APP_ENV", "staging")
	t.Setenv("PORTAL_LOG_LEVEL", "DEBUG")
	t.Setenv("PORTAL_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("PORTAL_DASHBOARD_CACHE_TTL", "90s")
	t.Setenv("PORTAL_SEED_DEMO_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "Portal Staging", cfg.AppName)
	require.Equal(t, "staging", cfg.AppEnv)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, 90*time.Second, cfg.DashboardCacheTTL)
	require.False(t, cfg.SeedDemoData)
}

func TestLoadRejectsBadCacheTTL(t *testing.T) {
	t.Setenv("PORTAL_DASHBOARD_CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
