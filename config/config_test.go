package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "REDIS_ADDR", "CACHE_TTL_SECONDS", "NEW_RELEASE_WINDOW_DAYS",
		"HIDE_DEFAULT_BANNER", "SEED_SAMPLE_SHOES", "PORT", "ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.UseDatabase())
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.NewReleaseWindow)
	assert.False(t, cfg.HideDefaultBanner)
	assert.True(t, cfg.SeedSampleShoes)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("NEW_RELEASE_WINDOW_DAYS", "7")
	t.Setenv("CACHE_TTL_SECONDS", "5")
	t.Setenv("HIDE_DEFAULT_BANNER", "true")
	t.Setenv("SEED_SAMPLE_SHOES", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.UseDatabase())
	assert.Equal(t, 7*24*time.Hour, cfg.NewReleaseWindow)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.HideDefaultBanner)
	assert.False(t, cfg.SeedSampleShoes)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("NEW_RELEASE_WINDOW_DAYS", "soon")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "NEW_RELEASE_WINDOW_DAYS")

	t.Setenv("NEW_RELEASE_WINDOW_DAYS", "")
	t.Setenv("HIDE_DEFAULT_BANNER", "maybe")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "HIDE_DEFAULT_BANNER")
}
