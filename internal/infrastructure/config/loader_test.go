package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing config file falls back to defaults", func(t *testing.T) {
		// An empty working directory has no configs/ tree and no .env
		t.Chdir(t.TempDir())
		t.Setenv("LV_ENV", "test")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, 3, cfg.Database.RetryAttempts)
		assert.Equal(t, 5*time.Second, cfg.Database.RetryDelay)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("LV_ENV", "test")
		t.Setenv("LV_DB_HOST", "db.internal")
		t.Setenv("LV_LOGGER_LEVEL", "debug")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})
}
