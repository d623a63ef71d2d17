package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_FailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SQLITE_PATH", "/tmp/test-blog.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 9090, cfg.App.Port)
	require.Equal(t, "/tmp/test-blog.db", cfg.SQLite.Path)
	require.Equal(t, 24*7, cfg.Auth.SessionTTLHour)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestValidate_RejectsNonPositiveTTL(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Auth.JWTSecret = "s"
	cfg.Auth.SessionTTLHour = 0
	require.Error(t, cfg.Validate())
}

func TestIsProd(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	require.False(t, cfg.IsProd())
	cfg.App.Env = "prod"
	require.True(t, cfg.IsProd())
	cfg.App.Env = "production"
	require.True(t, cfg.IsProd())
}
