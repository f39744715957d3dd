package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "Development", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "opai_csrf", cfg.CSRF.CookieName)
	require.Equal(t, "X-CSRF-Token", cfg.CSRF.HeaderName)
	require.False(t, cfg.CSRF.Secure)
	require.True(t, cfg.EnableMetrics)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"OPAI_HTTP_ADDR":        "127.0.0.1:9090",
		"OPAI_ENVIRONMENT":      "Production",
		"OPAI_LOG_LEVEL":        "DEBUG",
		"OPAI_READ_TIMEOUT":     "5s",
		"OPAI_WRITE_TIMEOUT":    "not-a-duration",
		"OPAI_SHUTDOWN_TIMEOUT": "-1s",
		"OPAI_CSRF_SECURE":      "yes",
		"OPAI_METRICS_ENABLED":  "off",
	}

	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	require.Equal(t, "Production", cfg.Environment)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "invalid durations fall back")
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "non-positive durations fall back")
	require.True(t, cfg.CSRF.Secure)
	require.False(t, cfg.EnableMetrics)
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nOPAI_HTTP_ADDR=:7070\nexport OPAI_ENVIRONMENT=\"Staging\"\nOPAI_LOG_LEVEL=warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(context.Background(),
		WithEnvFile(path),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"OPAI_LOG_LEVEL": "error"}),
	)
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, "Staging", cfg.Environment)
	require.Equal(t, "error", cfg.LogLevel, "explicit map wins over .env")
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), WithEnvFile(filepath.Join(t.TempDir(), "absent.env")), WithoutSystemEnv())
	require.NoError(t, err)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"OPAI_HTTP_ADDR": "   ",
		"OPAI_LOG_LEVEL": "verbose",
	}

	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.ElementsMatch(t, []string{"Server.Addr", "LogLevel"}, vErr.Fields())
	require.Contains(t, err.Error(), "Server.Addr")
}
