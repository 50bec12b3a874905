package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "ums.db", cfg.DatabaseFile)
	require.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UMS_DATABASE_FILE", "/data/ums.db")
	t.Setenv("UMS_SESSION_TTL", "30m")
	t.Setenv("UMS_COOKIE_SECURE", "false")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/data/ums.db", cfg.DatabaseFile)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=text\nPORT=7070\n"), 0o600))

	// Values already in the environment win over .env.
	t.Setenv("PORT", "6060")
	// Registers a restore so the value .env injects does not leak.
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 6060, cfg.Port)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("PORT", "not-a-port")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "PORT")

	t.Setenv("PORT", "8080")
	t.Setenv("UMS_SESSION_TTL", "-1h")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "UMS_SESSION_TTL")
}

func TestLoadTUIConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UMS_DATABASE_FILE", "local.db")
	t.Setenv("UMS_TUI_THEME", "dark")

	cfg, err := LoadTUIConfig()
	require.NoError(t, err)
	require.Equal(t, "local.db", cfg.DatabaseFile, "shares the service settings")
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, "ums-tui.log", cfg.LogFile)
	require.Equal(t, "current", cfg.Slot)
}
