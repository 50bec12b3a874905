package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/ums/pkg/cryptox"
	"github.com/aussiebroadwan/ums/pkg/slogx"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		DatabaseFile:         filepath.Join(dir, "ums.db"),
		PepperFile:           filepath.Join(dir, "secrets", "pepper"),
		SessionSecretFile:    filepath.Join(dir, "secrets", "session_secret"),
		SessionTTL:           time.Hour,
		SessionIssuer:        "ums-test",
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Minute,
	}
}

func TestNewWiresHandlers(t *testing.T) {
	cfg := testConfig(t)

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestInitSecretsPersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig(t)

	first, _, err := InitSecrets(cfg, slogx.Discard())
	require.NoError(t, err)
	hash, err := first.Hash("Abc123!@")
	require.NoError(t, err)

	pepper, err := cryptox.LoadOrGenerateSecret(cfg.PepperFile)
	require.NoError(t, err)
	require.NotEmpty(t, pepper)

	second, _, err := InitSecrets(cfg, slogx.Discard())
	require.NoError(t, err)
	require.NoError(t, second.Verify("Abc123!@", hash))
}
