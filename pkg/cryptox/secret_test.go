package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGenerateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// second call reads the same value back
	second, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadOrGenerateSecret_TrimsAndRejectsEmpty(t *testing.T) {
	dir := t.TempDir()

	padded := filepath.Join(dir, "padded")
	require.NoError(t, os.WriteFile(padded, []byte("  s3cret\n"), 0o600))
	got, err := LoadOrGenerateSecret(padded)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	_, err = LoadOrGenerateSecret(empty)
	require.Error(t, err)
}
