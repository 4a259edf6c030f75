package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook-web/internal/session"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store, err := session.NewFileTokenStore(path)
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means no token")

	require.NoError(t, store.Save("jwt-abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")

	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStore_DefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := session.NewFileTokenStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".skybook", "token"), store.Path())
}

func TestMemoryTokenStore(t *testing.T) {
	store := session.NewMemoryTokenStore("seed")

	token, _ := store.Load()
	assert.Equal(t, "seed", token)

	require.NoError(t, store.Clear())
	token, _ = store.Load()
	assert.Empty(t, token)
}
