package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("creates directory with correct permissions", func(t *testing.T) {
		tmpDir := t.TempDir()
		sessionDir := filepath.Join(tmpDir, "session")

		store, err := NewStore(sessionDir)
		require.NoError(t, err)
		assert.NotNil(t, store)

		info, err := os.Stat(sessionDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	})

	t.Run("creates config.json on initialization", func(t *testing.T) {
		tmpDir := t.TempDir()
		store, err := NewStore(tmpDir)
		require.NoError(t, err)

		configPath := filepath.Join(tmpDir, "config.json")
		info, err := os.Stat(configPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		cfg, err := store.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Version)
		assert.Empty(t, cfg.Values)
	})
}

func TestStore_SetGet(t *testing.T) {
	t.Run("round-trips a value", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(KeyAccessToken, "tok123"))

		value, err := store.Get(KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "tok123", value)
	})

	t.Run("absent key returns empty string", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		value, err := store.Get(KeyRefreshToken)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("values survive reopening the store", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Set(KeyAccessToken, "tok123"))
		require.NoError(t, store.Set(KeyRefreshToken, "ref456"))

		reopened, err := NewStore(dir)
		require.NoError(t, err)

		access, err := reopened.Get(KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "tok123", access)

		refresh, err := reopened.Get(KeyRefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "ref456", refresh)
	})

	t.Run("overwrites an existing value", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(KeyAccessToken, "old"))
		require.NoError(t, store.Set(KeyAccessToken, "new"))

		value, err := store.Get(KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "new", value)
	})
}

func TestStore_Clear(t *testing.T) {
	t.Run("removes a stored value", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(KeyAccessToken, "tok123"))
		require.NoError(t, store.Clear(KeyAccessToken))

		value, err := store.Get(KeyAccessToken)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("clearing an absent key is not an error", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Clear(KeyAccessToken))
		require.NoError(t, store.Clear(KeyAccessToken))
	})
}
