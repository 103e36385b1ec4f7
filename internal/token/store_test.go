package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("tok-123"))
	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	// Set("") is equivalent to Clear
	require.NoError(t, s.Set(""))
	got, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileStore(path)

	// absent file means no session
	got, err := s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Set("tok-456"))
	got, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Clear())
	got, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)

	// clearing an already-empty store is not an error
	require.NoError(t, s.Clear())
}

func TestFileStore_SetEmptyClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path)

	require.NoError(t, s.Set("tok"))
	require.NoError(t, s.Set(""))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
