package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTestStore(t *testing.T) *Snapshots {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, s.Save(ctx, "users", in))

	var out []record
	fetchedAt, err := s.Load(ctx, "users", &out)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.False(t, fetchedAt.IsZero())
}

func TestSave_ReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "orders", []record{{ID: "1"}}))
	require.NoError(t, s.Save(ctx, "orders", []record{{ID: "2"}}))

	var out []record
	_, err := s.Load(ctx, "orders", &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestLoad_MissingResource(t *testing.T) {
	s := openTestStore(t)

	var out []record
	_, err := s.Load(context.Background(), "nothing", &out)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "users", []record{{ID: "1"}}))
	require.NoError(t, s.Clear(ctx))

	var out []record
	_, err := s.Load(ctx, "users", &out)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
