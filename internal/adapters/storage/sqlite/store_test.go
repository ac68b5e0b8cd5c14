package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/storage/sqlite"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "nested", "cache.db"))

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	require.True(t, store.Set(ctx, "k", "v1"))
	require.True(t, store.Set(ctx, "k", "v2"))

	got, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v2", got)

	store.Remove(ctx, "k")
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)

	store.Remove(ctx, "k")
}

func TestStore_KeysByPrefix(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "cache.db"))

	for _, key := range []string{"eegfm:b", "eegfm:a", "other:a", "eegfm"} {
		require.True(t, store.Set(ctx, key, "{}"))
	}

	assert.Equal(t, []string{"eegfm:a", "eegfm:b"}, store.Keys(ctx, "eegfm:"))
	assert.Empty(t, store.Keys(ctx, "none:"))
	assert.Len(t, store.Keys(ctx, ""), 4)
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.True(t, first.Set(ctx, "k", "persisted"))
	require.NoError(t, first.Close())

	second := openStore(t, path)
	got, ok := second.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestStore_ClosedReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	require.True(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Close())

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
	assert.False(t, store.Set(ctx, "k", "v"))
	assert.Empty(t, store.Keys(ctx, ""))
	store.Remove(ctx, "k")
}
