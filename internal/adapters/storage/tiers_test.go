package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/storage"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()

	assert.True(t, m.Set(ctx, "p:b", "1"))
	assert.True(t, m.Set(ctx, "p:a", "2"))
	assert.True(t, m.Set(ctx, "q", "3"))

	got, ok := m.Get(ctx, "p:a")
	require.True(t, ok)
	assert.Equal(t, "2", got)
	assert.Equal(t, []string{"p:a", "p:b"}, m.Keys(ctx, "p:"))

	m.Remove(ctx, "p:a")
	_, ok = m.Get(ctx, "p:a")
	assert.False(t, ok)
}

func TestDisabled(t *testing.T) {
	ctx := context.Background()
	var d storage.Disabled

	assert.False(t, d.Set(ctx, "k", "v"))
	_, ok := d.Get(ctx, "k")
	assert.False(t, ok)
	assert.Empty(t, d.Keys(ctx, ""))
	d.Remove(ctx, "k")
}

func TestOpen_NoPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any())

	tiers := storage.Open(context.Background(), domain.Config{NoPersist: true}, log)

	assert.IsType(t, storage.Disabled{}, tiers.Current)
	assert.IsType(t, storage.Disabled{}, tiers.Legacy)
	assert.NoError(t, tiers.Close())
}

func TestOpen_BothTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()

	tiers := storage.Open(context.Background(), domain.Config{
		CacheDBPath: filepath.Join(dir, "cache.db"),
		LegacyDir:   filepath.Join(dir, "legacy"),
	}, log)
	t.Cleanup(func() { _ = tiers.Close() })

	ctx := context.Background()
	require.True(t, tiers.Current.Set(ctx, "k", "current"))
	require.True(t, tiers.Legacy.Set(ctx, "k", "legacy"))

	current, _ := tiers.Current.Get(ctx, "k")
	legacy, _ := tiers.Legacy.Get(ctx, "k")
	assert.Equal(t, "current", current)
	assert.Equal(t, "legacy", legacy)
}

func TestOpen_DegradesUnavailableTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any())

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	tiers := storage.Open(context.Background(), domain.Config{
		CacheDBPath: filepath.Join(dir, "cache.db"),
		LegacyDir:   blocker,
	}, log)
	t.Cleanup(func() { _ = tiers.Close() })

	assert.IsType(t, storage.Disabled{}, tiers.Legacy)
	assert.True(t, tiers.Current.Set(context.Background(), "k", "v"))
}
