package devicecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()

	store, err := NewMemoryStore(10, time.Minute)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", categorizr.NewDevice("tv")))

	now = now.Add(59 * time.Second)
	d, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, d.IsTV())

	now = now.Add(time.Second)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "expired entries are dropped on access")
}

func TestMemoryStore_SetRefreshesExpiry(t *testing.T) {
	t.Parallel()

	store, err := NewMemoryStore(10, time.Minute)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", categorizr.NewDevice("tv")))
	now = now.Add(50 * time.Second)
	require.NoError(t, store.Set(ctx, "k", categorizr.NewDevice("desktop")))
	now = now.Add(50 * time.Second)

	d, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, d.IsDesktop())
}
