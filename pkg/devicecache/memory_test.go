package devicecache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
	"github.com/dmitrymomot/categorizr/pkg/devicecache"
)

func TestNewMemoryStore_InvalidCapacity(t *testing.T) {
	t.Parallel()

	_, err := devicecache.NewMemoryStore(0, 0)
	assert.ErrorIs(t, err, devicecache.ErrInvalidCapacity)
	_, err = devicecache.NewMemoryStore(-1, 0)
	assert.ErrorIs(t, err, devicecache.ErrInvalidCapacity)
}

func TestMemoryStore_Basic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		store, err := devicecache.NewMemoryStore(3, 0)
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "a", categorizr.NewDevice("tablet")))
		d, ok, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, d.IsTablet())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()
		store, err := devicecache.NewMemoryStore(3, 0)
		require.NoError(t, err)

		d, ok, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, categorizr.Device{}, d)
	})

	t.Run("update existing", func(t *testing.T) {
		t.Parallel()
		store, err := devicecache.NewMemoryStore(3, 0)
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "a", categorizr.NewDevice("tablet")))
		require.NoError(t, store.Set(ctx, "a", categorizr.NewDevice("desktop")))
		d, _, _ := store.Get(ctx, "a")
		assert.True(t, d.IsDesktop())
		assert.Equal(t, 1, store.Len())
	})
}

func TestMemoryStore_Eviction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := devicecache.NewMemoryStore(3, 0)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "a", categorizr.NewDevice("mobile")))
	require.NoError(t, store.Set(ctx, "b", categorizr.NewDevice("tablet")))
	require.NoError(t, store.Set(ctx, "c", categorizr.NewDevice("desktop")))

	// touch "a" so "b" becomes the least recently used
	_, ok, _ := store.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, store.Set(ctx, "d", categorizr.NewDevice("tv")))
	assert.Equal(t, 3, store.Len())

	_, ok, _ = store.Get(ctx, "b")
	assert.False(t, ok, "b should have been evicted")
	for _, key := range []string{"a", "c", "d"} {
		_, ok, _ = store.Get(ctx, key)
		assert.True(t, ok, key)
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := devicecache.NewMemoryStore(50, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := fmt.Sprintf("k%d", (g*200+i)%100)
				_ = store.Set(ctx, key, categorizr.NewDevice("desktop"))
				if d, ok, _ := store.Get(ctx, key); ok {
					assert.True(t, d.IsDesktop())
				}
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, store.Len(), 50)
}
