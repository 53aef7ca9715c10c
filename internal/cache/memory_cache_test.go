package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheBasic(t *testing.T) {
	mc := NewMemoryCache[string]()
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "key", "value", 0))
	v, err := mc.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = mc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mc.Delete(ctx, "key"))
	_, err = mc.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCacheWithOptions[string](4, 10*time.Millisecond)
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "short", "lived", 20*time.Millisecond))

	v, err := mc.Get(ctx, "short")
	assert.NoError(t, err)
	assert.Equal(t, "lived", v)

	time.Sleep(40 * time.Millisecond)
	_, err = mc.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	mc := NewMemoryCache[int]()
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "n", 1, 0))
	assert.NoError(t, mc.Set(ctx, "n", 2, 0))
	v, err := mc.Get(ctx, "n")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestNewCacheFactory(t *testing.T) {
	c := NewCache[string](MemoryBackend)
	assert.NotNil(t, c)

	assert.Panics(t, func() {
		NewCache[string]("bogus")
	})
}
