package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		c := New(Config{})
		defer c.Close()

		c.Set(ctx, "a", 1)
		v, ok := c.Get(ctx, "a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("expired entries are absent", func(t *testing.T) {
		c := New(Config{})
		defer c.Close()

		c.SetWithTTL(ctx, "a", 1, time.Nanosecond)
		time.Sleep(time.Millisecond)
		_, ok := c.Get(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("delete removes", func(t *testing.T) {
		c := New(Config{})
		defer c.Close()

		c.Set(ctx, "a", 1)
		c.Delete(ctx, "a")
		_, ok := c.Get(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("lru eviction at capacity", func(t *testing.T) {
		evicted := []string{}
		c := New(Config{
			MaxItems:   2,
			OnEviction: func(key string, _ any) { evicted = append(evicted, key) },
		})
		defer c.Close()

		c.Set(ctx, "a", 1)
		c.Set(ctx, "b", 2)
		// Touch "a" so "b" is the least recently used.
		_, ok := c.Get(ctx, "a")
		require.True(t, ok)

		c.Set(ctx, "c", 3)
		assert.Equal(t, []string{"b"}, evicted)
		_, ok = c.Get(ctx, "b")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "a")
		assert.True(t, ok)
	})

	t.Run("set updates existing entry", func(t *testing.T) {
		c := New(Config{})
		defer c.Close()

		c.Set(ctx, "a", 1)
		c.Set(ctx, "a", 2)
		v, ok := c.Get(ctx, "a")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		c := New(Config{})
		c.Close()
		c.Close()
	})
}
