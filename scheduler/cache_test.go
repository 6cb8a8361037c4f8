package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupCache(t *testing.T) {
	t.Run("seed preserves order and bound", func(t *testing.T) {
		cache := NewDedupCache(3)
		cache.Seed([]string{"a", "b", "c", "d"})

		assert.Equal(t, []string{"a", "b", "c"}, cache.Snapshot())
		assert.True(t, cache.Contains("a"))
		assert.False(t, cache.Contains("d"))
	})

	t.Run("seed drops duplicate ids", func(t *testing.T) {
		cache := NewDedupCache(10)
		cache.Seed([]string{"a", "b", "a"})

		assert.Equal(t, []string{"a", "b"}, cache.Snapshot())
	})

	t.Run("seed replaces previous contents", func(t *testing.T) {
		cache := NewDedupCache(10)
		cache.Seed([]string{"a", "b"})
		cache.Seed([]string{"c"})

		assert.Equal(t, []string{"c"}, cache.Snapshot())
		assert.False(t, cache.Contains("a"))
	})

	t.Run("admit prepends and evicts the oldest", func(t *testing.T) {
		cache := NewDedupCache(2)
		cache.Seed([]string{"a", "b"})

		cache.Admit("c")

		assert.Equal(t, []string{"c", "a"}, cache.Snapshot())
		assert.False(t, cache.Contains("b"))
	})

	t.Run("admit ignores ids already present", func(t *testing.T) {
		cache := NewDedupCache(3)
		cache.Seed([]string{"a", "b"})

		cache.Admit("a")

		assert.Equal(t, []string{"a", "b"}, cache.Snapshot())
	})

	t.Run("zero bound retains nothing", func(t *testing.T) {
		cache := NewDedupCache(0)
		cache.Seed([]string{"a"})
		cache.Admit("b")

		assert.Zero(t, cache.Len())
		assert.False(t, cache.Contains("a"))
		assert.False(t, cache.Contains("b"))
	})

	t.Run("negative bound behaves like zero", func(t *testing.T) {
		cache := NewDedupCache(-5)
		cache.Admit("a")

		assert.Zero(t, cache.Len())
	})
}
