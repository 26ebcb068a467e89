package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[int]()
		assert.Empty(t, set)
	})

	t.Run("duplicate elements", func(t *testing.T) {
		set := NewSet("a#0", "a#1", "a#1")
		assert.Len(t, set, 2)
		assert.True(t, set.Has("a#0"))
		assert.True(t, set.Has("a#1"))
		assert.False(t, set.Has("a#2"))
	})
}

func TestSet_TryAdd(t *testing.T) {
	t.Run("should report only the first insertion", func(t *testing.T) {
		set := NewSet[string]()

		assert.True(t, set.TryAdd("tx#0"))
		assert.False(t, set.TryAdd("tx#0"))
		assert.True(t, set.TryAdd("tx#1"))
		assert.Len(t, set, 2)
	})

	t.Run("should refuse seeded elements", func(t *testing.T) {
		set := NewSet("tx#0")
		assert.False(t, set.TryAdd("tx#0"))
	})
}
