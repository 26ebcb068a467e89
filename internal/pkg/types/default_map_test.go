package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMap_Get(t *testing.T) {
	t.Run("returns existing value", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })
		dm.Set("existing", 100)

		assert.Equal(t, 100, dm.Get("existing"))
	})

	t.Run("stores default value in map after first access", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 99 })

		assert.Equal(t, 99, dm.Get("new_key"))

		storedValue, exists := dm.data["new_key"]
		require.True(t, exists, "value should be stored in map after first access")
		assert.Equal(t, 99, storedValue)
	})

	t.Run("default function called only once per key", func(t *testing.T) {
		callCount := 0
		dm := NewDefaultMap[string](func() int {
			callCount++
			return callCount * 10
		})

		assert.Equal(t, 10, dm.Get("test_key"))
		assert.Equal(t, 10, dm.Get("test_key"))
		assert.Equal(t, 1, callCount, "default function should be called exactly once per key")
	})

	t.Run("pointer defaults accumulate in place", func(t *testing.T) {
		dm := NewDefaultMap[string](func() *big.Int { return new(big.Int) })

		dm.Get("stake1u").Add(dm.Get("stake1u"), big.NewInt(3))
		dm.Get("stake1u").Add(dm.Get("stake1u"), big.NewInt(7))

		assert.Equal(t, "10", dm.Get("stake1u").String())
	})
}

func TestDefaultMap_Set(t *testing.T) {
	t.Run("overwrites existing value", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })
		dm.Set("key", 100)
		dm.Set("key", 200)

		assert.Equal(t, 200, dm.Get("key"))
		assert.Equal(t, 1, dm.Len())
	})
}

func TestDefaultMap_Keys(t *testing.T) {
	t.Run("keys keep first insertion order", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })

		dm.Get("c")
		dm.Set("a", 1)
		dm.Set("c", 5)
		dm.Get("b")

		assert.Equal(t, []string{"c", "a", "b"}, dm.Keys())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })
		dm.Set("a", 1)

		keys := dm.Keys()
		keys[0] = "mutated"

		assert.Equal(t, []string{"a"}, dm.Keys())
	})
}

func TestDefaultMap_ToMap(t *testing.T) {
	t.Run("includes values created by Get", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 99 })

		dm.Get("auto_created")
		dm.Set("manual", 50)

		result := dm.ToMap()

		require.Len(t, result, 2)
		assert.Equal(t, 99, result["auto_created"])
		assert.Equal(t, 50, result["manual"])
	})
}
