package types

// DefaultMap is a generic map wrapper that returns default values for missing
// keys and remembers the order in which keys were first inserted.
//
// It is useful for accumulations where every new key starts from a default
// (an empty ledger, a zero amount) and the report must list keys in the order
// they were first seen rather than Go's randomized map order.
//
//	m := NewDefaultMap[string](func() int { return 0 })
//	count := m.Get("key") // returns 0 if "key" is not yet in the map
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	order       []K      // keys in first-insertion order
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key.
//
// If the key is not present, it invokes the defaultFunc to generate a default
// value, stores it in the map, and then returns it.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.Set(key, val)
	return val
}

// Set manually assigns a value to the given key in the map.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	if _, ok := d.data[key]; !ok {
		d.order = append(d.order, key)
	}
	d.data[key] = val
}

// Keys returns the keys in the order they were first inserted.
func (d *DefaultMap[K, V]) Keys() []K {
	keys := make([]K, len(d.order))
	copy(keys, d.order)
	return keys
}

// Len returns the number of keys stored.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map used by the DefaultMap.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
