package types

// Set is a hash set of comparable values backed by map[T]struct{}.
// It is mutable and not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// TryAdd inserts value and reports whether it was not already present.
// Callers use it to process each element (e.g. a UTxO reference) once.
func (s Set[T]) TryAdd(value T) bool {
	if s.Has(value) {
		return false
	}
	s[value] = struct{}{}
	return true
}
