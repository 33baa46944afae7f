package maps

import (
	"iter"
	stdmaps "maps"
)

// GoMap adapts a native Go map to the Map capability set, so the protocol
// functions can be used on plain maps. Iteration order is unspecified, which
// makes GoMap unsuitable wherever ascending order matters.
//
// Example:
//
//	counts := maps.GoMap[string, int]{}
//	maps.UpdateInPlace(counts, "a", 0, func(n *int) { *n++ })
type GoMap[K comparable, V any] map[K]V

// FromGoMap wraps m without copying it. Writes through the result are
// visible in m.
func FromGoMap[K comparable, V any](m map[K]V) GoMap[K, V] {
	return GoMap[K, V](m)
}

// ToGoMap copies the contents of any Map backing into a new native map.
// Returns nil if m is nil.
func ToGoMap[K comparable, V any](m Map[K, V]) map[K]V {
	if m == nil {
		return nil
	}

	out := make(map[K]V, m.Len())

	for k, v := range m.Seq() {
		out[k] = v
	}

	return out
}

// Get returns the value stored under key.
func (m GoMap[K, V]) Get(key K) (V, bool) {
	value, ok := m[key]

	return value, ok
}

// Insert stores value under key and returns the previous value, if any.
func (m GoMap[K, V]) Insert(key K, value V) (old V, replaced bool) {
	old, replaced = m[key]
	m[key] = value

	return old, replaced
}

// Remove deletes key and returns its value.
func (m GoMap[K, V]) Remove(key K) (old V, removed bool) {
	old, removed = m[key]
	if removed {
		delete(m, key)
	}

	return old, removed
}

// Clear removes every entry.
func (m GoMap[K, V]) Clear() {
	clear(m)
}

// Len returns the number of entries.
func (m GoMap[K, V]) Len() int {
	return len(m)
}

// Seq ranges over the entries in unspecified order.
func (m GoMap[K, V]) Seq() iter.Seq2[K, V] {
	return stdmaps.All(m)
}
