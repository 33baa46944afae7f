package maps

import (
	"iter"

	"github.com/amp-labs/amp-collections/sortable"
	"github.com/google/btree"
)

// DefaultBTreeDegree is the node degree used by NewBTreeMap.
const DefaultBTreeDegree = 32

// BTreeMap is an ordered map stored in a B-tree of entries. Insert and Remove
// are O(log n) wherever the key lands.
//
// BTreeMap only provides the Map capability set plus ordered accessors, so
// the protocol functions drive it through their generic get/insert path.
//
// Use NewBTreeMap; the zero value is not usable.
type BTreeMap[K sortable.Sortable[K], V any] struct {
	tree *btree.BTreeG[Entry[K, V]]
}

// NewBTreeMap returns an empty map with the default degree.
func NewBTreeMap[K sortable.Sortable[K], V any]() *BTreeMap[K, V] {
	return NewBTreeMapWithDegree[K, V](DefaultBTreeDegree)
}

// NewBTreeMapWithDegree returns an empty map whose nodes hold up to
// 2*degree-1 entries.
func NewBTreeMapWithDegree[K sortable.Sortable[K], V any](degree int) *BTreeMap[K, V] {
	return &BTreeMap[K, V]{tree: btree.NewG(degree, lessKey[K, V])}
}

func lessKey[K sortable.Sortable[K], V any](a, b Entry[K, V]) bool {
	return a.Key.LessThan(b.Key)
}

func probe[K any, V any](key K) Entry[K, V] {
	return Entry[K, V]{Key: key}
}

// Len returns the number of entries.
func (m *BTreeMap[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *BTreeMap[K, V]) IsEmpty() bool {
	return m.tree.Len() == 0
}

// Clear removes every entry.
func (m *BTreeMap[K, V]) Clear() {
	m.tree.Clear(false)
}

// Get returns the value stored under key.
func (m *BTreeMap[K, V]) Get(key K) (V, bool) {
	entry, ok := m.tree.Get(probe[K, V](key))

	return entry.Value, ok
}

// Contains reports whether key is present.
func (m *BTreeMap[K, V]) Contains(key K) bool {
	return m.tree.Has(probe[K, V](key))
}

// Insert stores value under key and returns the previous value, if any.
func (m *BTreeMap[K, V]) Insert(key K, value V) (old V, replaced bool) {
	prev, replaced := m.tree.ReplaceOrInsert(Entry[K, V]{Key: key, Value: value})

	return prev.Value, replaced
}

// Remove deletes key and returns its value.
func (m *BTreeMap[K, V]) Remove(key K) (old V, removed bool) {
	prev, removed := m.tree.Delete(probe[K, V](key))

	return prev.Value, removed
}

// Min returns the entry with the smallest key.
func (m *BTreeMap[K, V]) Min() (Entry[K, V], bool) {
	return m.tree.Min()
}

// Max returns the entry with the largest key.
func (m *BTreeMap[K, V]) Max() (Entry[K, V], bool) {
	return m.tree.Max()
}

// Seq ranges over the entries in ascending key order.
func (m *BTreeMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(entry Entry[K, V]) bool {
			return yield(entry.Key, entry.Value)
		})
	}
}

// Keys ranges over the keys in ascending order.
func (m *BTreeMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.tree.Ascend(func(entry Entry[K, V]) bool {
			return yield(entry.Key)
		})
	}
}

// Range ranges over the entries with from <= key < to in ascending order.
func (m *BTreeMap[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.AscendRange(probe[K, V](from), probe[K, V](to), func(entry Entry[K, V]) bool {
			return yield(entry.Key, entry.Value)
		})
	}
}

// Clone returns a copy of the map. Nodes are shared copy-on-write, so
// cloning is O(1).
func (m *BTreeMap[K, V]) Clone() *BTreeMap[K, V] {
	return &BTreeMap[K, V]{tree: m.tree.Clone()}
}
