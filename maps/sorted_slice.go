package maps

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
)

// SortedSliceMap is a map backed by a single slice of entries kept strictly
// ascending by key.
//
// Lookups are a binary search, O(log n). Inserting a new key or removing one
// shifts every later entry, O(n); overwriting an existing key is O(log n).
// For small and medium maps this is usually faster than a tree, and ranging
// over the entries is a plain slice walk.
//
// The zero value is an empty map ready to use.
type SortedSliceMap[K sortable.Sortable[K], V any] struct {
	entries []Entry[K, V]
}

// NewSortedSliceMap returns an empty map.
func NewSortedSliceMap[K sortable.Sortable[K], V any]() *SortedSliceMap[K, V] {
	return &SortedSliceMap[K, V]{}
}

// NewSortedSliceMapWithCapacity returns an empty map with room for capacity entries.
func NewSortedSliceMapWithCapacity[K sortable.Sortable[K], V any](capacity int) *SortedSliceMap[K, V] {
	return &SortedSliceMap[K, V]{entries: make([]Entry[K, V], 0, capacity)}
}

// CollectSortedSliceMap builds a map from the pairs of seq. Later pairs
// overwrite earlier ones with the same key.
func CollectSortedSliceMap[K sortable.Sortable[K], V any](seq iter.Seq2[K, V]) *SortedSliceMap[K, V] {
	m := NewSortedSliceMap[K, V]()
	m.Extend(seq)

	return m
}

// SortedSliceMapOf builds a map from entries given in any order.
func SortedSliceMapOf[K sortable.Sortable[K], V any](entries ...Entry[K, V]) *SortedSliceMap[K, V] {
	m := NewSortedSliceMapWithCapacity[K, V](len(entries))

	for _, entry := range entries {
		m.Insert(entry.Key, entry.Value)
	}

	return m
}

func compareKey[K sortable.Sortable[K], V any](entry Entry[K, V], key K) int {
	return sortable.Compare(entry.Key, key)
}

func (m *SortedSliceMap[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, compareKey[K, V])
}

// Len returns the number of entries.
func (m *SortedSliceMap[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries.
func (m *SortedSliceMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Cap returns the capacity of the backing slice.
func (m *SortedSliceMap[K, V]) Cap() int {
	return cap(m.entries)
}

// Reserve makes room for at least n more entries without reallocating.
func (m *SortedSliceMap[K, V]) Reserve(n int) {
	m.entries = slices.Grow(m.entries, n)
}

// ShrinkToFit drops unused capacity.
func (m *SortedSliceMap[K, V]) ShrinkToFit() {
	m.entries = slices.Clip(m.entries)
}

// Clear removes every entry and keeps the capacity.
func (m *SortedSliceMap[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
}

// Truncate keeps the n entries with the smallest keys. It does nothing if n >= Len().
func (m *SortedSliceMap[K, V]) Truncate(n int) {
	if n < len(m.entries) {
		clear(m.entries[n:])
		m.entries = m.entries[:n]
	}
}

// Get returns the value stored under key. O(log n).
func (m *SortedSliceMap[K, V]) Get(key K) (V, bool) {
	if i, found := m.search(key); found {
		return m.entries[i].Value, true
	}

	var zero V

	return zero, false
}

// Contains reports whether key is present. O(log n).
func (m *SortedSliceMap[K, V]) Contains(key K) bool {
	_, found := m.search(key)

	return found
}

// GetPtr returns a pointer to the value stored under key, or nil. The pointer
// is valid until the next insertion or removal; the key itself cannot be
// changed through it.
func (m *SortedSliceMap[K, V]) GetPtr(key K) *V {
	if i, found := m.search(key); found {
		return &m.entries[i].Value
	}

	return nil
}

// IndexOf returns the position of key, or the position it would be inserted
// at together with false.
func (m *SortedSliceMap[K, V]) IndexOf(key K) (int, bool) {
	return m.search(key)
}

// At returns the entry at index i in key order. It panics if i is out of range.
func (m *SortedSliceMap[K, V]) At(i int) Entry[K, V] {
	return m.entries[i]
}

// MustGet returns the value stored under key. It panics with an error
// wrapping ErrKeyNotFound if the key is absent.
func (m *SortedSliceMap[K, V]) MustGet(key K) V {
	value, ok := m.Get(key)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}

	return value
}

// Min returns the entry with the smallest key.
func (m *SortedSliceMap[K, V]) Min() (Entry[K, V], bool) {
	if len(m.entries) == 0 {
		return Entry[K, V]{}, false
	}

	return m.entries[0], true
}

// Max returns the entry with the largest key.
func (m *SortedSliceMap[K, V]) Max() (Entry[K, V], bool) {
	if len(m.entries) == 0 {
		return Entry[K, V]{}, false
	}

	return m.entries[len(m.entries)-1], true
}

// Insert stores value under key. An existing entry is overwritten in place,
// O(log n), and its old value returned; the stored key is replaced too.
// A new key is inserted at its slot, shifting the tail, O(n).
func (m *SortedSliceMap[K, V]) Insert(key K, value V) (old V, replaced bool) {
	i, found := m.search(key)
	if found {
		old = m.entries[i].Value
		m.entries[i] = Entry[K, V]{Key: key, Value: value}

		return old, true
	}

	m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: value})

	return old, false
}

// Remove deletes key, shifting the tail, O(n).
func (m *SortedSliceMap[K, V]) Remove(key K) (old V, removed bool) {
	i, found := m.search(key)
	if !found {
		return old, false
	}

	old = m.entries[i].Value
	m.entries = slices.Delete(m.entries, i, i+1)

	return old, true
}

// Extend inserts every pair of seq.
func (m *SortedSliceMap[K, V]) Extend(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		m.Insert(key, value)
	}
}

// Retain keeps only the entries for which keep returns true, in one forward pass.
func (m *SortedSliceMap[K, V]) Retain(keep func(key K, value V) bool) {
	m.entries = slices.DeleteFunc(m.entries, func(entry Entry[K, V]) bool {
		return !keep(entry.Key, entry.Value)
	})
}

// Append moves every entry of other onto the end of m and leaves other
// empty. It is a raw splice, not a merge: every key of other must be greater
// than every key of m, or the map stops being sorted (Validate reports it).
// Use Merge to combine arbitrary maps.
func (m *SortedSliceMap[K, V]) Append(other *SortedSliceMap[K, V]) {
	m.entries = append(m.entries, other.entries...)
	other.Clear()
}

// SplitOff removes the entries at index at and above and returns them as a
// new map. It panics if at > Len().
func (m *SortedSliceMap[K, V]) SplitOff(at int) *SortedSliceMap[K, V] {
	assert.True(at >= 0 && at <= len(m.entries), "split index %d out of range [0, %d]", at, len(m.entries))

	tail := slices.Clone(m.entries[at:])
	m.Truncate(at)

	return &SortedSliceMap[K, V]{entries: tail}
}

// Seq ranges over the entries in ascending key order.
func (m *SortedSliceMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, entry := range m.entries {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Keys ranges over the keys in ascending order.
func (m *SortedSliceMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, entry := range m.entries {
			if !yield(entry.Key) {
				return
			}
		}
	}
}

// Values ranges over the values in ascending key order.
func (m *SortedSliceMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, entry := range m.entries {
			if !yield(entry.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in ascending key order.
// The result is never nil.
func (m *SortedSliceMap[K, V]) Entries() []Entry[K, V] {
	return append(make([]Entry[K, V], 0, len(m.entries)), m.entries...)
}

// Clone returns a shallow copy of the map.
func (m *SortedSliceMap[K, V]) Clone() *SortedSliceMap[K, V] {
	return &SortedSliceMap[K, V]{entries: slices.Clone(m.entries)}
}

// Equal reports whether both maps hold the same keys with values that
// eq considers equal.
func (m *SortedSliceMap[K, V]) Equal(other *SortedSliceMap[K, V], eq func(a, b V) bool) bool {
	return slices.EqualFunc(m.entries, other.entries, func(a, b Entry[K, V]) bool {
		return a.Key.Equals(b.Key) && eq(a.Value, b.Value)
	})
}

// Validate returns ErrUnsorted if the keys are not strictly ascending.
func (m *SortedSliceMap[K, V]) Validate() error {
	byKey := func(a, b Entry[K, V]) int {
		return sortable.Compare(a.Key, b.Key)
	}

	if i := compare.FirstUnordered(m.entries, byKey); i >= 0 {
		return fmt.Errorf("%w: key %d (%v) does not follow %v",
			ErrUnsorted, i, m.entries[i].Key, m.entries[i-1].Key)
	}

	return nil
}

// Update replaces the value under key with f(current), current being None for
// an absent key, and returns m. The slot is located and f is called before
// anything is written, so a panicking f leaves m unchanged.
func (m *SortedSliceMap[K, V]) Update(key K, f func(current optional.Value[V]) V) *SortedSliceMap[K, V] {
	i, found := m.search(key)
	if found {
		m.entries[i].Value = f(optional.Some(m.entries[i].Value))

		return m
	}

	value := f(optional.None[V]())
	m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: value})

	return m
}

// TryUpdate is Update with a fallible f. When f returns an error nothing is
// written and the error is returned unchanged.
func (m *SortedSliceMap[K, V]) TryUpdate(key K, f func(current optional.Value[V]) (V, error)) error {
	i, found := m.search(key)
	if found {
		value, err := f(optional.Some(m.entries[i].Value))
		if err != nil {
			return err
		}

		m.entries[i].Value = value

		return nil
	}

	value, err := f(optional.None[V]())
	if err != nil {
		return err
	}

	m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: value})

	return nil
}

// UpdateInPlace mutates the value under key through f. An absent key is
// inserted with def before f runs; if f panics the default stays.
//
// For this backing the cost equals Insert plus the call to f: there is no
// advantage over Update, which is offered for backings where reaching a value
// twice is expensive.
func (m *SortedSliceMap[K, V]) UpdateInPlace(key K, def V, f func(value *V)) {
	i, found := m.search(key)
	if !found {
		m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: def})
	}

	f(&m.entries[i].Value)
}

// Merge folds other into m in other's iteration order and returns m. Keys
// absent from m are inserted as-is; for present keys the value becomes
// f(existing, incoming).
func (m *SortedSliceMap[K, V]) Merge(other iter.Seq2[K, V], f func(existing, incoming V) V) *SortedSliceMap[K, V] {
	for key, incoming := range other {
		i, found := m.search(key)
		if found {
			m.entries[i].Value = f(m.entries[i].Value, incoming)
		} else {
			m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: incoming})
		}
	}

	return m
}

// MergeInPlace is Merge with f mutating the existing value.
func (m *SortedSliceMap[K, V]) MergeInPlace(other iter.Seq2[K, V], f func(existing *V, incoming V)) {
	for key, incoming := range other {
		i, found := m.search(key)
		if found {
			f(&m.entries[i].Value, incoming)
		} else {
			m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: incoming})
		}
	}
}

// UpdateAll replaces every value with f(key, value) and returns m.
func (m *SortedSliceMap[K, V]) UpdateAll(f func(key K, value V) V) *SortedSliceMap[K, V] {
	for i := range m.entries {
		m.entries[i].Value = f(m.entries[i].Key, m.entries[i].Value)
	}

	return m
}

// UpdateAllInPlace mutates every value through f.
func (m *SortedSliceMap[K, V]) UpdateAllInPlace(f func(key K, value *V)) {
	for i := range m.entries {
		f(m.entries[i].Key, &m.entries[i].Value)
	}
}
