// Package maps provides associative containers and a uniform update/merge
// protocol over them.
//
// Three backings implement the Map capability set: SortedSliceMap (one sorted
// slice searched by binary search), BTreeMap (a B-tree, via google/btree) and
// GoMap (a native Go map, unordered). The protocol functions in this file
// (Assoc, Dissoc, Update, Merge, ...) work on any of them. They use a
// backing's own method when it has one, and otherwise fall back to a generic
// get/insert sequence built from the capability set.
//
// Thread-safety: maps are not safe for concurrent use. Mutation requires
// exclusive access; lookups and iteration may share access with each other
// but never with a mutation.
package maps

import (
	"errors"
	"iter"

	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
)

var (
	// ErrKeyNotFound is the panic value, wrapped with the key, of MustGet
	// when the key is absent.
	ErrKeyNotFound = errors.New("no entry found for key")

	// ErrUnsorted is returned by Validate when the entries are not strictly
	// ascending by key, which can only happen through a misused Append.
	ErrUnsorted = errors.New("map keys are not strictly ascending")
)

// Map is the capability set a backing must provide to take part in the
// update/merge protocol.
type Map[K any, V any] interface {
	// Get returns the value stored under key.
	Get(key K) (V, bool)

	// Insert stores value under key. If the key was present, the previous
	// value is returned with replaced=true.
	Insert(key K, value V) (old V, replaced bool)

	// Remove deletes key and returns its value.
	Remove(key K) (old V, removed bool)

	// Clear removes every entry.
	Clear()

	// Len returns the number of entries.
	Len() int

	// Seq ranges over the entries. Sorted backings yield ascending key order;
	// GoMap yields them in no particular order.
	Seq() iter.Seq2[K, V]
}

var (
	_ Map[sortable.Int, int] = (*SortedSliceMap[sortable.Int, int])(nil)
	_ Map[sortable.Int, int] = (*BTreeMap[sortable.Int, int])(nil)
	_ Map[string, int]       = GoMap[string, int](nil)
)

// Updater is implemented by backings with a native Update. M is the
// backing's own handle type.
type Updater[M any, K any, V any] interface {
	Update(key K, f func(current optional.Value[V]) V) M
}

// InPlaceUpdater is implemented by backings with a native UpdateInPlace.
type InPlaceUpdater[K any, V any] interface {
	UpdateInPlace(key K, def V, f func(value *V))
}

// Merger is implemented by backings with a native Merge.
type Merger[M any, K any, V any] interface {
	Merge(other iter.Seq2[K, V], f func(existing, incoming V) V) M
}

// InPlaceMerger is implemented by backings with a native MergeInPlace.
type InPlaceMerger[K any, V any] interface {
	MergeInPlace(other iter.Seq2[K, V], f func(existing *V, incoming V))
}

// AllUpdater is implemented by backings with a native UpdateAll.
type AllUpdater[M any, K any, V any] interface {
	UpdateAll(f func(key K, value V) V) M
}

// InPlaceAllUpdater is implemented by backings with a native UpdateAllInPlace.
type InPlaceAllUpdater[K any, V any] interface {
	UpdateAllInPlace(f func(key K, value *V))
}

// Assoc stores value under key and returns m.
func Assoc[M Map[K, V], K any, V any](m M, key K, value V) M {
	m.Insert(key, value)

	return m
}

// Dissoc removes key and returns m.
func Dissoc[M Map[K, V], K any, V any](m M, key K) M {
	m.Remove(key)

	return m
}

// Into inserts every pair of seq, later pairs overwriting earlier ones, and returns m.
func Into[M Map[K, V], K any, V any](m M, seq iter.Seq2[K, V]) M {
	for key, value := range seq {
		m.Insert(key, value)
	}

	return m
}

// Lookup returns m as a function from key to value.
func Lookup[K any, V any](m Map[K, V]) func(K) (V, bool) {
	return m.Get
}

// Shrink releases unused capacity when the backing supports it
// (ShrinkToFit) and returns m. Other backings are returned unchanged.
func Shrink[M any](m M) M {
	if s, ok := any(m).(interface{ ShrinkToFit() }); ok {
		s.ShrinkToFit()
	}

	return m
}

// Empty clears m and returns it.
func Empty[M interface{ Clear() }](m M) M {
	m.Clear()

	return m
}

// Update replaces the value under key with f(current), where current is None
// if the key is absent, and returns m. f runs before anything is written, so
// a panicking f leaves m unchanged.
func Update[M Map[K, V], K any, V any](m M, key K, f func(current optional.Value[V]) V) M {
	if u, ok := any(m).(Updater[M, K, V]); ok {
		return u.Update(key, f)
	}

	current, ok := m.Get(key)
	m.Insert(key, f(optional.Of(current, ok)))

	return m
}

// UpdateInPlace mutates the value under key through f. An absent key is
// first stored with def and then handed to f. If f panics, the default stays.
func UpdateInPlace[M Map[K, V], K any, V any](m M, key K, def V, f func(value *V)) {
	if u, ok := any(m).(InPlaceUpdater[K, V]); ok {
		u.UpdateInPlace(key, def, f)

		return
	}

	value, ok := m.Get(key)
	if !ok {
		m.Insert(key, def)
		value = def
	}

	f(&value)
	m.Insert(key, value)
}

// Merge folds other into m in other's iteration order. Keys absent from m
// are inserted as-is; for present keys the value becomes f(existing, incoming).
// other may be a view of m itself.
func Merge[M Map[K, V], K any, V any](m M, other iter.Seq2[K, V], f func(existing, incoming V) V) M {
	if u, ok := any(m).(Merger[M, K, V]); ok {
		return u.Merge(other, f)
	}

	for _, entry := range snapshot(other, m.Len()) {
		if existing, ok := m.Get(entry.Key); ok {
			m.Insert(entry.Key, f(existing, entry.Value))
		} else {
			m.Insert(entry.Key, entry.Value)
		}
	}

	return m
}

// MergeInPlace folds other into m, mutating present values through f.
func MergeInPlace[M Map[K, V], K any, V any](m M, other iter.Seq2[K, V], f func(existing *V, incoming V)) {
	if u, ok := any(m).(InPlaceMerger[K, V]); ok {
		u.MergeInPlace(other, f)

		return
	}

	for _, entry := range snapshot(other, m.Len()) {
		if existing, ok := m.Get(entry.Key); ok {
			f(&existing, entry.Value)
			m.Insert(entry.Key, existing)
		} else {
			m.Insert(entry.Key, entry.Value)
		}
	}
}

// UpdateAll replaces every value with f(key, value) and returns m.
func UpdateAll[M Map[K, V], K any, V any](m M, f func(key K, value V) V) M {
	if u, ok := any(m).(AllUpdater[M, K, V]); ok {
		return u.UpdateAll(f)
	}

	for _, entry := range snapshot(m.Seq(), m.Len()) {
		m.Insert(entry.Key, f(entry.Key, entry.Value))
	}

	return m
}

// UpdateAllInPlace mutates every value through f.
func UpdateAllInPlace[M Map[K, V], K any, V any](m M, f func(key K, value *V)) {
	if u, ok := any(m).(InPlaceAllUpdater[K, V]); ok {
		u.UpdateAllInPlace(f)

		return
	}

	for _, entry := range snapshot(m.Seq(), m.Len()) {
		f(entry.Key, &entry.Value)
		m.Insert(entry.Key, entry.Value)
	}
}

// snapshot copies the pairs of seq out so a backing can be written while the
// copy is walked. Not every backing tolerates writes during its own Seq, and
// seq may be a view of the map being written.
func snapshot[K any, V any](seq iter.Seq2[K, V], capacity int) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, capacity)
	for key, value := range seq {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}

	return entries
}
