// Package set provides ordered sets and the small protocol they share.
//
// Two backings are provided: SortedSliceSet keeps its elements in one sorted
// slice and finds them by binary search; BTreeSet keeps them in a B-tree.
// Both iterate in ascending order, so both can feed the merge-join engine in
// package setops.
//
// Thread-safety: sets are not safe for concurrent use. Mutation requires
// exclusive access; iteration and lookup may share access with each other
// but never with a mutation.
package set

import (
	"errors"
	"iter"

	"github.com/amp-labs/amp-collections/setops"
	"github.com/amp-labs/amp-collections/sortable"
)

var (
	// ErrUnsorted is returned by Validate when the backing slice is not strictly
	// ascending, which can only happen through a misused Append.
	ErrUnsorted = errors.New("set elements are not strictly ascending")

	// ErrNotFound is the panic value, wrapped with the element, of MustGet
	// when the element is absent.
	ErrNotFound = errors.New("no entry found for element")
)

// Set is the capability set a backing must provide to take part in the set
// protocol functions (Conj, Disj, Into, Lookup).
type Set[T any] interface {
	// Contains reports whether element is in the set.
	Contains(element T) bool

	// Get returns the stored element equal to element.
	Get(element T) (T, bool)

	// Insert adds element. If an equal element was already present it is
	// replaced and returned with replaced=true.
	Insert(element T) (old T, replaced bool)

	// Remove deletes the element equal to element and returns it.
	Remove(element T) (removed T, found bool)

	// Clear removes every element.
	Clear()

	// Len returns the number of elements.
	Len() int

	// Seq ranges over the elements. Ordered backings yield ascending order.
	Seq() iter.Seq[T]
}

// Ordered is a Set that iterates in strictly ascending order.
// Only Ordered sets are valid operands for the set-algebra functions.
type Ordered[T any] interface {
	Set[T]
	setops.Ordered[T]
}

var (
	_ Ordered[sortable.Int] = (*SortedSliceSet[sortable.Int])(nil)
	_ Ordered[sortable.Int] = (*BTreeSet[sortable.Int])(nil)
)

// Conj adds element to s and returns s.
func Conj[S Set[T], T any](s S, element T) S {
	s.Insert(element)

	return s
}

// Disj removes element from s and returns s.
func Disj[S Set[T], T any](s S, element T) S {
	s.Remove(element)

	return s
}

// Into adds every element of seq to s and returns s.
func Into[S Set[T], T any](s S, seq iter.Seq[T]) S {
	for element := range seq {
		s.Insert(element)
	}

	return s
}

// Empty clears s and returns it.
func Empty[S interface{ Clear() }](s S) S {
	s.Clear()

	return s
}

// Shrink releases unused capacity when the backing supports it
// (ShrinkToFit) and returns s. Other backings are returned unchanged.
func Shrink[S any](s S) S {
	if shrinker, ok := any(s).(interface{ ShrinkToFit() }); ok {
		shrinker.ShrinkToFit()
	}

	return s
}

// Lookup returns s as a function from an element to the stored equal element.
func Lookup[T any](s Set[T]) func(T) (T, bool) {
	return s.Get
}

// UnionOf returns a lazy ascending union of two ordered sets of any backing.
func UnionOf[T sortable.Sortable[T]](a, b setops.Ordered[T]) *setops.Iterator[T] {
	return setops.UnionOf(a, b, sortable.Compare[T])
}

// IntersectionOf returns a lazy ascending intersection of two ordered sets.
func IntersectionOf[T sortable.Sortable[T]](a, b setops.Ordered[T]) *setops.Iterator[T] {
	return setops.IntersectionOf(a, b, sortable.Compare[T])
}

// DifferenceOf returns a lazy ascending a - b.
func DifferenceOf[T sortable.Sortable[T]](a, b setops.Ordered[T]) *setops.Iterator[T] {
	return setops.DifferenceOf(a, b, sortable.Compare[T])
}

// SymmetricDifferenceOf returns a lazy ascending symmetric difference.
func SymmetricDifferenceOf[T sortable.Sortable[T]](a, b setops.Ordered[T]) *setops.Iterator[T] {
	return setops.SymmetricDifferenceOf(a, b, sortable.Compare[T])
}
