package set

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/setops"
	"github.com/amp-labs/amp-collections/sortable"
)

// SortedSliceSet is a set backed by a single slice kept strictly ascending.
//
// Lookups are a binary search, O(log n). Inserting a new element or removing
// one shifts every later element, O(n), which for small and medium sets is
// usually cheaper than chasing tree nodes. Inserting in ascending order
// always lands at the end and never shifts.
//
// The zero value is an empty set ready to use.
type SortedSliceSet[T sortable.Sortable[T]] struct {
	items []T
}

// NewSortedSliceSet returns an empty set.
func NewSortedSliceSet[T sortable.Sortable[T]]() *SortedSliceSet[T] {
	return &SortedSliceSet[T]{}
}

// NewSortedSliceSetWithCapacity returns an empty set with room for capacity elements.
func NewSortedSliceSetWithCapacity[T sortable.Sortable[T]](capacity int) *SortedSliceSet[T] {
	return &SortedSliceSet[T]{items: make([]T, 0, capacity)}
}

// SortedSliceSetOf returns a set holding the given elements in any order.
// Later duplicates replace earlier ones.
func SortedSliceSetOf[T sortable.Sortable[T]](elements ...T) *SortedSliceSet[T] {
	s := NewSortedSliceSetWithCapacity[T](len(elements))
	s.Extend(slices.Values(elements))

	return s
}

// CollectSortedSliceSet builds a set from every element of seq.
func CollectSortedSliceSet[T sortable.Sortable[T]](seq iter.Seq[T]) *SortedSliceSet[T] {
	s := NewSortedSliceSet[T]()
	s.Extend(seq)

	return s
}

func (s *SortedSliceSet[T]) search(element T) (int, bool) {
	return slices.BinarySearchFunc(s.items, element, sortable.Compare[T])
}

// Len returns the number of elements.
func (s *SortedSliceSet[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set has no elements.
func (s *SortedSliceSet[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Cap returns the capacity of the backing slice.
func (s *SortedSliceSet[T]) Cap() int {
	return cap(s.items)
}

// Reserve makes room for at least n more elements without reallocating.
func (s *SortedSliceSet[T]) Reserve(n int) {
	s.items = slices.Grow(s.items, n)
}

// ShrinkToFit drops unused capacity.
func (s *SortedSliceSet[T]) ShrinkToFit() {
	s.items = slices.Clip(s.items)
}

// Clear removes every element and keeps the capacity.
func (s *SortedSliceSet[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Truncate keeps the n smallest elements. It does nothing if n >= Len().
func (s *SortedSliceSet[T]) Truncate(n int) {
	if n < len(s.items) {
		clear(s.items[n:])
		s.items = s.items[:n]
	}
}

// Contains reports whether element is in the set. O(log n).
func (s *SortedSliceSet[T]) Contains(element T) bool {
	_, found := s.search(element)

	return found
}

// Get returns the stored element equal to element. O(log n).
func (s *SortedSliceSet[T]) Get(element T) (T, bool) {
	if i, found := s.search(element); found {
		return s.items[i], true
	}

	var zero T

	return zero, false
}

// IndexOf returns the position of element, or the position it would be
// inserted at together with false.
func (s *SortedSliceSet[T]) IndexOf(element T) (int, bool) {
	return s.search(element)
}

// At returns the element at index i in ascending order. It panics if i is out of range.
func (s *SortedSliceSet[T]) At(i int) T {
	return s.items[i]
}

// MustGet returns the stored element equal to element. It panics with an
// error wrapping ErrNotFound if there is none.
func (s *SortedSliceSet[T]) MustGet(element T) T {
	found, ok := s.Get(element)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrNotFound, element))
	}

	return found
}

// Min returns the smallest element.
func (s *SortedSliceSet[T]) Min() (T, bool) {
	if len(s.items) == 0 {
		var zero T

		return zero, false
	}

	return s.items[0], true
}

// Max returns the largest element.
func (s *SortedSliceSet[T]) Max() (T, bool) {
	if len(s.items) == 0 {
		var zero T

		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Insert adds element. When an equal element is present it is overwritten in
// place, O(log n), and the old element is returned. Otherwise the element is
// inserted at its slot, shifting the tail, O(n).
func (s *SortedSliceSet[T]) Insert(element T) (old T, replaced bool) {
	i, found := s.search(element)
	if found {
		old, s.items[i] = s.items[i], element

		return old, true
	}

	s.items = slices.Insert(s.items, i, element)

	return old, false
}

// Remove deletes the element equal to element, shifting the tail, O(n).
func (s *SortedSliceSet[T]) Remove(element T) (removed T, found bool) {
	i, found := s.search(element)
	if !found {
		return removed, false
	}

	removed = s.items[i]
	s.items = slices.Delete(s.items, i, i+1)

	return removed, true
}

// Extend inserts every element of seq.
func (s *SortedSliceSet[T]) Extend(seq iter.Seq[T]) {
	for element := range seq {
		s.Insert(element)
	}
}

// Retain keeps only the elements for which keep returns true, in one forward pass.
func (s *SortedSliceSet[T]) Retain(keep func(T) bool) {
	s.items = slices.DeleteFunc(s.items, func(element T) bool {
		return !keep(element)
	})
}

// Append moves every element of other onto the end of s and leaves other
// empty. It is a raw splice, not a merge: the caller must guarantee that
// every element of other is greater than every element of s, or the set
// stops being sorted (Validate reports it). Use Union to merge arbitrary sets.
func (s *SortedSliceSet[T]) Append(other *SortedSliceSet[T]) {
	s.items = append(s.items, other.items...)
	other.Clear()
}

// SplitOff removes the elements at index at and above and returns them as a
// new set. It panics if at > Len().
func (s *SortedSliceSet[T]) SplitOff(at int) *SortedSliceSet[T] {
	assert.True(at >= 0 && at <= len(s.items), "split index %d out of range [0, %d]", at, len(s.items))

	tail := slices.Clone(s.items[at:])
	s.Truncate(at)

	return &SortedSliceSet[T]{items: tail}
}

// Seq ranges over the elements in ascending order.
func (s *SortedSliceSet[T]) Seq() iter.Seq[T] {
	return slices.Values(s.items)
}

// Backward ranges over the elements in descending order.
func (s *SortedSliceSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Entries returns a copy of the elements in ascending order.
// The result is never nil.
func (s *SortedSliceSet[T]) Entries() []T {
	return append(make([]T, 0, len(s.items)), s.items...)
}

// Clone returns a shallow copy of the set.
func (s *SortedSliceSet[T]) Clone() *SortedSliceSet[T] {
	return &SortedSliceSet[T]{items: slices.Clone(s.items)}
}

// Equal reports whether both sets hold equal elements.
func (s *SortedSliceSet[T]) Equal(other *SortedSliceSet[T]) bool {
	return slices.EqualFunc(s.items, other.items, func(a, b T) bool {
		return a.Equals(b)
	})
}

// Validate returns ErrUnsorted if the elements are not strictly ascending.
func (s *SortedSliceSet[T]) Validate() error {
	if i := compare.FirstUnordered(s.items, sortable.Compare[T]); i >= 0 {
		return fmt.Errorf("%w: element %d (%v) does not follow %v", ErrUnsorted, i, s.items[i], s.items[i-1])
	}

	return nil
}

// Union returns a new set with the elements of s and other. The left copy
// wins for equal elements. Both s and other are left empty.
func (s *SortedSliceSet[T]) Union(other *SortedSliceSet[T]) *SortedSliceSet[T] {
	return s.consume(other, setops.Union[T], len(s.items)+len(other.items))
}

// Intersection returns a new set with the elements present in both s and
// other. Both s and other are left empty.
func (s *SortedSliceSet[T]) Intersection(other *SortedSliceSet[T]) *SortedSliceSet[T] {
	return s.consume(other, setops.Intersection[T], min(len(s.items), len(other.items)))
}

// Difference returns a new set with the elements of s that are not in other.
// Both s and other are left empty.
func (s *SortedSliceSet[T]) Difference(other *SortedSliceSet[T]) *SortedSliceSet[T] {
	return s.consume(other, setops.Difference[T], len(s.items))
}

// SymmetricDifference returns a new set with the elements present in exactly
// one of s and other. Both s and other are left empty.
func (s *SortedSliceSet[T]) SymmetricDifference(other *SortedSliceSet[T]) *SortedSliceSet[T] {
	return s.consume(other, setops.SymmetricDifference[T], len(s.items)+len(other.items))
}

type joinFunc[T any] func(a, b iter.Seq[T], cmp compare.Func[T]) iter.Seq[T]

func (s *SortedSliceSet[T]) consume(other *SortedSliceSet[T], join joinFunc[T], capacity int) *SortedSliceSet[T] {
	out := setops.Collect(join(s.Seq(), other.Seq(), sortable.Compare[T]), capacity)

	s.Clear()
	other.Clear()

	return &SortedSliceSet[T]{items: out}
}

// UnionIter returns a lazy union that leaves both operands untouched.
func (s *SortedSliceSet[T]) UnionIter(other setops.Ordered[T]) *setops.Iterator[T] {
	return UnionOf[T](s, other)
}

// IntersectionIter returns a lazy intersection that leaves both operands untouched.
func (s *SortedSliceSet[T]) IntersectionIter(other setops.Ordered[T]) *setops.Iterator[T] {
	return IntersectionOf[T](s, other)
}

// DifferenceIter returns a lazy s - other that leaves both operands untouched.
func (s *SortedSliceSet[T]) DifferenceIter(other setops.Ordered[T]) *setops.Iterator[T] {
	return DifferenceOf[T](s, other)
}

// SymmetricDifferenceIter returns a lazy symmetric difference that leaves
// both operands untouched.
func (s *SortedSliceSet[T]) SymmetricDifferenceIter(other setops.Ordered[T]) *setops.Iterator[T] {
	return SymmetricDifferenceOf[T](s, other)
}

// IsDisjoint reports whether s and other share no element.
func (s *SortedSliceSet[T]) IsDisjoint(other setops.Ordered[T]) bool {
	return setops.IsDisjoint(s.Seq(), other.Seq(), sortable.Compare[T])
}

// IsSubset reports whether every element of s is in other.
func (s *SortedSliceSet[T]) IsSubset(other setops.Ordered[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	return setops.IsSubset(s.Seq(), other.Seq(), sortable.Compare[T])
}

// IsSuperset reports whether every element of other is in s.
func (s *SortedSliceSet[T]) IsSuperset(other setops.Ordered[T]) bool {
	if other.Len() > s.Len() {
		return false
	}

	return setops.IsSubset(other.Seq(), s.Seq(), sortable.Compare[T])
}
