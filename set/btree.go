package set

import (
	"iter"

	"github.com/amp-labs/amp-collections/setops"
	"github.com/amp-labs/amp-collections/sortable"
	"github.com/google/btree"
)

// DefaultBTreeDegree is the node degree used by NewBTreeSet.
const DefaultBTreeDegree = 32

// BTreeSet is an ordered set stored in a B-tree. Insert and Remove are
// O(log n) regardless of where the element lands, which makes it the better
// choice over SortedSliceSet once sets grow large and are mutated at random
// positions.
//
// Use NewBTreeSet; the zero value is not usable.
type BTreeSet[T sortable.Sortable[T]] struct {
	tree *btree.BTreeG[T]
}

// NewBTreeSet returns an empty set with the default degree.
func NewBTreeSet[T sortable.Sortable[T]]() *BTreeSet[T] {
	return NewBTreeSetWithDegree[T](DefaultBTreeDegree)
}

// NewBTreeSetWithDegree returns an empty set whose nodes hold up to
// 2*degree-1 elements.
func NewBTreeSetWithDegree[T sortable.Sortable[T]](degree int) *BTreeSet[T] {
	return &BTreeSet[T]{tree: btree.NewG(degree, less[T])}
}

// BTreeSetOf returns a B-tree set holding the given elements.
func BTreeSetOf[T sortable.Sortable[T]](elements ...T) *BTreeSet[T] {
	s := NewBTreeSet[T]()

	for _, element := range elements {
		s.Insert(element)
	}

	return s
}

func less[T sortable.Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}

// Len returns the number of elements.
func (s *BTreeSet[T]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *BTreeSet[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

// Clear removes every element.
func (s *BTreeSet[T]) Clear() {
	s.tree.Clear(false)
}

// Contains reports whether element is in the set.
func (s *BTreeSet[T]) Contains(element T) bool {
	return s.tree.Has(element)
}

// Get returns the stored element equal to element.
func (s *BTreeSet[T]) Get(element T) (T, bool) {
	return s.tree.Get(element)
}

// Insert adds element, replacing and returning an equal element if present.
func (s *BTreeSet[T]) Insert(element T) (old T, replaced bool) {
	return s.tree.ReplaceOrInsert(element)
}

// Remove deletes the element equal to element.
func (s *BTreeSet[T]) Remove(element T) (removed T, found bool) {
	return s.tree.Delete(element)
}

// Min returns the smallest element.
func (s *BTreeSet[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest element.
func (s *BTreeSet[T]) Max() (T, bool) {
	return s.tree.Max()
}

// Seq ranges over the elements in ascending order.
func (s *BTreeSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(yield)
	}
}

// Backward ranges over the elements in descending order.
func (s *BTreeSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Descend(yield)
	}
}

// Clone returns a copy of the set. The copy shares nodes with s lazily
// (copy-on-write), so cloning is O(1).
func (s *BTreeSet[T]) Clone() *BTreeSet[T] {
	return &BTreeSet[T]{tree: s.tree.Clone()}
}

// Retain keeps only the elements for which keep returns true.
func (s *BTreeSet[T]) Retain(keep func(T) bool) {
	var drop []T

	s.tree.Ascend(func(element T) bool {
		if !keep(element) {
			drop = append(drop, element)
		}

		return true
	})

	for _, element := range drop {
		s.tree.Delete(element)
	}
}

// IsDisjoint reports whether s and other share no element.
func (s *BTreeSet[T]) IsDisjoint(other setops.Ordered[T]) bool {
	return setops.IsDisjoint(s.Seq(), other.Seq(), sortable.Compare[T])
}

// IsSubset reports whether every element of s is in other.
func (s *BTreeSet[T]) IsSubset(other setops.Ordered[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	return setops.IsSubset(s.Seq(), other.Seq(), sortable.Compare[T])
}

// IsSuperset reports whether every element of other is in s.
func (s *BTreeSet[T]) IsSuperset(other setops.Ordered[T]) bool {
	if other.Len() > s.Len() {
		return false
	}

	return setops.IsSubset(other.Seq(), s.Seq(), sortable.Compare[T])
}
