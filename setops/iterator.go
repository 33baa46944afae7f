package setops

import (
	"iter"

	"github.com/amp-labs/amp-collections/compare"
)

// Ordered is an ascending collection with a known length. Both sorted set
// backings in this module satisfy it.
type Ordered[T any] interface {
	Seq() iter.Seq[T]
	Len() int
}

// Iterator is a lazy, read-only merge-join over two Ordered operands.
//
// Building an Iterator does no work; items are produced while ranging over
// Seq. Each range starts a fresh traversal from the operands' smallest items.
// Operands must not be mutated while an Iterator over them is in use.
type Iterator[T any] struct {
	seq   iter.Seq[T]
	lower int
	upper int
}

// UnionOf returns a lazy union of a and b.
// Its size is at least max(len(a), len(b)) and at most len(a)+len(b).
func UnionOf[T any](a, b Ordered[T], cmp compare.Func[T]) *Iterator[T] {
	la, lb := a.Len(), b.Len()

	return &Iterator[T]{
		seq:   Union(a.Seq(), b.Seq(), cmp),
		lower: max(la, lb),
		upper: la + lb,
	}
}

// IntersectionOf returns a lazy intersection of a and b.
// Its size is at most min(len(a), len(b)).
func IntersectionOf[T any](a, b Ordered[T], cmp compare.Func[T]) *Iterator[T] {
	return &Iterator[T]{
		seq:   Intersection(a.Seq(), b.Seq(), cmp),
		lower: 0,
		upper: min(a.Len(), b.Len()),
	}
}

// DifferenceOf returns a lazy a - b.
// Its size is at least len(a)-len(b) and at most len(a).
func DifferenceOf[T any](a, b Ordered[T], cmp compare.Func[T]) *Iterator[T] {
	la, lb := a.Len(), b.Len()

	return &Iterator[T]{
		seq:   Difference(a.Seq(), b.Seq(), cmp),
		lower: max(0, la-lb),
		upper: la,
	}
}

// SymmetricDifferenceOf returns a lazy symmetric difference of a and b.
// Its size is at least |len(a)-len(b)| and at most len(a)+len(b).
func SymmetricDifferenceOf[T any](a, b Ordered[T], cmp compare.Func[T]) *Iterator[T] {
	la, lb := a.Len(), b.Len()

	return &Iterator[T]{
		seq:   SymmetricDifference(a.Seq(), b.Seq(), cmp),
		lower: max(la-lb, lb-la),
		upper: la + lb,
	}
}

// Seq returns the ascending items of the result.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return it.seq
}

// SizeHint returns bounds on the number of items Seq yields.
func (it *Iterator[T]) SizeHint() (lower, upper int) {
	return it.lower, it.upper
}

// Collect drains the iterator into a new slice sized by the upper bound.
func (it *Iterator[T]) Collect() []T {
	return Collect(it.seq, it.upper)
}

// Collect appends every item of seq to a new slice with the given capacity hint.
func Collect[T any](seq iter.Seq[T], capacity int) []T {
	out := make([]T, 0, capacity)

	for item := range seq {
		out = append(out, item)
	}

	return out
}
