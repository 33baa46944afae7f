// Package setops implements union, intersection, difference and symmetric
// difference of two ascending sequences as a merge-join: two cursors advance
// over the inputs, their heads are compared, and each step emits or skips
// according to the operation.
//
// The engine only needs two strictly ascending iter.Seq values and a
// compare.Func that agrees with their order. It never materializes either
// input, so it works over any ordered backing: sorted slices, B-trees, or a
// plain iterator.
//
// Results are only meaningful when both inputs are strictly ascending under
// cmp. On ties the left operand's item is emitted.
package setops

import (
	"iter"

	"github.com/amp-labs/amp-collections/compare"
)

// rule says which heads a merge-join step emits. A side that emits its
// smaller head also drains that side once the other side is exhausted.
type rule struct {
	left  bool // emit a when a < b
	right bool // emit b when a > b
	both  bool // emit a when a == b
}

var (
	unionRule        = rule{left: true, right: true, both: true}
	intersectionRule = rule{both: true}
	differenceRule   = rule{left: true}
	symmetricRule    = rule{left: true, right: true}
)

// Union yields every item present in a or b, once, in ascending order.
func Union[T any](a, b iter.Seq[T], cmp compare.Func[T]) iter.Seq[T] {
	return join(a, b, cmp, unionRule)
}

// Intersection yields the items present in both a and b, in ascending order.
// It stops as soon as either side is exhausted.
func Intersection[T any](a, b iter.Seq[T], cmp compare.Func[T]) iter.Seq[T] {
	return join(a, b, cmp, intersectionRule)
}

// Difference yields the items of a that are not in b, in ascending order.
// It stops as soon as a is exhausted.
func Difference[T any](a, b iter.Seq[T], cmp compare.Func[T]) iter.Seq[T] {
	return join(a, b, cmp, differenceRule)
}

// SymmetricDifference yields the items present in exactly one of a and b,
// in ascending order.
func SymmetricDifference[T any](a, b iter.Seq[T], cmp compare.Func[T]) iter.Seq[T] {
	return join(a, b, cmp, symmetricRule)
}

func join[T any](a, b iter.Seq[T], cmp compare.Func[T], r rule) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()

		nextB, stopB := iter.Pull(b)
		defer stopB()

		x, okA := nextA()
		y, okB := nextB()

		for okA && okB {
			switch c := cmp(x, y); {
			case c < 0:
				if r.left && !yield(x) {
					return
				}

				x, okA = nextA()
			case c > 0:
				if r.right && !yield(y) {
					return
				}

				y, okB = nextB()
			default:
				if r.both && !yield(x) {
					return
				}

				x, okA = nextA()
				y, okB = nextB()
			}
		}

		if r.left {
			for ; okA; x, okA = nextA() {
				if !yield(x) {
					return
				}
			}
		}

		if r.right {
			for ; okB; y, okB = nextB() {
				if !yield(y) {
					return
				}
			}
		}
	}
}

// IsDisjoint reports whether a and b share no item.
func IsDisjoint[T any](a, b iter.Seq[T], cmp compare.Func[T]) bool {
	for range Intersection(a, b, cmp) {
		return false
	}

	return true
}

// IsSubset reports whether every item of a is also in b.
func IsSubset[T any](a, b iter.Seq[T], cmp compare.Func[T]) bool {
	for range Difference(a, b, cmp) {
		return false
	}

	return true
}
