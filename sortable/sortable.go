package sortable

import (
	"iter"

	"github.com/amp-labs/amp-collections/compare"
)

// Sortable is a value with a strict total order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the three-way comparison induced by a Sortable type.
// It has the signature of a compare.Func, so it can be passed directly to the
// set-algebra engine and to the slices package.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}

// Func returns Compare as a compare.Func for T.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}

// Min returns the smaller of a and b, preferring a on ties.
func Min[T Sortable[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}

	return a
}

// Max returns the larger of a and b, preferring a on ties.
func Max[T Sortable[T]](a, b T) T {
	if a.LessThan(b) {
		return b
	}

	return a
}

// IsStrictlyAscending reports whether seq yields each value strictly after
// the previous one. Empty and single-element sequences are ascending.
func IsStrictlyAscending[T Sortable[T]](seq iter.Seq[T]) bool {
	var (
		prev    T
		started bool
	)

	for item := range seq {
		if started && !prev.LessThan(item) {
			return false
		}

		prev = item
		started = true
	}

	return true
}
