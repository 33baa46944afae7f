// Package compare provides equality and ordering primitives shared by the
// containers in this module.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface provide their own Equals method that decides
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b.
//
// The set-algebra engine and the sorted containers take a Func rather than a
// method constraint, so any ascending sequence can be merge-joined as long as
// the caller can say how two of its items compare.
type Func[T any] func(a, b T) int

// Reverse returns a comparison that orders values the opposite way.
func (f Func[T]) Reverse() Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Less reports whether a sorts before b.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}

// FirstUnordered returns the index of the first item that does not sort
// strictly after its predecessor, or -1 when items is strictly ascending.
func FirstUnordered[T any](items []T, f Func[T]) int {
	for i := 1; i < len(items); i++ {
		if f(items[i-1], items[i]) >= 0 {
			return i
		}
	}

	return -1
}
