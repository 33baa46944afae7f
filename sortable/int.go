package sortable

import (
	"hash"

	"github.com/amp-labs/amp-collections/hashing"
)

// Int is a sortable wrapper for int.
//
//	s := set.NewSortedSliceSet[sortable.Int]()
//	s.Insert(5)
//	s.Insert(3)
//	// iterating yields 3, 5
type Int int

var (
	_ Sortable[Int]    = Int(0)
	_ hashing.Hashable = Int(0)
)

// Equals returns true if both values are numerically equal.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if i is numerically less than other.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// UpdateHash writes the integer in a fixed-width encoding.
func (i Int) UpdateHash(h hash.Hash) error {
	return hashing.Write(h, int(i))
}

// Int64 is a sortable wrapper for int64.
type Int64 int64

var (
	_ Sortable[Int64]  = Int64(0)
	_ hashing.Hashable = Int64(0)
)

func (i Int64) Equals(other Int64) bool {
	return i == other
}

func (i Int64) LessThan(other Int64) bool {
	return i < other
}

func (i Int64) UpdateHash(h hash.Hash) error {
	return hashing.Write(h, int64(i))
}
