package sortable

import (
	"hash"

	"github.com/amp-labs/amp-collections/hashing"
)

// Byte is a sortable wrapper for byte.
type Byte byte

var (
	_ Sortable[Byte]   = Byte(0)
	_ hashing.Hashable = Byte(0)
)

// Equals returns true if both bytes have the same value.
func (b Byte) Equals(other Byte) bool {
	return b == other
}

// LessThan returns true if b is numerically less than other.
func (b Byte) LessThan(other Byte) bool {
	return b < other
}

// UpdateHash writes the single byte.
func (b Byte) UpdateHash(h hash.Hash) error {
	return hashing.Write(h, byte(b))
}

// Rune is a sortable wrapper for rune, ordered by code point. It is the
// natural key for character counting:
//
//	counts := maps.NewSortedSliceMap[sortable.Rune, int]()
//	for _, c := range "a short treatise on fungi" {
//	    counts.UpdateInPlace(sortable.Rune(c), 0, func(n *int) { *n++ })
//	}
type Rune rune

var (
	_ Sortable[Rune]   = Rune(0)
	_ hashing.Hashable = Rune(0)
)

func (r Rune) Equals(other Rune) bool {
	return r == other
}

func (r Rune) LessThan(other Rune) bool {
	return r < other
}

func (r Rune) UpdateHash(h hash.Hash) error {
	return hashing.Write(h, int32(r))
}

// String renders the rune as its character, which keeps container dumps readable.
func (r Rune) String() string {
	return string(rune(r))
}
