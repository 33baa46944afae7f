package sortable

import (
	"hash"

	"facette.io/natsort"
	"github.com/amp-labs/amp-collections/hashing"
)

// String is a sortable wrapper for string, ordered bytewise.
type String string

var (
	_ Sortable[String] = String("")
	_ hashing.Hashable = String("")
)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

func (s String) UpdateHash(h hash.Hash) error {
	return hashing.Write(h, string(s))
}

// NaturalString is a string ordered the way people read numbered names:
// "file2" sorts before "file10". Strings that natural ordering considers
// equivalent but that differ bytewise ("a01" and "a1") fall back to byte
// order, which keeps the order total.
type NaturalString string

var (
	_ Sortable[NaturalString] = NaturalString("")
	_ hashing.Hashable        = NaturalString("")
)

func (s NaturalString) Equals(other NaturalString) bool {
	return s == other
}

func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	less := natsort.Compare(string(s), string(other))
	greater := natsort.Compare(string(other), string(s))

	if less != greater {
		return less
	}

	return s < other
}

func (s NaturalString) UpdateHash(h hash.Hash) error {
	return hashing.Write(h, string(s))
}
