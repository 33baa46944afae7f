package set

import (
	"fmt"
	"hash"
	"iter"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-collections/hashing"
	"gopkg.in/yaml.v3"
)

func format[T any](seq iter.Seq[T]) string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true

	for element := range seq {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v", element)
	}

	sb.WriteByte('}')

	return sb.String()
}

func logValue[T any](n int, seq iter.Seq[T]) slog.Value {
	items := make([]T, 0, n)
	for element := range seq {
		items = append(items, element)
	}

	return slog.GroupValue(
		slog.Int("len", n),
		slog.Any("elements", items),
	)
}

func updateHash[T any](h hash.Hash, n int, seq iter.Seq[T]) error {
	if err := hashing.WriteLen(h, n); err != nil {
		return err
	}

	for element := range seq {
		if err := hashing.Write(h, element); err != nil {
			return err
		}
	}

	return nil
}

func decode[T any](node *yaml.Node, s Set[T]) error {
	var elements []T

	if err := node.Decode(&elements); err != nil {
		return fmt.Errorf("decoding set: %w", err)
	}

	s.Clear()

	for _, element := range elements {
		s.Insert(element)
	}

	return nil
}

// String renders the set as {e1, e2, ...} in ascending order.
func (s *SortedSliceSet[T]) String() string {
	return format(s.Seq())
}

// LogValue implements slog.LogValuer.
func (s *SortedSliceSet[T]) LogValue() slog.Value {
	return logValue(s.Len(), s.Seq())
}

// UpdateHash writes the length and then every element in ascending order,
// so equal sets hash equally.
func (s *SortedSliceSet[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, s.Len(), s.Seq())
}

// MarshalYAML encodes the set as an ascending sequence.
func (s *SortedSliceSet[T]) MarshalYAML() (any, error) {
	return s.Entries(), nil
}

// UnmarshalYAML decodes a sequence in any order. Duplicates collapse.
func (s *SortedSliceSet[T]) UnmarshalYAML(node *yaml.Node) error {
	return decode[T](node, s)
}

// String renders the set as {e1, e2, ...} in ascending order.
func (s *BTreeSet[T]) String() string {
	return format(s.Seq())
}

// LogValue implements slog.LogValuer.
func (s *BTreeSet[T]) LogValue() slog.Value {
	return logValue(s.Len(), s.Seq())
}

// UpdateHash writes the length and then every element in ascending order.
// A BTreeSet and a SortedSliceSet with equal elements hash equally.
func (s *BTreeSet[T]) UpdateHash(h hash.Hash) error {
	return updateHash(h, s.Len(), s.Seq())
}

// MarshalYAML encodes the set as an ascending sequence.
func (s *BTreeSet[T]) MarshalYAML() (any, error) {
	elements := make([]T, 0, s.Len())
	for element := range s.Seq() {
		elements = append(elements, element)
	}

	return elements, nil
}

// UnmarshalYAML decodes a sequence in any order. Duplicates collapse.
func (s *BTreeSet[T]) UnmarshalYAML(node *yaml.Node) error {
	if s.tree == nil {
		*s = *NewBTreeSet[T]()
	}

	return decode[T](node, s)
}
