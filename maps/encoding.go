package maps

import (
	"errors"
	"fmt"
	"hash"
	"iter"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-collections/hashing"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when decoding a map from a YAML node that is not a mapping.
var ErrNotMapping = errors.New("yaml node is not a mapping")

func format[K any, V any](seq iter.Seq2[K, V]) string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true

	for key, value := range seq {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v: %v", key, value)
	}

	sb.WriteByte('}')

	return sb.String()
}

// logValue renders one attribute per entry, keyed by the formatted key.
func logValue[K any, V any](n int, seq iter.Seq2[K, V]) slog.Value {
	attrs := make([]slog.Attr, 0, n)
	for key, value := range seq {
		attrs = append(attrs, slog.Any(fmt.Sprint(key), value))
	}

	return slog.GroupValue(attrs...)
}

func updateHash[K any, V any](h hash.Hash, n int, seq iter.Seq2[K, V]) error {
	if err := hashing.WriteLen(h, n); err != nil {
		return err
	}

	for key, value := range seq {
		if err := hashing.Write(h, key); err != nil {
			return err
		}

		if err := hashing.Write(h, value); err != nil {
			return err
		}
	}

	return nil
}

func encode[K any, V any](seq iter.Seq2[K, V]) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, value := range seq {
		var keyNode, valueNode yaml.Node

		if err := keyNode.Encode(key); err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", key, err)
		}

		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("encoding value of %v: %w", key, err)
		}

		node.Content = append(node.Content, &keyNode, &valueNode)
	}

	return node, nil
}

// decode reads every pair before touching m, so a failed decode leaves m as it was.
func decode[K any, V any](node *yaml.Node, m Map[K, V]) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d", ErrNotMapping, node.Line)
	}

	entries := make([]Entry[K, V], 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var entry Entry[K, V]

		if err := node.Content[i].Decode(&entry.Key); err != nil {
			return fmt.Errorf("decoding key: %w", err)
		}

		if err := node.Content[i+1].Decode(&entry.Value); err != nil {
			return fmt.Errorf("decoding value of %v: %w", entry.Key, err)
		}

		entries = append(entries, entry)
	}

	m.Clear()

	for _, entry := range entries {
		m.Insert(entry.Key, entry.Value)
	}

	return nil
}

// String renders the map as {k1: v1, k2: v2, ...} in ascending key order.
func (m *SortedSliceMap[K, V]) String() string {
	return format(m.Seq())
}

// LogValue implements slog.LogValuer as a group with one attribute per entry.
func (m *SortedSliceMap[K, V]) LogValue() slog.Value {
	return logValue(m.Len(), m.Seq())
}

// UpdateHash writes the length and then every key and value in ascending
// key order, so equal maps hash equally.
func (m *SortedSliceMap[K, V]) UpdateHash(h hash.Hash) error {
	return updateHash(h, m.Len(), m.Seq())
}

// MarshalYAML encodes the map as a mapping in ascending key order.
func (m *SortedSliceMap[K, V]) MarshalYAML() (any, error) {
	return encode(m.Seq())
}

// UnmarshalYAML decodes a mapping in any key order. For duplicate keys the
// last one wins.
func (m *SortedSliceMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	return decode[K, V](node, m)
}

// String renders the map as {k1: v1, k2: v2, ...} in ascending key order.
func (m *BTreeMap[K, V]) String() string {
	return format(m.Seq())
}

// LogValue implements slog.LogValuer as a group with one attribute per entry.
func (m *BTreeMap[K, V]) LogValue() slog.Value {
	return logValue(m.Len(), m.Seq())
}

// UpdateHash writes the length and then every key and value in ascending key
// order. A BTreeMap and a SortedSliceMap with equal contents hash equally.
func (m *BTreeMap[K, V]) UpdateHash(h hash.Hash) error {
	return updateHash(h, m.Len(), m.Seq())
}

// MarshalYAML encodes the map as a mapping in ascending key order.
func (m *BTreeMap[K, V]) MarshalYAML() (any, error) {
	return encode(m.Seq())
}

// UnmarshalYAML decodes a mapping in any key order. For duplicate keys the
// last one wins.
func (m *BTreeMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if m.tree == nil {
		*m = *NewBTreeMap[K, V]()
	}

	return decode[K, V](node, m)
}
