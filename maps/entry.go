package maps

import "fmt"

// Entry is a key-value pair. Sorted maps order entries by Key only.
//
// Example:
//
//	for _, entry := range m.Entries() {
//	    fmt.Printf("%v=%v\n", entry.Key, entry.Value)
//	}
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// String renders the entry as "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
