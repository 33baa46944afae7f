package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoMap(t *testing.T) {
	t.Parallel()

	t.Run("capability set", func(t *testing.T) {
		t.Parallel()

		m := GoMap[string, int]{}

		_, replaced := m.Insert("a", 1)
		assert.False(t, replaced)

		old, replaced := m.Insert("a", 2)
		assert.True(t, replaced)
		assert.Equal(t, 1, old)
		assert.Equal(t, 1, m.Len())

		value, ok := m.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, value)

		old, removed := m.Remove("a")
		assert.True(t, removed)
		assert.Equal(t, 2, old)

		_, removed = m.Remove("a")
		assert.False(t, removed)

		m.Insert("b", 1)
		m.Clear()
		assert.Equal(t, 0, m.Len())
	})

	t.Run("from go map shares storage", func(t *testing.T) {
		t.Parallel()

		native := map[string]int{"a": 1}
		m := FromGoMap(native)
		m.Insert("b", 2)

		assert.Equal(t, map[string]int{"a": 1, "b": 2}, native)
	})

	t.Run("to go map copies", func(t *testing.T) {
		t.Parallel()

		m := GoMap[string, int]{"a": 1}
		out := ToGoMap[string, int](m)
		out["b"] = 2

		assert.Equal(t, 1, m.Len())
		assert.Nil(t, ToGoMap[string, int](nil))
	})

	t.Run("protocol on plain strings", func(t *testing.T) {
		t.Parallel()

		counts := GoMap[string, int]{}
		for _, word := range []string{"x", "y", "x"} {
			UpdateInPlace(counts, word, 0, func(n *int) { *n++ })
		}

		assert.Equal(t, GoMap[string, int]{"x": 2, "y": 1}, counts)
	})
}
