package optional

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	t.Run("some holds its value", func(t *testing.T) {
		t.Parallel()

		o := Some(42)
		value, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, 42, value)
		assert.True(t, o.NonEmpty())
		assert.False(t, o.Empty())
	})

	t.Run("some of the zero value is still present", func(t *testing.T) {
		t.Parallel()

		o := Some(0)
		assert.True(t, o.NonEmpty())
		assert.Equal(t, 0, o.GetOrElse(7))
	})

	t.Run("none is empty", func(t *testing.T) {
		t.Parallel()

		o := None[string]()
		_, ok := o.Get()
		assert.False(t, ok)
		assert.True(t, o.Empty())
	})

	t.Run("zero value is none", func(t *testing.T) {
		t.Parallel()

		var o Value[int]
		assert.True(t, o.Empty())
	})
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("x"), Of("x", true))
	assert.Equal(t, None[string](), Of("x", false))
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrElse(2))
	assert.Equal(t, 2, None[int]().GetOrElse(2))

	calls := 0
	fallback := func() int {
		calls++

		return 9
	}

	assert.Equal(t, 1, Some(1).GetOrElseFunc(fallback))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 9, None[int]().GetOrElseFunc(fallback))
	assert.Equal(t, 1, calls)
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v", Some("v").GetOrPanic())
	assert.PanicsWithValue(t, "called GetOrPanic on None", func() {
		None[string]().GetOrPanic()
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3}, slices.Collect(Some(3).All()))
	assert.Empty(t, slices.Collect(None[int]().All()))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("12"), Map(Some(12), strconv.Itoa))
	assert.Equal(t, None[string](), Map(None[int](), strconv.Itoa))
}
