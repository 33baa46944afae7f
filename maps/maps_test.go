package maps

import (
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backing[K interface {
	comparable
	sortable.Sortable[K]
}, V any] struct {
	name   string
	newMap func() Map[K, V]
}

func backings[K interface {
	comparable
	sortable.Sortable[K]
}, V any]() []backing[K, V] {
	return []backing[K, V]{
		{name: "sorted slice", newMap: func() Map[K, V] { return NewSortedSliceMap[K, V]() }},
		{name: "btree", newMap: func() Map[K, V] { return NewBTreeMapWithDegree[K, V](2) }},
		{name: "go map", newMap: func() Map[K, V] { return GoMap[K, V]{} }},
	}
}

func add(existing, incoming int) int { return existing + incoming }

func TestAssocDissoc(t *testing.T) {
	t.Parallel()

	for _, b := range backings[sortable.Int, int]() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			m := b.newMap()
			m = Assoc(m, sortable.Int(1), 10)
			m = Assoc(m, sortable.Int(2), 20)
			m = Dissoc(m, sortable.Int(1))
			m = Dissoc(m, sortable.Int(9))

			assert.Equal(t, map[sortable.Int]int{2: 20}, ToGoMap(m))

			lookup := Lookup(m)
			value, ok := lookup(2)
			assert.True(t, ok)
			assert.Equal(t, 20, value)

			m = Into(m, GoMap[sortable.Int, int]{3: 30, 2: 21}.Seq())
			assert.Equal(t, map[sortable.Int]int{2: 21, 3: 30}, ToGoMap(m))

			m = Empty(m)
			assert.Equal(t, 0, m.Len())
		})
	}
}

func TestMergeWithSelf(t *testing.T) {
	t.Parallel()

	for _, b := range backings[sortable.Int, int]() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			m := Into(b.newMap(), GoMap[sortable.Int, int]{0: 6, 1: 2}.Seq())
			same := FromGoMap(ToGoMap(m))

			m = Merge(m, same.Seq(), add)
			assert.Equal(t, map[sortable.Int]int{0: 12, 1: 4}, ToGoMap(m))

			MergeInPlace(m, same.Seq(), func(existing *int, incoming int) { *existing += incoming })
			assert.Equal(t, map[sortable.Int]int{0: 18, 1: 6}, ToGoMap(m))
		})
	}
}

func TestMergeWithOwnView(t *testing.T) {
	t.Parallel()

	expected := map[sortable.Int]int{}
	for i := range 50 {
		expected[sortable.Int(i)] = 2 * i
	}

	for _, b := range backings[sortable.Int, int]() {
		t.Run(b.name+"/functional", func(t *testing.T) {
			t.Parallel()

			m := b.newMap()
			for i := range 50 {
				m.Insert(sortable.Int(i), i)
			}

			m = Merge(m, m.Seq(), add)
			assert.Equal(t, expected, ToGoMap(m))
		})

		t.Run(b.name+"/in place", func(t *testing.T) {
			t.Parallel()

			m := b.newMap()
			for i := range 50 {
				m.Insert(sortable.Int(i), i)
			}

			MergeInPlace(m, m.Seq(), func(existing *int, incoming int) { *existing += incoming })
			assert.Equal(t, expected, ToGoMap(m))
		})
	}
}

func TestShrink(t *testing.T) {
	t.Parallel()

	m := NewSortedSliceMapWithCapacity[sortable.Int, int](64)
	m.Insert(1, 1)

	assert.Same(t, m, Shrink(m))
	assert.Equal(t, 1, m.Cap())

	for _, b := range backings[sortable.Int, int]() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			shrunk := Shrink(Assoc(b.newMap(), sortable.Int(1), 1))
			assert.Equal(t, map[sortable.Int]int{1: 1}, ToGoMap(shrunk))
		})
	}
}

func TestCharacterCount(t *testing.T) {
	t.Parallel()

	const text = "a short treatise on fungi"

	expected := map[sortable.Rune]int{
		' ': 4, 'a': 2, 'e': 2, 'f': 1, 'g': 1, 'h': 1, 'i': 2,
		'n': 2, 'o': 2, 'r': 2, 's': 2, 't': 3, 'u': 1,
	}

	for _, b := range backings[sortable.Rune, int]() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			functional := b.newMap()
			inPlace := b.newMap()

			for _, r := range text {
				functional = Update(functional, sortable.Rune(r), func(current optional.Value[int]) int {
					return current.GetOrElse(0) + 1
				})
				UpdateInPlace(inPlace, sortable.Rune(r), 0, func(n *int) { *n++ })
			}

			assert.Equal(t, expected, ToGoMap(functional))
			assert.Equal(t, expected, ToGoMap(inPlace))
		})
	}

	t.Run("rendered in key order", func(t *testing.T) {
		t.Parallel()

		m := NewSortedSliceMap[sortable.Rune, int]()
		for _, r := range text {
			m.UpdateInPlace(sortable.Rune(r), 0, func(n *int) { *n++ })
		}

		assert.Equal(t,
			"{ : 4, a: 2, e: 2, f: 1, g: 1, h: 1, i: 2, n: 2, o: 2, r: 2, s: 2, t: 3, u: 1}",
			m.String(),
		)
	})
}

func TestUpdateAll(t *testing.T) {
	t.Parallel()

	for _, b := range backings[sortable.Int, int]() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			m := Into(b.newMap(), GoMap[sortable.Int, int]{1: 1, 2: 2, 3: 3}.Seq())

			m = UpdateAll(m, func(k sortable.Int, v int) int { return v * 10 })
			assert.Equal(t, map[sortable.Int]int{1: 10, 2: 20, 3: 30}, ToGoMap(m))

			UpdateAllInPlace(m, func(k sortable.Int, v *int) { *v += int(k) })
			assert.Equal(t, map[sortable.Int]int{1: 11, 2: 22, 3: 33}, ToGoMap(m))
		})
	}
}

func TestNativeUpgrade(t *testing.T) {
	t.Parallel()

	m := NewSortedSliceMap[sortable.Int, int]()

	got := Update(m, sortable.Int(1), func(optional.Value[int]) int { return 1 })
	assert.Same(t, m, got)

	got = Merge(m, GoMap[sortable.Int, int]{1: 5}.Seq(), add)
	assert.Same(t, m, got)

	got = UpdateAll(m, func(_ sortable.Int, v int) int { return -v })
	assert.Same(t, m, got)
	assert.Equal(t, -6, m.MustGet(1))

	assert.Implements(t, (*Updater[*SortedSliceMap[sortable.Int, int], sortable.Int, int])(nil), m)
	assert.Implements(t, (*InPlaceUpdater[sortable.Int, int])(nil), m)
	assert.Implements(t, (*Merger[*SortedSliceMap[sortable.Int, int], sortable.Int, int])(nil), m)
	assert.Implements(t, (*InPlaceMerger[sortable.Int, int])(nil), m)
	assert.Implements(t, (*AllUpdater[*SortedSliceMap[sortable.Int, int], sortable.Int, int])(nil), m)
	assert.Implements(t, (*InPlaceAllUpdater[sortable.Int, int])(nil), m)

	// BTreeMap has no native updates and goes through the generic path.
	tree := NewBTreeMap[sortable.Int, int]()
	_, native := any(tree).(InPlaceUpdater[sortable.Int, int])
	assert.False(t, native)
	UpdateInPlace(tree, sortable.Int(1), 2, func(v *int) { *v *= 3 })
	assert.Equal(t, map[sortable.Int]int{1: 6}, ToGoMap[sortable.Int, int](tree))
}

func TestFallbackUpdatePanicLeavesMapUnchanged(t *testing.T) {
	t.Parallel()

	for _, b := range backings[sortable.Int, int]() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			m := Assoc(b.newMap(), sortable.Int(1), 1)

			assert.Panics(t, func() {
				Update(m, sortable.Int(2), func(optional.Value[int]) int { panic("boom") })
			})
			assert.Equal(t, map[sortable.Int]int{1: 1}, ToGoMap(m))
		})
	}
}

// TestUpdateEquivalence checks that the functional and in-place forms of
// every operation leave equal contents on every backing, and that the
// backings agree with each other.
func TestUpdateEquivalence(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(42, 7)) //nolint:gosec

	type op struct {
		key   sortable.Int
		delta int
	}

	ops := make([]op, 500)
	for i := range ops {
		ops[i] = op{key: sortable.Int(r.IntN(40)), delta: r.IntN(100) - 50}
	}

	other := GoMap[sortable.Int, int]{}
	for range 30 {
		other[sortable.Int(r.IntN(60))] = r.IntN(10)
	}

	var reference map[sortable.Int]int

	for _, b := range backings[sortable.Int, int]() {
		functional := b.newMap()
		inPlace := b.newMap()

		for _, o := range ops {
			functional = Update(functional, o.key, func(current optional.Value[int]) int {
				return current.GetOrElse(100) + o.delta
			})
			UpdateInPlace(inPlace, o.key, 100, func(v *int) { *v += o.delta })
		}

		require.Equal(t, ToGoMap(functional), ToGoMap(inPlace), b.name)

		functional = Merge(functional, other.Seq(), add)
		MergeInPlace(inPlace, other.Seq(), func(existing *int, incoming int) { *existing += incoming })

		require.Equal(t, ToGoMap(functional), ToGoMap(inPlace), b.name)

		if reference == nil {
			reference = ToGoMap(functional)
		} else {
			require.Equal(t, reference, ToGoMap(functional), b.name)
		}
	}
}
