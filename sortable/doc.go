// Package sortable defines the total-order key contract used by the sorted
// containers in this module and provides ready-to-use key types.
//
// A key type implements [Sortable]: Equals from
// [github.com/amp-labs/amp-collections/compare.Comparable] plus LessThan.
// LessThan must be a strict total order (irreflexive, antisymmetric,
// transitive) and must agree with Equals: exactly one of a.LessThan(b),
// a.Equals(b), b.LessThan(a) holds. The sorted containers treat keys that
// compare equal as the same key.
//
// Every key type in this package also implements
// [github.com/amp-labs/amp-collections/hashing.Hashable], so containers of
// them can be fingerprinted.
//
//	m := maps.NewSortedSliceMap[sortable.String, int]()
//	m.Insert("b", 2)
//	m.Insert("a", 1)
//	// m.String() == "{a: 1, b: 2}"
//
// To write a custom key type, implement both methods:
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(o Version) bool { return v == o }
//
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
package sortable
