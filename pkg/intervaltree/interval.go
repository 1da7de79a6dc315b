package intervaltree

import "cmp"

// Interval is a half-open key range [A, B), used as the ordering key of a
// Tree. Ported from applied/interval.rs's Interval trait: the tree orders
// intervals lexicographically by (A, B), and Overlaps follows the trait's
// default implementation, which interprets an empty interval (A == B) as a
// single point.
type Interval[K cmp.Ordered] struct {
	A, B K
}

// Overlaps reports whether iv and other share any point, treating an
// interval with A == B as the single point A.
func (iv Interval[K]) Overlaps(other Interval[K]) bool {
	return iv.A < other.B && other.A < iv.B || iv.A == other.A
}

// less orders intervals by (A, B), matching applied/interval.rs's Ord impl
// for KeyInterval.
func (iv Interval[K]) less(other Interval[K]) bool {
	if iv.A != other.A {
		return iv.A < other.A
	}
	return iv.B < other.B
}

func (iv Interval[K]) equal(other Interval[K]) bool {
	return iv.A == other.A && iv.B == other.B
}
