package intervaltree

import "github.com/ssargent/teardowntree/pkg/treecore"

// DeleteOverlap removes every entry whose interval overlaps query, sending
// them to sink in ascending (A, B) order (the order of the in-order walk
// that collects them), and returns the count removed.
//
// Collects the overlapping keys with a read-only, maxb-pruned walk, then
// removes each one through the exact-match Delete path, which already
// maintains maxb correctly. This trades a single interleaved pass for O(k*h)
// but keeps maxb bookkeeping provably in sync, the same trade-off
// pkg/rangetree.Tree.FilterRange makes relative to DeleteRange.
func (t *Tree[K, V]) DeleteOverlap(query Interval[K], sink treecore.Sink[Entry[K, V]]) int {
	if t.size == 0 {
		return 0
	}
	var keys []Interval[K]
	t.collectOverlapping(0, query, &keys)

	removed := 0
	for _, k := range keys {
		idx, ok := t.indexOf(k)
		if !ok {
			continue
		}
		v := t.deleteIdx(idx)
		sink.Consume(Entry[K, V]{Key: k, Val: v})
		removed++
	}
	return removed
}

// collectOverlapping appends every key under idx overlapping query to out.
func (t *Tree[K, V]) collectOverlapping(idx int, query Interval[K], out *[]Interval[K]) {
	if t.isNil(idx) {
		return
	}
	if t.maxbAt(idx) < query.A {
		// No interval in this subtree ends after query.A, so none can overlap.
		return
	}
	t.collectOverlapping(treecore.LeftIndex(idx), query, out)

	k := t.keyAt(idx)
	if k.Overlaps(query) {
		*out = append(*out, k)
	}

	// Right subtree holds keys with A' >= k.A; skip it only when query.B is
	// at or before k.A, unless k.A == query.A (the point-equal overlap case).
	if query.B > k.A || k.A == query.A {
		t.collectOverlapping(treecore.RightIndex(idx), query, out)
	}
}
