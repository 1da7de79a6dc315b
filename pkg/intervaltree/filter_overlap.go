package intervaltree

import "github.com/ssargent/teardowntree/pkg/treecore"

// FilterOverlap removes every entry overlapping query for which accept
// returns true, sending removed entries to sink, and returns the count
// removed. Entries rejected by accept remain in the tree. Same collect-then-
// delete structure and complexity trade-off as DeleteOverlap; see its
// doc comment.
func (t *Tree[K, V]) FilterOverlap(query Interval[K], accept func(Interval[K]) bool, sink treecore.Sink[Entry[K, V]]) int {
	if t.size == 0 {
		return 0
	}
	var keys []Interval[K]
	t.collectOverlapping(0, query, &keys)

	removed := 0
	for _, k := range keys {
		if !accept(k) {
			continue
		}
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
