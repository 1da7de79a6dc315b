package rangetree

import "github.com/ssargent/teardowntree/pkg/treecore"

// FilterRange removes every entry with key in the half-open range
// [lo, hi) for which accept returns true, sending removed entries to sink
// in ascending key order, and returns the count removed. Entries rejected
// by accept remain in the tree untouched: accept is evaluated once per
// candidate before removal, in ascending key order, and may hold internal
// state across calls within one FilterRange invocation.
//
// Unlike DeleteRange, FilterRange does not attempt the wholesale
// subtree-consumption fast path, since a rejected key inside an otherwise
// fully-in-range subtree must survive; it instead snapshots the matching
// keys up front and removes accepted ones individually via Delete. This
// trades DeleteRange's O(k+h) bound for O(k*h) when a predicate is involved.
func (t *Tree[K, V]) FilterRange(lo, hi K, accept func(K) bool, sink treecore.Sink[Entry[K, V]]) int {
	drv := rangeDriver[K]{lo: lo, hi: hi}
	var candidates []K
	t.collectKeysInRange(0, drv, &candidates)

	removed := 0
	for _, k := range candidates {
		if !accept(k) {
			continue
		}
		if v, ok := t.Delete(k); ok {
			sink.Consume(Entry[K, V]{Key: k, Val: v})
			removed++
		}
	}
	return removed
}

func (t *Tree[K, V]) collectKeysInRange(idx int, drv rangeDriver[K], out *[]K) {
	if t.isNil(idx) {
		return
	}
	dec := drv.Decide(t.keyAt(idx))
	if dec.Left {
		t.collectKeysInRange(treecore.LeftIndex(idx), drv, out)
	}
	if dec.Consume() {
		*out = append(*out, t.keyAt(idx))
	}
	if dec.Right {
		t.collectKeysInRange(treecore.RightIndex(idx), drv, out)
	}
}
