package rangetree

import "github.com/ssargent/teardowntree/pkg/treecore"

// QueryRange visits every entry with key in the half-open range [lo, hi) in
// ascending key order, calling visit on each, without removing anything.
// A read-only counterpart to DeleteRange, useful for inspecting a range
// before deciding whether to tear it down.
func (t *Tree[K, V]) QueryRange(lo, hi K, visit func(Entry[K, V])) {
	drv := rangeDriver[K]{lo: lo, hi: hi}
	t.queryRangeRec(0, drv, visit)
}

func (t *Tree[K, V]) queryRangeRec(idx int, drv rangeDriver[K], visit func(Entry[K, V])) {
	if t.isNil(idx) {
		return
	}
	dec := drv.Decide(t.keyAt(idx))
	if dec.Left {
		t.queryRangeRec(treecore.LeftIndex(idx), drv, visit)
	}
	if dec.Consume() {
		visit(t.cells[idx].entry)
	}
	if dec.Right {
		t.queryRangeRec(treecore.RightIndex(idx), drv, visit)
	}
}
