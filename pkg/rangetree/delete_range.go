package rangetree

import (
	"cmp"

	"github.com/ssargent/teardowntree/pkg/treecore"
)

// rangeDriver decides whether a half-open range [lo, hi) extends left/right
// of a given key, with the degenerate lo==hi case preserved for point
// deletion.
type rangeDriver[K cmp.Ordered] struct {
	lo, hi K
}

func (d rangeDriver[K]) Decide(key K) treecore.RangeDecision {
	left := d.lo <= key
	right := key < d.hi || (d.lo == key && key == d.hi)
	return treecore.RangeDecision{Left: left, Right: right}
}

// DeleteRange removes every entry with key in the half-open range
// [lo, hi) (or the single point lo when lo == hi), sending them to sink in
// ascending key order, and returns the count removed. Runtime is O(k+h): k
// entries removed plus the tree's current height.
func (t *Tree[K, V]) DeleteRange(lo, hi K, sink treecore.Sink[Entry[K, V]]) int {
	before := t.size
	if t.size == 0 {
		return 0
	}
	drv := rangeDriver[K]{lo: lo, hi: hi}
	t.slotsMin.Reset()
	t.slotsMax.Reset()
	t.deleteRangeDescend(drv, sink, 0)
	// A slot pushed to hold a promotion can legitimately go unfilled when
	// the subtree it was counting on is itself consumed entirely by the
	// same range (deleting the whole tree, say): nothing is left anywhere
	// to promote, and the cell simply stays vacant. Reset regardless so
	// scratch state never leaks into the next call.
	t.slotsMin.Reset()
	t.slotsMax.Reset()
	return before - t.size
}

// deleteRangeDescend follows the unique path where the driver says purely
// left or purely right, until a nil or the split node (both true) is
// reached.
func (t *Tree[K, V]) deleteRangeDescend(drv rangeDriver[K], sink treecore.Sink[Entry[K, V]], idx int) {
	for {
		if t.isNil(idx) {
			return
		}
		dec := drv.Decide(t.keyAt(idx))
		switch {
		case dec.Left && dec.Right:
			t.deleteRangeSplit(drv, sink, idx)
			return
		case dec.Left:
			idx = treecore.LeftIndex(idx)
		default:
			idx = treecore.RightIndex(idx)
		}
	}
}

// deleteRangeSplit implements Phase B: r is taken out, its left subtree is
// searched for the lower boundary (filling slots_max if it finds nothing to
// promote), r is emitted, and its right subtree is searched for the upper
// boundary (filling slots_min only if the left side didn't already fill r).
func (t *Tree[K, V]) deleteRangeSplit(drv rangeDriver[K], sink treecore.Sink[Entry[K, V]], r int) {
	e := t.vacateNoSink(r)
	t.size--

	t.slotsMax.Push(r)
	t.deleteRangeMax(drv, sink, treecore.LeftIndex(r))
	filled := !t.isNil(r)
	if !filled {
		t.slotsMax.Pop()
	}

	sink.Consume(e)

	if !filled {
		t.slotsMin.Push(r)
	}
	t.deleteRangeMin(drv, sink, treecore.RightIndex(r))
}

// deleteRangeMin is Phase C's delete_range_min: called on a subtree all of
// whose keys already satisfy lo <= key (guaranteed by having descended
// right of the split), it searches for the hi boundary, deleting every key
// < hi, and fills slots_min from the leftmost surviving key it encounters.
func (t *Tree[K, V]) deleteRangeMin(drv rangeDriver[K], sink treecore.Sink[Entry[K, V]], idx int) {
	if t.isNil(idx) {
		return
	}
	dec := drv.Decide(t.keyAt(idx))
	if dec.Right {
		// idx and the whole left(idx) subtree lie inside the range; emit
		// the smaller, left-subtree keys first to keep sink order ascending.
		t.consumeSubtreeInOrder(treecore.LeftIndex(idx), sink)
		t.removeToSink(idx, sink)
		t.deleteRangeMin(drv, sink, treecore.RightIndex(idx))
		return
	}
	t.deleteRangeMin(drv, sink, treecore.LeftIndex(idx))
	if t.slotsMin.HasOpen() {
		dst := t.slotsMin.Fill()
		t.moveEntry(idx, dst)
		t.slotsMin.Push(idx)
		t.fillSlotsMin(treecore.RightIndex(idx))
	}
}

// deleteRangeMax mirrors deleteRangeMin, searching a subtree known to
// satisfy key < hi for the lo boundary, filling slots_max from the
// rightmost surviving key encountered.
func (t *Tree[K, V]) deleteRangeMax(drv rangeDriver[K], sink treecore.Sink[Entry[K, V]], idx int) {
	if t.isNil(idx) {
		return
	}
	dec := drv.Decide(t.keyAt(idx))
	if dec.Left {
		// idx and the whole right(idx) subtree lie inside the range.
		t.deleteRangeMax(drv, sink, treecore.LeftIndex(idx))
		t.removeToSink(idx, sink)
		t.consumeSubtreeInOrder(treecore.RightIndex(idx), sink)
		return
	}
	t.deleteRangeMax(drv, sink, treecore.RightIndex(idx))
	if t.slotsMax.HasOpen() {
		dst := t.slotsMax.Fill()
		t.moveEntry(idx, dst)
		t.slotsMax.Push(idx)
		t.fillSlotsMax(treecore.LeftIndex(idx))
	}
}

// fillSlotsMin is Phase D: it walks root's subtree in ascending (in-order)
// order, moving each entry encountered into the next open slots_min slot
// until none remain open.
func (t *Tree[K, V]) fillSlotsMin(root int) {
	if t.isNil(root) || !t.slotsMin.HasOpen() {
		return
	}
	t.fillSlotsMin(treecore.LeftIndex(root))
	if !t.slotsMin.HasOpen() {
		return
	}
	dst := t.slotsMin.Fill()
	t.moveEntry(root, dst)
	t.fillSlotsMin(treecore.RightIndex(root))
}

// fillSlotsMax is the mirror of fillSlotsMin, walking in descending
// (reverse in-order) order so the largest surviving keys fill slots_max
// first.
func (t *Tree[K, V]) fillSlotsMax(root int) {
	if t.isNil(root) || !t.slotsMax.HasOpen() {
		return
	}
	t.fillSlotsMax(treecore.RightIndex(root))
	if !t.slotsMax.HasOpen() {
		return
	}
	dst := t.slotsMax.Fill()
	t.moveEntry(root, dst)
	t.fillSlotsMax(treecore.LeftIndex(root))
}

// consumeSubtreeInOrder removes every entry in the subtree rooted at root,
// sending them to sink in ascending key order.
func (t *Tree[K, V]) consumeSubtreeInOrder(root int, sink treecore.Sink[Entry[K, V]]) {
	if t.isNil(root) {
		return
	}
	t.consumeSubtreeInOrder(treecore.LeftIndex(root), sink)
	t.removeToSink(root, sink)
	t.consumeSubtreeInOrder(treecore.RightIndex(root), sink)
}
