package intervaltree

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/ssargent/teardowntree/pkg/treecore"
)

// Entry is a single interval/value pair as stored in, or emitted from, a
// Tree.
type Entry[K cmp.Ordered, V any] struct {
	Key Interval[K]
	Val V
}

type cell[K cmp.Ordered, V any] struct {
	entry Entry[K, V]
	maxb  K
}

// Tree is a fixed-capacity, array-indexed interval tree: the same implicit
// BST layout as pkg/rangetree.Tree, ordered by (A, B), with each cell
// additionally carrying maxb(i) = max(B(i), maxb(left(i)), maxb(right(i)))
// so overlap queries can prune whole subtrees.
type Tree[K cmp.Ordered, V any] struct {
	cells    []cell[K, V]
	occupied []bool
	size     int
	height   int
	slotsMin *treecore.SlotStack
	slotsMax *treecore.SlotStack
}

// New builds a Tree from an unsorted batch of entries.
func New[K cmp.Ordered, V any](items []Entry[K, V]) *Tree[K, V] {
	sorted := make([]Entry[K, V], len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key.less(sorted[j].Key) })
	return WithSorted(sorted)
}

// WithSorted builds a Tree from a batch the caller asserts is already sorted
// ascending by (A, B). No verification is performed.
func WithSorted[K cmp.Ordered, V any](sorted []Entry[K, V]) *Tree[K, V] {
	n := len(sorted)
	t := &Tree[K, V]{
		cells:    make([]cell[K, V], n),
		occupied: make([]bool, n),
		size:     n,
	}
	t.height = buildRecurse(t, sorted, 0)
	t.slotsMin = treecore.NewSlotStack(t.height)
	t.slotsMax = treecore.NewSlotStack(t.height)
	return t
}

// WithNodes builds a Tree directly from a sparse, pre-laid-out implicit
// array: nodes[i] is the entry living at array position i, or nil for a
// vacant cell. The caller is responsible for the array already satisfying
// the BST and contiguous-ancestry invariants; this constructor computes
// size, height, and maxb bottom-up and wires up the slot stacks. Mirrors
// pkg/rangetree.WithNodes, for tests that need to pin an exact shape.
func WithNodes[K cmp.Ordered, V any](nodes []*Entry[K, V]) *Tree[K, V] {
	n := len(nodes)
	t := &Tree[K, V]{
		cells:    make([]cell[K, V], n),
		occupied: make([]bool, n),
	}
	for i, node := range nodes {
		if node != nil {
			t.cells[i] = cell[K, V]{entry: *node}
			t.occupied[i] = true
			t.size++
		}
	}
	t.height = t.calcHeightAndMaxb(0)
	t.slotsMin = treecore.NewSlotStack(t.height)
	t.slotsMax = treecore.NewSlotStack(t.height)
	return t
}

// calcHeightAndMaxb computes the subtree height rooted at idx and, on the
// way back up, fills in maxb for every occupied cell it visits.
func (t *Tree[K, V]) calcHeightAndMaxb(idx int) int {
	if t.isNil(idx) {
		return 0
	}
	lh := t.calcHeightAndMaxb(treecore.LeftIndex(idx))
	rh := t.calcHeightAndMaxb(treecore.RightIndex(idx))
	t.updateMaxbAt(idx)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

func buildRecurse[K cmp.Ordered, V any](t *Tree[K, V], sorted []Entry[K, V], idx int) int {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mid := treecore.BuildSelectRoot(n)
	lh := buildRecurse(t, sorted[:mid], treecore.LeftIndex(idx))
	rh := buildRecurse(t, sorted[mid+1:], treecore.RightIndex(idx))
	t.cells[idx] = cell[K, V]{entry: sorted[mid]}
	t.occupied[idx] = true
	t.updateMaxbAt(idx)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

func (t *Tree[K, V]) isNil(idx int) bool {
	return idx >= len(t.occupied) || !t.occupied[idx]
}

func (t *Tree[K, V]) hasLeft(idx int) bool  { return !t.isNil(treecore.LeftIndex(idx)) }
func (t *Tree[K, V]) hasRight(idx int) bool { return !t.isNil(treecore.RightIndex(idx)) }

func (t *Tree[K, V]) keyAt(idx int) Interval[K] { return t.cells[idx].entry.Key }
func (t *Tree[K, V]) maxbAt(idx int) K          { return t.cells[idx].maxb }

// updateMaxbAt recomputes maxb at idx from its own B bound and its
// children's current maxb, per applied/interval_tree.rs's update_maxb. It
// assumes both children (if any) already carry correct maxb values.
func (t *Tree[K, V]) updateMaxbAt(idx int) {
	if t.isNil(idx) {
		return
	}
	b := t.cells[idx].entry.Key.B
	if t.hasLeft(idx) {
		if lb := t.maxbAt(treecore.LeftIndex(idx)); lb > b {
			b = lb
		}
	}
	if t.hasRight(idx) {
		if rb := t.maxbAt(treecore.RightIndex(idx)); rb > b {
			b = rb
		}
	}
	t.cells[idx].maxb = b
}

func (t *Tree[K, V]) moveEntry(src, dst int) {
	t.cells[dst].entry = t.cells[src].entry
	t.occupied[dst] = true
	t.occupied[src] = false
}

func (t *Tree[K, V]) vacate(idx int) Entry[K, V] {
	e := t.cells[idx].entry
	t.occupied[idx] = false
	return e
}

func (t *Tree[K, V]) findMin(idx int) int {
	for {
		left := treecore.LeftIndex(idx)
		if t.isNil(left) {
			return idx
		}
		idx = left
	}
}

func (t *Tree[K, V]) findMax(idx int) int {
	for {
		right := treecore.RightIndex(idx)
		if t.isNil(right) {
			return idx
		}
		idx = right
	}
}

// FindMin returns the entry whose interval sorts lowest by (A, B), if any.
func (t *Tree[K, V]) FindMin() (Entry[K, V], bool) {
	if t.size == 0 {
		return Entry[K, V]{}, false
	}
	return t.cells[t.findMin(0)].entry, true
}

// FindMax returns the entry whose interval sorts highest by (A, B), if any.
func (t *Tree[K, V]) FindMax() (Entry[K, V], bool) {
	if t.size == 0 {
		return Entry[K, V]{}, false
	}
	return t.cells[t.findMax(0)].entry, true
}

// indexOf finds the exact interval key via BST descent using (A, B)
// ordering; it does not perform overlap search.
func (t *Tree[K, V]) indexOf(key Interval[K]) (int, bool) {
	idx := 0
	for !t.isNil(idx) {
		k := t.keyAt(idx)
		switch {
		case key.less(k):
			idx = treecore.LeftIndex(idx)
		case k.less(key):
			idx = treecore.RightIndex(idx)
		default:
			return idx, true
		}
	}
	return 0, false
}

// Find returns the value stored under the exact interval key, if present.
func (t *Tree[K, V]) Find(key Interval[K]) (V, bool) {
	idx, ok := t.indexOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.cells[idx].entry.Val, true
}

// Contains reports whether the exact interval key is present.
func (t *Tree[K, V]) Contains(key Interval[K]) bool {
	_, ok := t.indexOf(key)
	return ok
}

// Size returns the number of live entries.
func (t *Tree[K, V]) Size() int { return t.size }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

// Capacity returns the fixed array capacity backing the tree.
func (t *Tree[K, V]) Capacity() int { return len(t.cells) }

// Clear removes every entry, keeping the tree's capacity.
func (t *Tree[K, V]) Clear() {
	for i := range t.occupied {
		t.occupied[i] = false
	}
	t.size = 0
}

type treeError struct{ msg string }

func (e *treeError) Error() string { return e.msg }

// ErrCapacityMismatch is returned by Refill when capacities differ.
var ErrCapacityMismatch = &treeError{"intervaltree: refill requires matching capacity"}

// Refill restores t to be an exact copy of master via bulk array copy,
// mirroring pkg/rangetree.Tree.Refill.
func (t *Tree[K, V]) Refill(master *Tree[K, V]) error {
	if len(t.cells) != len(master.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrCapacityMismatch, len(t.cells), len(master.cells))
	}
	copy(t.cells, master.cells)
	copy(t.occupied, master.occupied)
	t.size = master.size
	t.slotsMin.Reset()
	t.slotsMax.Reset()
	return nil
}

// Clone returns an independent Tree holding the same entries and shape.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	clone := &Tree[K, V]{
		cells:    make([]cell[K, V], len(t.cells)),
		occupied: make([]bool, len(t.occupied)),
		size:     t.size,
		height:   t.height,
	}
	copy(clone.cells, t.cells)
	copy(clone.occupied, t.occupied)
	clone.slotsMin = treecore.NewSlotStack(clone.height)
	clone.slotsMax = treecore.NewSlotStack(clone.height)
	return clone
}

// String renders an ASCII tree diagram annotated with each node's maxb,
// following the same layout as pkg/rangetree.Tree.String.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[size=%d]\n", t.size)
	t.fmtSubtree(&b, 0, nil)
	return b.String()
}

func (t *Tree[K, V]) fmtSubtree(b *strings.Builder, idx int, ancestors []bool) {
	fmtBranch(b, ancestors)
	if t.isNil(idx) {
		b.WriteString("X\n")
		return
	}
	e := t.cells[idx].entry
	fmt.Fprintf(b, "[%v,%v) m=%v\n", e.Key.A, e.Key.B, t.cells[idx].maxb)
	if len(ancestors) > 0 && idx%2 == 0 {
		ancestors[len(ancestors)-1] = false
	}
	if t.hasLeft(idx) || t.hasRight(idx) {
		ancestors = append(ancestors, true)
		t.fmtSubtree(b, treecore.LeftIndex(idx), ancestors)
		t.fmtSubtree(b, treecore.RightIndex(idx), ancestors)
	}
}

func fmtBranch(b *strings.Builder, ancestors []bool) {
	for i, open := range ancestors {
		if i == len(ancestors)-1 {
			b.WriteString("|--")
			continue
		}
		if open {
			b.WriteString("|  ")
		} else {
			b.WriteString("   ")
		}
	}
}
