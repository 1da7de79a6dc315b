package rangetree

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/ssargent/teardowntree/pkg/treecore"
)

// Entry is a single key/value pair as stored in, or emitted from, a Tree.
type Entry[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

type cell[K cmp.Ordered, V any] struct {
	entry Entry[K, V]
}

// Tree is a fixed-capacity, array-indexed binary search tree supporting
// O(k+h) bulk range deletion. The zero value is not usable; construct one
// with New, WithSorted or WithNodes.
type Tree[K cmp.Ordered, V any] struct {
	cells    []cell[K, V]
	occupied []bool
	size     int
	height   int
	slotsMin *treecore.SlotStack
	slotsMax *treecore.SlotStack
}

// New builds a Tree from an unsorted batch of entries (duplicates
// permitted; ties broken by original position via a stable sort).
func New[K cmp.Ordered, V any](items []Entry[K, V]) *Tree[K, V] {
	sorted := make([]Entry[K, V], len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return WithSorted(sorted)
}

// WithSorted builds a Tree from a batch the caller asserts is already
// sorted by key ascending. No verification is performed; violating this
// contract produces a tree that silently breaks the BST invariant.
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
// the BST and contiguous-ancestry invariants already; this constructor only
// computes size and height and wires up the slot stacks. It exists for
// tests that assert against a known tree shape and for callers restoring a
// previously captured layout.
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
	t.height = calcHeight(t, 0)
	t.slotsMin = treecore.NewSlotStack(t.height)
	t.slotsMax = treecore.NewSlotStack(t.height)
	return t
}

func calcHeight[K cmp.Ordered, V any](t *Tree[K, V], idx int) int {
	if t.isNil(idx) {
		return 0
	}
	lh := calcHeight(t, treecore.LeftIndex(idx))
	rh := calcHeight(t, treecore.RightIndex(idx))
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// buildRecurse lays sorted[0:] out at the implicit positions rooted at idx,
// returning the subtree's height. Ported from base_repr.rs::build /
// base/mod.rs's TeardownTreeInternal::build.
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
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

func (t *Tree[K, V]) isNil(idx int) bool {
	return idx >= len(t.occupied) || !t.occupied[idx]
}

func (t *Tree[K, V]) hasLeft(idx int) bool {
	return !t.isNil(treecore.LeftIndex(idx))
}

func (t *Tree[K, V]) hasRight(idx int) bool {
	return !t.isNil(treecore.RightIndex(idx))
}

func (t *Tree[K, V]) keyAt(idx int) K {
	return t.cells[idx].entry.Key
}

// moveEntry moves the occupied cell at src into dst (dst becomes occupied,
// src becomes vacant). It does not change size: this is a pure relocation,
// used to promote an in-order neighbor into a hole left by a removal.
func (t *Tree[K, V]) moveEntry(src, dst int) {
	t.cells[dst] = t.cells[src]
	t.occupied[dst] = true
	t.occupied[src] = false
}

// vacateNoSink removes the entry at idx from the array without touching
// size or sending it anywhere; the caller is responsible for eventually
// accounting for it (either via a sink, or because it will be moved back
// in by a subsequent promotion).
func (t *Tree[K, V]) vacateNoSink(idx int) Entry[K, V] {
	e := t.cells[idx].entry
	t.occupied[idx] = false
	return e
}

// removeToSink deletes the live entry at idx, decrementing size and
// sending it to sink.
func (t *Tree[K, V]) removeToSink(idx int, sink treecore.Sink[Entry[K, V]]) {
	e := t.vacateNoSink(idx)
	t.size--
	sink.Consume(e)
}

// findMin returns the index of the minimum-key entry in the subtree rooted
// at idx. idx must not be nil.
func (t *Tree[K, V]) findMin(idx int) int {
	for {
		left := treecore.LeftIndex(idx)
		if t.isNil(left) {
			return idx
		}
		idx = left
	}
}

// findMax returns the index of the maximum-key entry in the subtree rooted
// at idx. idx must not be nil.
func (t *Tree[K, V]) findMax(idx int) int {
	for {
		right := treecore.RightIndex(idx)
		if t.isNil(right) {
			return idx
		}
		idx = right
	}
}

// FindMin returns the minimum key/value pair in the tree, if any.
func (t *Tree[K, V]) FindMin() (Entry[K, V], bool) {
	if t.size == 0 {
		return Entry[K, V]{}, false
	}
	return t.cells[t.findMin(0)].entry, true
}

// FindMax returns the maximum key/value pair in the tree, if any.
func (t *Tree[K, V]) FindMax() (Entry[K, V], bool) {
	if t.size == 0 {
		return Entry[K, V]{}, false
	}
	return t.cells[t.findMax(0)].entry, true
}

// Find performs a standard BST search and returns the value stored at key,
// if present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	idx, ok := t.indexOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.cells[idx].entry.Val, true
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.indexOf(key)
	return ok
}

func (t *Tree[K, V]) indexOf(key K) (int, bool) {
	idx := 0
	for !t.isNil(idx) {
		k := t.keyAt(idx)
		switch {
		case key < k:
			idx = treecore.LeftIndex(idx)
		case k < key:
			idx = treecore.RightIndex(idx)
		default:
			return idx, true
		}
	}
	return 0, false
}

// Size returns the number of live entries.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Capacity returns the fixed array capacity backing the tree, set at
// construction and unaffected by deletions.
func (t *Tree[K, V]) Capacity() int {
	return len(t.cells)
}

// Clear removes every entry, keeping the tree's capacity.
func (t *Tree[K, V]) Clear() {
	for i := range t.occupied {
		t.occupied[i] = false
	}
	t.size = 0
}

// ErrCapacityMismatch is returned by Refill when the receiver and master
// trees were not built with the same capacity.
type treeError struct{ msg string }

func (e *treeError) Error() string { return e.msg }

var ErrCapacityMismatch = &treeError{"rangetree: refill requires matching capacity"}

// Refill restores t to be an exact copy of master: a fixed-cost bulk copy
// of master's cell array and occupancy bitmap, valid only when the two
// trees share capacity (normally guaranteed because a copy is always built
// with the same capacity as its master). It requires single-threaded
// access to both t and master for its duration.
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

// Clone returns an independent Tree holding the same entries and shape as
// t, suitable for use as a master for subsequent Refill calls.
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

// String renders an ASCII tree diagram of t, grounded on the original
// implementation's Display impl (base_repr.rs::fmt_subtree/fmt_branch). It
// is meant for debugging and test failure messages, not for machine
// parsing.
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
	fmt.Fprintf(b, "%v\n", t.cells[idx].entry.Key)
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
