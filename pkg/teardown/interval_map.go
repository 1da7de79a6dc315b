package teardown

import (
	"cmp"

	"github.com/ssargent/teardowntree/pkg/intervaltree"
	"github.com/ssargent/teardowntree/pkg/treecore"
)

// IntervalMap is a build-once/tear-down-fast interval-keyed container
// backed by pkg/intervaltree.Tree, matching external_api.rs's
// IntervalTeardownTreeMap.
type IntervalMap[K cmp.Ordered, V any] struct {
	tree *intervaltree.Tree[K, V]
}

// NewIntervalMap creates an IntervalMap from an unsorted batch of
// interval/value pairs.
func NewIntervalMap[K cmp.Ordered, V any](items []intervaltree.Entry[K, V]) *IntervalMap[K, V] {
	return &IntervalMap[K, V]{tree: intervaltree.New(items)}
}

// Find returns the value stored under the exact interval key, if present.
func (m *IntervalMap[K, V]) Find(key intervaltree.Interval[K]) (V, bool) { return m.tree.Find(key) }

// Contains reports whether the exact interval key is present.
func (m *IntervalMap[K, V]) Contains(key intervaltree.Interval[K]) bool { return m.tree.Contains(key) }

// Delete removes the exact interval key and returns its value.
func (m *IntervalMap[K, V]) Delete(key intervaltree.Interval[K]) (V, bool) { return m.tree.Delete(key) }

// FindMin returns the entry whose interval sorts lowest by (A, B), if any.
func (m *IntervalMap[K, V]) FindMin() (intervaltree.Entry[K, V], bool) { return m.tree.FindMin() }

// FindMax returns the entry whose interval sorts highest by (A, B), if any.
func (m *IntervalMap[K, V]) FindMax() (intervaltree.Entry[K, V], bool) { return m.tree.FindMax() }

// DeleteOverlap removes every entry overlapping query, sending them to
// sink, and returns the count removed.
func (m *IntervalMap[K, V]) DeleteOverlap(query intervaltree.Interval[K], sink treecore.Sink[intervaltree.Entry[K, V]]) int {
	return m.tree.DeleteOverlap(query, sink)
}

// FilterOverlap removes every entry overlapping query for which accept
// returns true, sending them to sink, and returns the count removed.
func (m *IntervalMap[K, V]) FilterOverlap(query intervaltree.Interval[K], accept func(intervaltree.Interval[K]) bool, sink treecore.Sink[intervaltree.Entry[K, V]]) int {
	return m.tree.FilterOverlap(query, accept, sink)
}

// QueryOverlap visits every entry overlapping query without removing it.
func (m *IntervalMap[K, V]) QueryOverlap(query intervaltree.Interval[K], visit func(intervaltree.Entry[K, V])) {
	m.tree.QueryOverlap(query, visit)
}

// Refill restores m to be an exact copy of master.
func (m *IntervalMap[K, V]) Refill(master *IntervalMap[K, V]) error { return m.tree.Refill(master.tree) }

// Clone returns an independent IntervalMap holding the same entries.
func (m *IntervalMap[K, V]) Clone() *IntervalMap[K, V] { return &IntervalMap[K, V]{tree: m.tree.Clone()} }

// Size returns the number of live entries.
func (m *IntervalMap[K, V]) Size() int { return m.tree.Size() }

// IsEmpty reports whether the map holds no entries.
func (m *IntervalMap[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Clear removes every entry, keeping the underlying capacity.
func (m *IntervalMap[K, V]) Clear() { m.tree.Clear() }

// String renders an ASCII tree diagram annotated with each node's maxb.
func (m *IntervalMap[K, V]) String() string { return m.tree.String() }
