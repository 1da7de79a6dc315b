package teardown

import (
	"cmp"

	"github.com/ssargent/teardowntree/pkg/rangetree"
	"github.com/ssargent/teardowntree/pkg/treecore"
)

// Map is a build-once/tear-down-fast key-value container backed by
// pkg/rangetree.Tree. It adds no behavior of its own beyond building the
// tree from a Go map; entries still surface as rangetree.Entry values. Its
// method set matches external_api.rs's TeardownTreeMap surface.
type Map[K cmp.Ordered, V any] struct {
	tree *rangetree.Tree[K, V]
}

// NewMap creates a Map from an unsorted batch of key/value pairs. Since
// items is a Go map, each key occurs at most once; NewMapFromSorted accepts
// duplicate keys.
func NewMap[K cmp.Ordered, V any](items map[K]V) *Map[K, V] {
	entries := make([]rangetree.Entry[K, V], 0, len(items))
	for k, v := range items {
		entries = append(entries, rangetree.Entry[K, V]{Key: k, Val: v})
	}
	return &Map[K, V]{tree: rangetree.New(entries)}
}

// NewMapFromSorted creates a Map from entries already sorted by key
// ascending; see rangetree.WithSorted for the contract.
func NewMapFromSorted[K cmp.Ordered, V any](sorted []rangetree.Entry[K, V]) *Map[K, V] {
	return &Map[K, V]{tree: rangetree.WithSorted(sorted)}
}

// Find returns the value stored at key, if present.
func (m *Map[K, V]) Find(key K) (V, bool) { return m.tree.Find(key) }

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool { return m.tree.Contains(key) }

// Delete removes the entry at key and returns its value.
func (m *Map[K, V]) Delete(key K) (V, bool) { return m.tree.Delete(key) }

// FindMin returns the entry with the smallest key, if any.
func (m *Map[K, V]) FindMin() (rangetree.Entry[K, V], bool) { return m.tree.FindMin() }

// FindMax returns the entry with the largest key, if any.
func (m *Map[K, V]) FindMax() (rangetree.Entry[K, V], bool) { return m.tree.FindMax() }

// DeleteRange deletes every entry with key in [lo, hi), sending them to
// sink in ascending key order, and returns the count removed.
func (m *Map[K, V]) DeleteRange(lo, hi K, sink treecore.Sink[rangetree.Entry[K, V]]) int {
	return m.tree.DeleteRange(lo, hi, sink)
}

// FilterRange deletes every entry with key in [lo, hi) for which accept
// returns true, sending them to sink, and returns the count removed.
func (m *Map[K, V]) FilterRange(lo, hi K, accept func(K) bool, sink treecore.Sink[rangetree.Entry[K, V]]) int {
	return m.tree.FilterRange(lo, hi, accept, sink)
}

// QueryRange visits every entry with key in [lo, hi) without removing it.
func (m *Map[K, V]) QueryRange(lo, hi K, visit func(rangetree.Entry[K, V])) {
	m.tree.QueryRange(lo, hi, visit)
}

// Refill restores m to be an exact copy of master.
func (m *Map[K, V]) Refill(master *Map[K, V]) error { return m.tree.Refill(master.tree) }

// Clone returns an independent Map holding the same entries, suitable as a
// Refill master.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{tree: m.tree.Clone()} }

// Size returns the number of live entries.
func (m *Map[K, V]) Size() int { return m.tree.Size() }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Clear removes every entry, keeping the underlying capacity.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// String renders an ASCII tree diagram, useful for debugging and test
// failure output.
func (m *Map[K, V]) String() string { return m.tree.String() }
