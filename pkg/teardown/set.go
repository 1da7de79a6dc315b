package teardown

import (
	"cmp"

	"github.com/ssargent/teardowntree/pkg/rangetree"
	"github.com/ssargent/teardowntree/pkg/treecore"
)

// Set is a build-once/tear-down-fast key container, i.e. Map[K, struct{}]
// with a key-only surface, matching external_api.rs's TeardownTreeSet.
type Set[K cmp.Ordered] struct {
	tree *rangetree.Tree[K, struct{}]
}

// NewSet creates a Set from an unsorted batch of keys. Duplicate keys are
// collapsed to one occurrence, matching ordinary set semantics (the
// underlying tree tolerates duplicates, but a set built this way never
// produces them: the caller-facing type is what distinguishes Set from
// Map[K, struct{}]).
func NewSet[K cmp.Ordered](keys []K) *Set[K] {
	seen := make(map[K]struct{}, len(keys))
	entries := make([]rangetree.Entry[K, struct{}], 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		entries = append(entries, rangetree.Entry[K, struct{}]{Key: k})
	}
	return &Set[K]{tree: rangetree.New(entries)}
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool { return s.tree.Contains(key) }

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.tree.Delete(key)
	return ok
}

// keyOnlySink discards values, retaining only keys, for Set's
// key-only sink surface.
type keyOnlySink[K cmp.Ordered] struct {
	keys *[]K
}

func (s keyOnlySink[K]) Consume(e rangetree.Entry[K, struct{}]) { *s.keys = append(*s.keys, e.Key) }

// DeleteRange deletes every key in [lo, hi) and returns them in ascending
// order.
func (s *Set[K]) DeleteRange(lo, hi K) []K {
	var out []K
	s.tree.DeleteRange(lo, hi, keyOnlySink[K]{keys: &out})
	return out
}

// FilterRange deletes every key in [lo, hi) for which accept returns true
// and returns them in ascending order.
func (s *Set[K]) FilterRange(lo, hi K, accept func(K) bool) []K {
	var out []K
	s.tree.FilterRange(lo, hi, accept, keyOnlySink[K]{keys: &out})
	return out
}

// QueryRange visits every key in [lo, hi) without removing it.
func (s *Set[K]) QueryRange(lo, hi K, visit func(K)) {
	s.tree.QueryRange(lo, hi, func(e rangetree.Entry[K, struct{}]) { visit(e.Key) })
}

// Refill restores s to be an exact copy of master.
func (s *Set[K]) Refill(master *Set[K]) error { return s.tree.Refill(master.tree) }

// Clone returns an independent Set holding the same keys.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{tree: s.tree.Clone()} }

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int { return s.tree.Size() }

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// Clear removes every key, keeping the underlying capacity.
func (s *Set[K]) Clear() { s.tree.Clear() }

var _ treecore.Sink[rangetree.Entry[int, struct{}]] = keyOnlySink[int]{}
