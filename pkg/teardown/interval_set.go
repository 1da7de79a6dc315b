package teardown

import (
	"cmp"

	"github.com/ssargent/teardowntree/pkg/intervaltree"
	"github.com/ssargent/teardowntree/pkg/treecore"
)

// IntervalSet is a build-once/tear-down-fast container of intervals,
// matching external_api.rs's IntervalTeardownTreeSet.
type IntervalSet[K cmp.Ordered] struct {
	tree *intervaltree.Tree[K, struct{}]
}

// NewIntervalSet creates an IntervalSet from an unsorted batch of
// intervals. Duplicate intervals are collapsed to one occurrence.
func NewIntervalSet[K cmp.Ordered](ivs []intervaltree.Interval[K]) *IntervalSet[K] {
	seen := make(map[intervaltree.Interval[K]]struct{}, len(ivs))
	entries := make([]intervaltree.Entry[K, struct{}], 0, len(ivs))
	for _, iv := range ivs {
		if _, dup := seen[iv]; dup {
			continue
		}
		seen[iv] = struct{}{}
		entries = append(entries, intervaltree.Entry[K, struct{}]{Key: iv})
	}
	return &IntervalSet[K]{tree: intervaltree.New(entries)}
}

// Contains reports whether the exact interval is present.
func (s *IntervalSet[K]) Contains(key intervaltree.Interval[K]) bool { return s.tree.Contains(key) }

// Delete removes the exact interval and reports whether it was present.
func (s *IntervalSet[K]) Delete(key intervaltree.Interval[K]) bool {
	_, ok := s.tree.Delete(key)
	return ok
}

type ivKeyOnlySink[K cmp.Ordered] struct {
	keys *[]intervaltree.Interval[K]
}

func (s ivKeyOnlySink[K]) Consume(e intervaltree.Entry[K, struct{}]) {
	*s.keys = append(*s.keys, e.Key)
}

// DeleteOverlap removes every interval overlapping query and returns them.
func (s *IntervalSet[K]) DeleteOverlap(query intervaltree.Interval[K]) []intervaltree.Interval[K] {
	var out []intervaltree.Interval[K]
	s.tree.DeleteOverlap(query, ivKeyOnlySink[K]{keys: &out})
	return out
}

// FilterOverlap removes every interval overlapping query for which accept
// returns true, and returns them.
func (s *IntervalSet[K]) FilterOverlap(query intervaltree.Interval[K], accept func(intervaltree.Interval[K]) bool) []intervaltree.Interval[K] {
	var out []intervaltree.Interval[K]
	s.tree.FilterOverlap(query, accept, ivKeyOnlySink[K]{keys: &out})
	return out
}

// QueryOverlap visits every interval overlapping query without removing it.
func (s *IntervalSet[K]) QueryOverlap(query intervaltree.Interval[K], visit func(intervaltree.Interval[K])) {
	s.tree.QueryOverlap(query, func(e intervaltree.Entry[K, struct{}]) { visit(e.Key) })
}

// Refill restores s to be an exact copy of master.
func (s *IntervalSet[K]) Refill(master *IntervalSet[K]) error { return s.tree.Refill(master.tree) }

// Clone returns an independent IntervalSet holding the same intervals.
func (s *IntervalSet[K]) Clone() *IntervalSet[K] { return &IntervalSet[K]{tree: s.tree.Clone()} }

// Size returns the number of intervals in the set.
func (s *IntervalSet[K]) Size() int { return s.tree.Size() }

// IsEmpty reports whether the set holds no intervals.
func (s *IntervalSet[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// Clear removes every interval, keeping the underlying capacity.
func (s *IntervalSet[K]) Clear() { s.tree.Clear() }

var _ treecore.Sink[intervaltree.Entry[int, struct{}]] = ivKeyOnlySink[int]{}
