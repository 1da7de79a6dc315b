package intervaltree

import "github.com/ssargent/teardowntree/pkg/treecore"

// Delete removes the entry with the exact interval key, if present, and
// returns its value. This is an exact-key delete (BST descent by (A, B)
// ordering), distinct from DeleteOverlap's overlap search.
func (t *Tree[K, V]) Delete(key Interval[K]) (V, bool) {
	idx, ok := t.indexOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.deleteIdx(idx), true
}

// deleteIdx removes the entry at idx, promotes a replacement from a child
// subtree exactly as pkg/rangetree.Tree.deleteIdx does, then brings maxb
// back into a consistent state along every node whose subtree composition
// changed. All such nodes (the promotion spine, the nodes the promotions
// passed through, and idx's own ancestors) lie on the single path from the
// deepest vacated position up to the root, so one bottom-up climb along that
// path recomputes each of them after its children.
func (t *Tree[K, V]) deleteIdx(idx int) V {
	e := t.vacate(idx)
	t.size--

	var spine []int
	if t.hasLeft(idx) {
		spine = t.promoteMax(idx, treecore.LeftIndex(idx))
	} else if t.hasRight(idx) {
		spine = t.promoteMin(idx, treecore.RightIndex(idx))
	}
	// spine holds the hole positions visited, ordered shallow-to-deep
	// (idx first); its last element is the deepest vacated position.
	last := idx
	if len(spine) > 0 {
		last = spine[len(spine)-1]
	}
	t.updateMaxbAt(last)
	t.updateAncestorsMaxb(last)
	return e.Val
}

// promoteMax mirrors pkg/rangetree.Tree.promoteMax, additionally recording
// every hole position visited (shallow-to-deep) so the caller can refresh
// maxb along the spine afterward.
func (t *Tree[K, V]) promoteMax(hole, idx int) []int {
	visited := []int{hole}
	for {
		idx = t.findMax(idx)
		t.moveEntry(idx, hole)
		hole = idx
		visited = append(visited, hole)
		idx = treecore.LeftIndex(idx)
		if t.isNil(idx) {
			return visited
		}
	}
}

// promoteMin is the mirror image of promoteMax, promoting minimums along
// the right spine.
func (t *Tree[K, V]) promoteMin(hole, idx int) []int {
	visited := []int{hole}
	for {
		idx = t.findMin(idx)
		t.moveEntry(idx, hole)
		hole = idx
		visited = append(visited, hole)
		idx = treecore.RightIndex(idx)
		if t.isNil(idx) {
			return visited
		}
	}
}

// updateAncestorsMaxb recomputes maxb for every strict ancestor of idx, from
// idx's parent up to the root. Ported (without the early-exit optimization)
// from applied/interval_tree.rs's update_ancestors_after_delete: always
// recomputing is still O(h) and avoids tracking the "did maxb actually
// change" comparison the original uses to short-circuit.
func (t *Tree[K, V]) updateAncestorsMaxb(idx int) {
	for idx != 0 {
		idx = treecore.ParentIndex(idx)
		t.updateMaxbAt(idx)
	}
}
