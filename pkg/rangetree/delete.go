package rangetree

import "github.com/ssargent/teardowntree/pkg/treecore"

// Delete removes the entry at key, if present, and returns its value.
// Duplicate keys: one occurrence is removed (the one found by standard BST
// descent); which occurrence is unspecified.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	idx, ok := t.indexOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.deleteIdx(idx), true
}

// deleteIdx removes the entry at idx and fills the resulting hole by
// promoting the in-order predecessor (preferring the left subtree's
// maximum), or, if idx has no left child, the in-order successor. Each
// promotion follows a single spine iteratively; ported from
// applied/plain_tree.rs's delete_idx/delete_max/delete_min.
func (t *Tree[K, V]) deleteIdx(idx int) V {
	e := t.vacateNoSink(idx)
	t.size--
	if t.hasLeft(idx) {
		t.promoteMax(idx, treecore.LeftIndex(idx))
	} else if t.hasRight(idx) {
		t.promoteMin(idx, treecore.RightIndex(idx))
	}
	return e.Val
}

// promoteMax repeatedly moves the maximum entry of the subtree rooted at
// idx into hole, following hole down the resulting chain of emptied
// positions until it reaches a leaf.
func (t *Tree[K, V]) promoteMax(hole, idx int) {
	for {
		idx = t.findMax(idx)
		t.moveEntry(idx, hole)
		hole = idx
		idx = treecore.LeftIndex(idx)
		if t.isNil(idx) {
			return
		}
	}
}

// promoteMin is the mirror image of promoteMax, promoting minimums along
// the right spine.
func (t *Tree[K, V]) promoteMin(hole, idx int) {
	for {
		idx = t.findMin(idx)
		t.moveEntry(idx, hole)
		hole = idx
		idx = treecore.RightIndex(idx)
		if t.isNil(idx) {
			return
		}
	}
}
