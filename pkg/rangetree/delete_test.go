package rangetree

import "testing"

func TestDeleteLeaf(t *testing.T) {
	tr := makeIntTree(7)
	// with 7 sorted keys the tree is a complete tree of height 3; key 0 and
	// key 6 land as leaves.
	if _, ok := tr.Delete(0); !ok {
		t.Fatal("delete 0 failed")
	}
	assertSurvivors(t, tr, []int{1, 2, 3, 4, 5, 6})
	assertBSTOrder(t, tr)
	assertContiguousAncestry(t, tr)
}

func TestDeleteNodeWithOnlyRightChild(t *testing.T) {
	// Build a tree via WithNodes to pin down an exact shape: root=1 with
	// only a right child 2 (no left child).
	e0, e2 := Entry[int, int]{Key: 1}, Entry[int, int]{Key: 2}
	nodes := []*Entry[int, int]{&e0, nil, &e2}
	tr := WithNodes(nodes)
	if tr.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", tr.Size())
	}
	v, ok := tr.Delete(1)
	_ = v
	if !ok {
		t.Fatal("delete root failed")
	}
	assertSurvivors(t, tr, []int{2})
	assertBSTOrder(t, tr)
	assertContiguousAncestry(t, tr)
}

func TestDeleteNodeWithOnlyLeftChild(t *testing.T) {
	e0, e1 := Entry[int, int]{Key: 2}, Entry[int, int]{Key: 1}
	nodes := []*Entry[int, int]{&e0, &e1, nil}
	tr := WithNodes(nodes)
	if _, ok := tr.Delete(2); !ok {
		t.Fatal("delete root failed")
	}
	assertSurvivors(t, tr, []int{1})
	assertBSTOrder(t, tr)
	assertContiguousAncestry(t, tr)
}

func TestDeleteNodeWithTwoChildrenPromotesPredecessor(t *testing.T) {
	tr := makeIntTree(15) // perfectly balanced, root has two children
	root, _ := tr.Find(7) // root key in a 0..14 build is 7 (see buildRecurse)
	_ = root
	if _, ok := tr.Delete(7); !ok {
		t.Fatal("delete root failed")
	}
	if tr.Contains(7) {
		t.Fatal("7 should be gone")
	}
	if k := tr.keyAt(0); k != 6 {
		t.Fatalf("root key after delete = %d, want predecessor 6", k)
	}
	assertBSTOrder(t, tr)
	assertContiguousAncestry(t, tr)
	assertSurvivors(t, tr, []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14})
}

func TestDeleteAllOneByOneAscending(t *testing.T) {
	tr := makeIntTree(30)
	for i := 0; i < 30; i++ {
		if _, ok := tr.Delete(i); !ok {
			t.Fatalf("delete %d failed", i)
		}
		assertBSTOrder(t, tr)
		assertContiguousAncestry(t, tr)
	}
	if !tr.IsEmpty() {
		t.Fatalf("expected empty, size=%d", tr.Size())
	}
}

func TestDeleteAllOneByOneDescending(t *testing.T) {
	tr := makeIntTree(30)
	for i := 29; i >= 0; i-- {
		if _, ok := tr.Delete(i); !ok {
			t.Fatalf("delete %d failed", i)
		}
		assertBSTOrder(t, tr)
		assertContiguousAncestry(t, tr)
	}
	if !tr.IsEmpty() {
		t.Fatalf("expected empty, size=%d", tr.Size())
	}
}

func TestDeleteDuplicateKeyRemovesOneOccurrence(t *testing.T) {
	items := []Entry[int, string]{
		{Key: 1, Val: "a"},
		{Key: 1, Val: "b"},
		{Key: 2, Val: "c"},
	}
	tr := New(items)
	if tr.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", tr.Size())
	}
	if _, ok := tr.Delete(1); !ok {
		t.Fatal("delete key 1 failed")
	}
	if tr.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", tr.Size())
	}
	// one occurrence of key 1 should remain
	if !tr.Contains(1) {
		t.Fatal("expected one occurrence of key 1 to remain")
	}
	if _, ok := tr.Delete(1); !ok {
		t.Fatal("delete second occurrence of key 1 failed")
	}
	if tr.Contains(1) {
		t.Fatal("key 1 should now be fully gone")
	}
}
