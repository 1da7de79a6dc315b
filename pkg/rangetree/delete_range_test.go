package rangetree

import "testing"

func TestDeleteRangeEmptyTree(t *testing.T) {
	tr := New[int, int](nil)
	var sink collectSink
	n := tr.DeleteRange(0, 100, &sink)
	if n != 0 || len(sink.items) != 0 {
		t.Fatalf("expected no-op on empty tree, got n=%d items=%v", n, sink.items)
	}
}

func TestDeleteRangeNoMatches(t *testing.T) {
	tr := makeIntTree(10)
	var sink collectSink
	n := tr.DeleteRange(100, 200, &sink)
	if n != 0 || len(sink.items) != 0 {
		t.Fatalf("expected no matches, got n=%d items=%v", n, sink.items)
	}
	assertSurvivors(t, tr, rangeInts(0, 10))
}

func TestDeleteRangeEntireTree(t *testing.T) {
	tr := makeIntTree(17)
	var sink collectSink
	n := tr.DeleteRange(0, 17, &sink)
	if n != 17 {
		t.Fatalf("removed = %d, want 17", n)
	}
	wantKeys(t, sink.items, rangeInts(0, 17))
	if !tr.IsEmpty() {
		t.Fatal("expected empty tree")
	}
}

func TestDeleteRangeUpperOpenBoundary(t *testing.T) {
	// [lo, hi) is half-open: hi itself must never be removed.
	tr := makeIntTree(5) // 0..4
	var sink collectSink
	n := tr.DeleteRange(2, 4, &sink)
	if n != 2 {
		t.Fatalf("removed = %d, want 2", n)
	}
	wantKeys(t, sink.items, []int{2, 3})
	assertSurvivors(t, tr, []int{0, 1, 4})
}

func TestDeleteRangeRepeatedNonOverlappingBulksAscendingOrder(t *testing.T) {
	tr := makeIntTree(200)
	ranges := [][2]int{{0, 20}, {50, 70}, {150, 200}, {20, 50}, {70, 150}}
	var allRemoved []int
	for _, r := range ranges {
		var sink collectSink
		n := tr.DeleteRange(r[0], r[1], &sink)
		if n != r[1]-r[0] {
			t.Fatalf("range %v: removed=%d, want %d", r, n, r[1]-r[0])
		}
		wantKeys(t, sink.items, rangeInts(r[0], r[1]))
		for _, e := range sink.items {
			allRemoved = append(allRemoved, e.Key)
		}
		assertBSTOrder(t, tr)
		assertContiguousAncestry(t, tr)
	}
	if !tr.IsEmpty() {
		t.Fatalf("expected tree fully drained, size=%d", tr.Size())
	}
	if len(allRemoved) != 200 {
		t.Fatalf("total removed = %d, want 200", len(allRemoved))
	}
}

func TestDeleteRangeThenContinueUsingTree(t *testing.T) {
	tr := makeIntTree(50)
	var sink collectSink
	tr.DeleteRange(10, 20, &sink)
	assertSurvivors(t, tr, append(rangeInts(0, 10), rangeInts(20, 50)...))

	// tree must remain fully usable for further single-key ops afterward.
	if _, ok := tr.Delete(25); !ok {
		t.Fatal("delete after DeleteRange failed")
	}
	if tr.Contains(25) {
		t.Fatal("25 should be gone")
	}
	assertBSTOrder(t, tr)
	assertContiguousAncestry(t, tr)

	var sink2 collectSink
	tr.DeleteRange(30, 40, &sink2)
	wantKeys(t, sink2.items, rangeInts(30, 40))
	assertBSTOrder(t, tr)
	assertContiguousAncestry(t, tr)
}
