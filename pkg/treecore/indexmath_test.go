package treecore

import "testing"

func TestParentLeftRight(t *testing.T) {
	cases := []struct{ i, parent, left, right int }{
		{0, 0, 1, 2},
		{1, 0, 3, 4},
		{2, 0, 5, 6},
		{3, 1, 7, 8},
	}
	for _, c := range cases {
		if got := LeftIndex(c.i); got != c.left {
			t.Fatalf("LeftIndex(%d) = %d, want %d", c.i, got, c.left)
		}
		if got := RightIndex(c.i); got != c.right {
			t.Fatalf("RightIndex(%d) = %d, want %d", c.i, got, c.right)
		}
		if c.i > 0 {
			if got := ParentIndex(c.i); got != c.parent {
				t.Fatalf("ParentIndex(%d) = %d, want %d", c.i, got, c.parent)
			}
		}
	}
}

func TestBuildSelectRoot(t *testing.T) {
	cases := []struct{ n, want int }{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{7, 3},
		{15, 7},
	}
	for _, c := range cases {
		if got := BuildSelectRoot(c.n); got != c.want {
			t.Fatalf("BuildSelectRoot(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestHeightForSize(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{7, 3},
		{8, 4},
	}
	for _, c := range cases {
		if got := HeightForSize(c.n); got != c.want {
			t.Fatalf("HeightForSize(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
