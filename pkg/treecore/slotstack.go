package treecore

// SlotStack tracks the "open" cell positions discovered while descending
// through a bulk-delete operation: positions that became vacant and must
// eventually receive a promoted in-order neighbor to keep the tree a legal
// BST. It is a deque in disguise: Push appends a new open slot at the top,
// Fill claims the oldest still-open slot (from the bottom) and marks it
// filled, and Pop removes the most recently pushed slot, giving up on it if
// it was never filled.
//
// A SlotStack is scratch space owned by a tree instance. pkg/rangetree's
// DeleteRange resets both of a tree's stacks before and after each call;
// emptiness on return is not asserted. pkg/intervaltree allocates slot
// stacks, but DeleteOverlap and FilterOverlap do not use them.
type SlotStack struct {
	slots   []int
	nfilled int
}

// NewSlotStack allocates a SlotStack with the given capacity, which should
// be the maximum possible height of the tree it will serve.
func NewSlotStack(capacity int) *SlotStack {
	return &SlotStack{slots: make([]int, 0, capacity)}
}

// Push records idx as a new open slot.
func (s *SlotStack) Push(idx int) {
	s.slots = append(s.slots, idx)
}

// Pop removes the most recently pushed slot and returns its index. If that
// slot was the most recently filled one, nfilled is adjusted to match;
// otherwise the slot is simply discarded unfilled.
func (s *SlotStack) Pop() int {
	n := len(s.slots)
	idx := s.slots[n-1]
	if s.nfilled == n {
		s.nfilled--
	}
	s.slots = s.slots[:n-1]
	return idx
}

// Peek returns the most recently pushed slot's index without removing it.
func (s *SlotStack) Peek() int {
	return s.slots[len(s.slots)-1]
}

// Fill claims the oldest still-open slot and returns its index. The caller
// is responsible for moving an entry into that index.
func (s *SlotStack) Fill() int {
	idx := s.slots[s.nfilled]
	s.nfilled++
	return idx
}

// HasOpen reports whether any pushed slot remains unfilled.
func (s *SlotStack) HasOpen() bool {
	return len(s.slots) != s.nfilled
}

// IsEmpty reports whether the stack holds no slots at all (filled or open).
func (s *SlotStack) IsEmpty() bool {
	return len(s.slots) == 0
}

// Len returns the number of slots currently pushed (filled or open).
func (s *SlotStack) Len() int {
	return len(s.slots)
}

// Reset clears the stack for reuse in the next bulk operation.
func (s *SlotStack) Reset() {
	s.slots = s.slots[:0]
	s.nfilled = 0
}
