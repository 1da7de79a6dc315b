package teardown

import (
	"testing"

	"github.com/ssargent/teardowntree/pkg/rangetree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMap(n int) *Map[int, int] {
	items := make(map[int]int, n)
	for i := 0; i < n; i++ {
		items[i] = i * 100
	}
	return NewMap(items)
}

type sliceSink[K comparable, V any] struct {
	items []rangetree.Entry[K, V]
}

func (s *sliceSink[K, V]) Consume(e rangetree.Entry[K, V]) { s.items = append(s.items, e) }

func TestMapFindAndContains(t *testing.T) {
	m := buildMap(10)
	assert.Equal(t, 10, m.Size())

	v, ok := m.Find(5)
	require.True(t, ok)
	assert.Equal(t, 500, v)

	assert.True(t, m.ContainsKey(0))
	assert.False(t, m.ContainsKey(999))
}

func TestMapFindMinMax(t *testing.T) {
	m := buildMap(10)

	min, ok := m.FindMin()
	require.True(t, ok)
	assert.Equal(t, 0, min.Key)

	max, ok := m.FindMax()
	require.True(t, ok)
	assert.Equal(t, 9, max.Key)
}

func TestMapFindMinMaxEmpty(t *testing.T) {
	m := NewMap(map[int]int{})

	_, ok := m.FindMin()
	assert.False(t, ok)

	_, ok = m.FindMax()
	assert.False(t, ok)
}

func TestMapDeleteRange(t *testing.T) {
	m := buildMap(50)
	var sink sliceSink[int, int]
	n := m.DeleteRange(10, 20, &sink)

	assert.Equal(t, 10, n)
	assert.Len(t, sink.items, 10)
	for i, e := range sink.items {
		assert.Equal(t, 10+i, e.Key)
	}
	assert.Equal(t, 40, m.Size())
}

func TestMapFilterRange(t *testing.T) {
	m := buildMap(20)
	var sink sliceSink[int, int]
	n := m.FilterRange(0, 20, func(k int) bool { return k%5 == 0 }, &sink)

	assert.Equal(t, 4, n)
	assert.False(t, m.ContainsKey(0))
	assert.False(t, m.ContainsKey(5))
	assert.True(t, m.ContainsKey(1))
}

func TestMapQueryRangeIsReadOnly(t *testing.T) {
	m := buildMap(20)
	var seen []int
	m.QueryRange(5, 10, func(e rangetree.Entry[int, int]) { seen = append(seen, e.Key) })

	assert.Equal(t, []int{5, 6, 7, 8, 9}, seen)
	assert.Equal(t, 20, m.Size())
}

func TestMapRefillAndClone(t *testing.T) {
	master := buildMap(30)
	copy1 := master.Clone()

	var sink sliceSink[int, int]
	copy1.DeleteRange(0, 30, &sink)
	require.True(t, copy1.IsEmpty())

	err := copy1.Refill(master)
	require.NoError(t, err)
	assert.Equal(t, master.Size(), copy1.Size())
}

func TestMapClear(t *testing.T) {
	m := buildMap(5)
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.False(t, m.ContainsKey(0))
}

func TestSetBasics(t *testing.T) {
	s := NewSet([]int{5, 1, 3, 1, 5, 2, 4})
	assert.Equal(t, 5, s.Size())
	assert.True(t, s.Contains(3))

	removed := s.DeleteRange(2, 4)
	assert.Equal(t, []int{2, 3}, removed)
	assert.False(t, s.Contains(2))
	assert.True(t, s.Contains(1))
}

func TestSetFilterRange(t *testing.T) {
	s := NewSet([]int{0, 1, 2, 3, 4, 5, 6})
	removed := s.FilterRange(0, 7, func(k int) bool { return k%2 == 0 })
	assert.Equal(t, []int{0, 2, 4, 6}, removed)
	assert.Equal(t, 3, s.Size())
}
