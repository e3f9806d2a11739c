package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gologic/lsynth/heap"
)

// HeapSuite exercises the generic min-heap under push/pop sequences.
type HeapSuite struct {
	suite.Suite
}

func (s *HeapSuite) TestEmptyPopAndPeek() {
	h := heap.New[string](0)
	require.Equal(s.T(), 0, h.Len())

	_, _, ok := h.PopMin()
	require.False(s.T(), ok)

	_, _, ok = h.PeekMin()
	require.False(s.T(), ok)
}

func (s *HeapSuite) TestAscendingDrainOrder() {
	h := heap.New[string](4)
	h.Push("c", 3)
	h.Push("a", 1)
	h.Push("d", 4)
	h.Push("b", 2)

	var drained []string
	for h.Len() > 0 {
		payload, _, ok := h.PopMin()
		require.True(s.T(), ok)
		drained = append(drained, payload)
	}
	require.Equal(s.T(), []string{"a", "b", "c", "d"}, drained)
}

func (s *HeapSuite) TestPeekDoesNotRemove() {
	h := heap.New[int](0)
	h.Push(42, 1.0)

	payload, priority, ok := h.PeekMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), 42, payload)
	require.Equal(s.T(), float32(1.0), priority)
	require.Equal(s.T(), 1, h.Len())
}

func (s *HeapSuite) TestClear() {
	h := heap.New[int](0)
	h.Push(1, 1)
	h.Push(2, 2)
	h.Clear()
	require.Equal(s.T(), 0, h.Len())
	_, _, ok := h.PopMin()
	require.False(s.T(), ok)
}

func (s *HeapSuite) TestGrowsBeyondInitialCapacity() {
	h := heap.New[int](1)
	for i := 100; i > 0; i-- {
		h.Push(i, float32(i))
	}
	require.Equal(s.T(), 100, h.Len())

	prev := -1
	for h.Len() > 0 {
		payload, _, _ := h.PopMin()
		require.Greater(s.T(), payload, prev)
		prev = payload
	}
}

func TestHeapSuite(t *testing.T) {
	suite.Run(t, new(HeapSuite))
}
