package topolist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gologic/lsynth/topolist"
)

// ListSuite exercises push/insert/remove and the cursor-stability contract.
type ListSuite struct {
	suite.Suite
}

func (s *ListSuite) TestPushBackOrder() {
	l := topolist.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	require.Equal(s.T(), 3, l.Len())

	var order []int
	for h := l.First(); h != nil; h = h.Next() {
		order = append(order, h.Payload())
	}
	require.Equal(s.T(), []int{1, 2, 3}, order)
	require.Equal(s.T(), 3, l.Last().Payload())
}

func (s *ListSuite) TestInsertAfter() {
	l := topolist.New[string]()
	a := l.PushBack("a")
	l.PushBack("c")
	l.InsertAfter(a, "b")

	var order []string
	for h := l.First(); h != nil; h = h.Next() {
		order = append(order, h.Payload())
	}
	require.Equal(s.T(), []string{"a", "b", "c"}, order)
}

func (s *ListSuite) TestInsertAfterNilIsHead() {
	l := topolist.New[string]()
	l.PushBack("b")
	l.InsertAfter(nil, "a")

	require.Equal(s.T(), "a", l.First().Payload())
	require.Equal(s.T(), "b", l.Last().Payload())
}

func (s *ListSuite) TestRemoveMiddle() {
	l := topolist.New[int]()
	l.PushBack(1)
	h2 := l.PushBack(2)
	l.PushBack(3)

	l.Remove(h2)
	require.Equal(s.T(), 2, l.Len())
	require.True(s.T(), h2.Removed())
	require.Equal(s.T(), 0, h2.Payload())

	var order []int
	for h := l.First(); h != nil; h = h.Next() {
		order = append(order, h.Payload())
	}
	require.Equal(s.T(), []int{1, 3}, order)
}

// TestCursorSurvivesRemovalOfCurrent mirrors the refactoring driver's loop:
// advance a cursor, delete the node it currently points at, and confirm the
// cursor (still holding the stale handle) can resolve to a safe successor.
func (s *ListSuite) TestCursorSurvivesRemovalOfCurrent() {
	l := topolist.New[int]()
	l.PushBack(1)
	cur := l.PushBack(2)
	l.PushBack(3)

	l.Remove(cur)
	require.True(s.T(), cur.Removed())

	next := cur.Next()
	require.NotNil(s.T(), next)
	require.Equal(s.T(), 3, next.Payload())
}

func (s *ListSuite) TestRemoveHeadAndTail() {
	l := topolist.New[int]()
	h1 := l.PushBack(1)
	l.PushBack(2)
	h3 := l.PushBack(3)

	l.Remove(h1)
	require.Equal(s.T(), 2, l.First().Payload())

	l.Remove(h3)
	require.Equal(s.T(), 2, l.Last().Payload())
	require.Equal(s.T(), 1, l.Len())
}

func (s *ListSuite) TestRemoveIsIdempotent() {
	l := topolist.New[int]()
	h := l.PushBack(1)
	l.Remove(h)
	require.Equal(s.T(), 0, l.Len())
	require.NotPanics(s.T(), func() { l.Remove(h) })
}

func TestListSuite(t *testing.T) {
	suite.Run(t, new(ListSuite))
}
