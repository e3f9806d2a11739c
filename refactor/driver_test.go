package refactor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gologic/lsynth/aig"
	"github.com/gologic/lsynth/refactor"
)

// reassocEvaluator rewrites and(and(a,b), c) into and(a, and(b,c)) whenever
// the inner AND has exactly one fanout (so restructuring it cannot break
// sharing elsewhere), regardless of which child slot the inner AND landed
// in after canonicalization.
type reassocEvaluator struct {
	m     *aig.Manager
	calls []uint32
}

func (e *reassocEvaluator) Evaluate(n *aig.Node, minSaved int) (refactor.FactoredForm, bool) {
	e.calls = append(e.calls, n.ID())
	c0, c1 := n.Children()
	if form, ok := e.tryInner(c0, c1); ok {
		return form, true
	}
	return e.tryInner(c1, c0)
}

func (e *reassocEvaluator) tryInner(innerLit, outerLit aig.Lit) (refactor.FactoredForm, bool) {
	if innerLit.IsComplement() {
		return nil, false
	}
	inner := e.m.NodeOf(innerLit)
	if inner.Kind() != aig.KindAnd || inner.FanoutCount() != 1 {
		return nil, false
	}
	ic0, ic1 := inner.Children()
	return &reassocForm{a: ic0, b: ic1, c: outerLit}, true
}

type reassocForm struct{ a, b, c aig.Lit }

func (f *reassocForm) Materialize(m *aig.Manager) aig.Lit {
	return m.And(f.a, m.And(f.b, f.c))
}

// spyEvaluator records which nodes it was asked about and never proposes a
// rewrite, used to assert skip conditions (persistent nodes, oversized
// fanout) without entangling them with reassocEvaluator's rewrite logic.
type spyEvaluator struct{ seen []*aig.Node }

func (s *spyEvaluator) Evaluate(n *aig.Node, minSaved int) (refactor.FactoredForm, bool) {
	s.seen = append(s.seen, n)
	return nil, false
}

type DriverSuite struct {
	suite.Suite
	m *aig.Manager
}

func (s *DriverSuite) SetupTest() {
	s.m = aig.NewManager()
}

func (s *DriverSuite) TestReassociatesChainAndSkipsFreshMaterial() {
	a, b, c := s.m.CreatePI(), s.m.CreatePI(), s.m.CreatePI()
	n1 := s.m.And(a, b)
	n2 := s.m.And(n1, c)
	po := s.m.CreatePO(n2)

	n1Node, n2Node := s.m.NodeOf(n1), s.m.NodeOf(n2)

	ev := &reassocEvaluator{m: s.m}
	d := refactor.NewDriver(s.m, ev)
	require.NoError(s.T(), d.RunPass())

	require.True(s.T(), n1Node.Deleted())
	require.True(s.T(), n2Node.Deleted())

	root := s.m.NodeOf(po.Driver())
	require.Equal(s.T(), aig.KindAnd, root.Kind())
	rc0, rc1 := root.Children()
	outerPIs := map[uint32]bool{a.ID(): true, c.ID(): true}
	require.True(s.T(), outerPIs[rc0.ID()] || outerPIs[rc1.ID()])

	// Only the two pre-existing AND nodes were ever offered to the
	// evaluator; the freshly materialized replacement nodes (which always
	// get ids past max_id_at_start) must never be re-evaluated in the same
	// pass (spec §8 scenario 6).
	require.ElementsMatch(s.T(), []uint32{n1.ID(), n2.ID()}, ev.calls)

	require.NoError(s.T(), s.m.Check())
}

func (s *DriverSuite) TestPersistentNodeIsNeverOffered() {
	a, b := s.m.CreatePI(), s.m.CreatePI()
	g1 := s.m.And(a, b)
	s.m.CreatePO(g1)
	s.m.NodeOf(g1).SetPersistent(true)

	ev := &spyEvaluator{}
	d := refactor.NewDriver(s.m, ev)
	require.NoError(s.T(), d.RunPass())

	for _, n := range ev.seen {
		require.NotEqual(s.T(), g1.ID(), n.ID())
	}
	require.False(s.T(), s.m.NodeOf(g1).Deleted())
	require.NoError(s.T(), s.m.Check())
}

func (s *DriverSuite) TestOversizedFanoutIsSkipped() {
	a, b := s.m.CreatePI(), s.m.CreatePI()
	g1 := s.m.And(a, b)
	for i := 0; i < 5; i++ {
		s.m.CreatePO(g1)
	}

	ev := &spyEvaluator{}
	d := refactor.NewDriver(s.m, ev, refactor.WithMaxFanouts(2))
	require.NoError(s.T(), d.RunPass())

	for _, n := range ev.seen {
		require.NotEqual(s.T(), g1.ID(), n.ID())
	}
	require.NoError(s.T(), s.m.Check())
}

func (s *DriverSuite) TestEmptyGraphRunsCleanly() {
	ev := &spyEvaluator{}
	d := refactor.NewDriver(s.m, ev)
	require.NoError(s.T(), d.RunPass())
	require.Empty(s.T(), ev.seen)
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}
