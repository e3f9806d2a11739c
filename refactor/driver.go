package refactor

import (
	"github.com/rs/zerolog"

	"github.com/gologic/lsynth/aig"
)

// CutEvaluator is the external collaborator that proposes rewrites. Cut
// enumeration and Boolean function manipulation are explicitly out of scope
// for this package (spec §1's Non-goals); a caller supplies a concrete
// implementation backed by whatever cut/ISOP engine it likes.
type CutEvaluator interface {
	// Evaluate proposes a replacement factored form for n with gain >=
	// minSaved, or returns ok=false if no improving rewrite was found.
	Evaluate(n *aig.Node, minSaved int) (g FactoredForm, ok bool)
}

// FactoredForm is an opaque candidate subgraph a CutEvaluator proposes.
type FactoredForm interface {
	// Materialize adds whatever nodes are needed into m and returns the
	// literal implementing this factored form.
	Materialize(m *aig.Manager) aig.Lit
}

// Driver repeatedly asks a CutEvaluator for improving local rewrites over an
// aig.Manager and commits them, one forward pass at a time, per spec §4.8.
//
// The zero value is not usable; construct with NewDriver.
type Driver struct {
	m  *aig.Manager
	ev CutEvaluator

	minSaved     int
	updateLevels bool
	maxFanouts   int

	logger zerolog.Logger
}

// NewDriver constructs a Driver over m, driven by ev.
func NewDriver(m *aig.Manager, ev CutEvaluator, opts ...Option) *Driver {
	d := &Driver{
		m:            m,
		ev:           ev,
		minSaved:     1,
		updateLevels: true,
		maxFanouts:   1000,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RunPass executes a single outer pass of spec §4.8's state machine: it
// snapshots a topological order over the current AND population, walks it
// with a cursor that survives deletion of the node it is currently
// inspecting, asks the evaluator for a rewrite at each eligible node,
// commits accepted rewrites via aig.Manager.Replace, and finishes by
// compacting ids, recomputing Level from scratch, and disarming reverse
// levels.
//
// Any error aborts the pass; the Manager is left quiescent with whatever
// rewrites already committed intact (spec §4.8's fail-safe clause).
func (d *Driver) RunPass() error {
	m := d.m
	m.ResetStats()
	maxIDAtStart := m.MaxID()
	topo := m.SnapshotTopoOrder()

	for cur := topo.First(); cur != nil; cur = cur.Next() {
		n := cur.Payload()
		if n == nil || n.Kind() != aig.KindAnd || n.Handled() ||
			n.Persistent() || n.FanoutCount() > d.maxFanouts {
			continue
		}

		if d.updateLevels && !n.Handled() {
			if !d.faninsReady(n) {
				return ErrFaninNotReady
			}
			m.UpdateLevelLazy(n)
		}
		n.SetHandled(true)

		if n.ID() > maxIDAtStart {
			continue // material this pass created; never rewrite it again
		}

		form, ok := d.ev.Evaluate(n, d.minSaved)
		if !ok {
			continue
		}
		if form == nil {
			return ErrNilFactoredForm
		}

		rootLit := form.Materialize(m)
		rootNode := m.NodeOf(rootLit)

		if err := m.Replace(n, rootLit, d.updateLevels); err != nil {
			return err
		}

		if d.updateLevels {
			for _, affected := range d.affectedSet(rootNode, n) {
				m.ReinsertAfterCursor(affected, cur)
			}
		}
	}

	m.Cleanup()
	for _, n := range m.Nodes() {
		n.SetHandled(false)
		n.SetAffected(false)
	}
	m.CompactAndRenumber()
	m.DisarmReverseLevels()

	if err := m.Check(); err != nil {
		return err
	}

	d.logger.Debug().Msg("refactor pass complete")
	return nil
}

// faninsReady reports whether both of n's fanins already satisfy
// UpdateLevelLazy's precondition: already Handled this pass, or a leaf
// (PI/Constant1).
func (d *Driver) faninsReady(n *aig.Node) bool {
	c0, c1 := n.Children()
	return d.faninReady(c0) && d.faninReady(c1)
}

func (d *Driver) faninReady(c aig.Lit) bool {
	f := d.m.NodeOf(c)
	return f.Handled() || f.Kind() == aig.KindPI || f.Kind() == aig.KindConst1
}

// affectedSet performs a postorder DFS from root through its AND fanins,
// stopping at any node that is Handled, already a member of this pass's
// affected set (Node.Affected, spec §4.8 step 3's "topological affected
// set"), a leaf, or boundary itself (the node just replaced). The postorder
// (children before the parents that depend on them) is reversed before it is
// returned, so the result lists parents first. The caller inserts each
// element immediately after the cursor in slice order, which reverses it
// again: forward iteration then visits children before their parents, so by
// the time the cursor reaches a parent, UpdateLevelLazy's precondition on
// its fanins holds.
func (d *Driver) affectedSet(root, boundary *aig.Node) []*aig.Node {
	var order []*aig.Node

	var walk func(n *aig.Node)
	walk = func(n *aig.Node) {
		if n == nil || n == boundary || n.Affected() {
			return
		}
		if n.Kind() != aig.KindAnd || n.Handled() {
			return
		}
		n.SetAffected(true)
		c0, c1 := n.Children()
		walk(d.m.NodeOf(c0))
		walk(d.m.NodeOf(c1))
		order = append(order, n)
	}
	walk(root)

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
