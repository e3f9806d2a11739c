package aig

import "time"

// Replace atomically substitutes every use of old (which, being a *Node
// rather than a possibly-complemented Lit, is structurally guaranteed to be
// "regular" per spec §4.6) by newLit, deleting whatever becomes dangling
// through its Maximum Fanout-Free Cone. On return every invariant of spec
// §3 holds, including levels when updateLevels is true.
//
// Replace is not re-entrant: calling it while another Replace on the same
// Manager is still in progress (for example from a WithUpdatedNetsObserver
// callback) returns ErrReentrantReplace.
func (m *Manager) Replace(old *Node, newLit Lit, updateLevels bool) error {
	if m.inReplace {
		return ErrReentrantReplace
	}

	// replace(x, x, _) is a documented no-op (spec §8 round-trip laws).
	if newLit == mkLit(old.id, false) {
		return nil
	}

	m.inReplace = true
	defer func() { m.inReplace = false }()

	start := time.Now()

	m.pendingOld = append(m.pendingOld, old)
	m.pendingNew = append(m.pendingNew, newLit)
	m.pendingNewRefs[newLit.ID()]++

	var err error
	for len(m.pendingOld) > 0 {
		o, n := m.popPending()
		if o.deleted || len(o.fanouts) == 0 {
			continue // already dangling; skip (spec §4.6)
		}
		if err = m.splice(o, n, updateLevels); err != nil {
			break
		}
	}

	if err != nil {
		m.clearPending()
		return err
	}

	if updateLevels {
		m.drainForwardHeap()
		m.drainReverseHeap()
	}

	m.stats.Elapsed += time.Since(start)

	m.logger.Debug().
		Int("node_rewritten", m.stats.NodesRewritten).
		Int("level_updates", m.stats.LevelUpdates).
		Int("reverse_updates", m.stats.ReverseUpdates).
		Dur("elapsed", m.stats.Elapsed).
		Msg("aig replace")

	return nil
}

// popPending pops the top (old, new) pair, keeping pendingNewRefs in
// lock-step.
func (m *Manager) popPending() (*Node, Lit) {
	n := len(m.pendingOld) - 1
	o, lit := m.pendingOld[n], m.pendingNew[n]
	m.pendingOld = m.pendingOld[:n]
	m.pendingNew = m.pendingNew[:n]
	m.pendingNewRefs[lit.ID()]--
	if m.pendingNewRefs[lit.ID()] <= 0 {
		delete(m.pendingNewRefs, lit.ID())
	}
	return o, lit
}

// pushPending pushes a cascaded (old, new) pair.
func (m *Manager) pushPending(o *Node, n Lit) {
	m.pendingOld = append(m.pendingOld, o)
	m.pendingNew = append(m.pendingNew, n)
	m.pendingNewRefs[n.ID()]++
}

// clearPending empties both stacks, e.g. after an aborted replacement, so
// the Manager is quiescent for the next public call (spec §5).
func (m *Manager) clearPending() {
	for len(m.pendingNew) > 0 {
		m.pendingNew = m.pendingNew[:len(m.pendingNew)-1]
	}
	m.pendingOld = m.pendingOld[:0]
	m.pendingNew = m.pendingNew[:0]
	for k := range m.pendingNewRefs {
		delete(m.pendingNewRefs, k)
	}
}

// isPendingNew reports whether n is currently referenced by a pending
// replacement target (spec §4.6's deletion-suppression rule).
func (m *Manager) isPendingNew(n *Node) bool {
	return m.pendingNewRefs[n.id] > 0
}

// splice processes a single (o, n) pair: every current fanout of o is
// snapshotted and either patched (CO fanout), mutated in place (AND fanout,
// no collision), or cascaded (AND fanout, collision). Afterward o is
// garbage collected if it became dangling.
func (m *Manager) splice(o *Node, n Lit, updateLevels bool) error {
	snapshot := make([]*Node, len(o.fanouts))
	copy(snapshot, o.fanouts)

	for _, f := range snapshot {
		if f.deleted {
			continue
		}

		switch f.kind {
		case KindPO, KindLatch:
			m.spliceCO(o, f, n, updateLevels)

		case KindAnd:
			if err := m.spliceAnd(o, f, n, updateLevels); err != nil {
				return err
			}
		}
	}

	if !o.deleted && len(o.fanouts) == 0 && !m.isPendingNew(o) {
		m.deleteDangling(o)
	}

	return nil
}

// spliceCO patches a primary-output or latch-boundary fanout's single input
// to point at n, inheriting the edge's own complement bit.
func (m *Manager) spliceCO(o, f *Node, n Lit, updateLevels bool) {
	edgeCompl := f.child0.IsComplement()
	newLit := withExtraCompl(n, edgeCompl)

	removeFanoutEntry(o, f)
	f.child0 = newLit
	addFanoutEntry(m.node(newLit), f)

	if updateLevels && m.reverseArmed {
		target := m.node(newLit)
		target.reverseLevel = o.reverseLevel
		m.pushReverse(target)
	}
}

// spliceAnd processes one AND fanout of o: it computes the would-be new
// literal pair, looks it up in the hash table, and either cascades (on
// collision) or mutates f in place (spec §4.6).
func (m *Manager) spliceAnd(o, f *Node, n Lit, updateLevels bool) error {
	slot0 := f.child0.ID() == o.id
	var edgeLit, other Lit
	if slot0 {
		edgeLit, other = f.child0, f.child1
	} else {
		edgeLit, other = f.child1, f.child0
	}
	nPrime := withExtraCompl(n, edgeLit.IsComplement())

	if existing, collide := m.lookupAnd(nPrime, other); collide {
		m.pushPending(f, existing)
		return nil
	}

	if m.createsShortCycle(f, nPrime) || m.createsShortCycle(f, other) {
		return ErrCycleWouldForm
	}

	m.hashRemove(f)
	removeFanoutEntry(m.node(f.child0), f)
	removeFanoutEntry(m.node(f.child1), f)

	f.child0, f.child1 = canonicalize(nPrime, other)
	c0n, c1n := m.node(f.child0), m.node(f.child1)
	addFanoutEntry(c0n, f)
	addFanoutEntry(c1n, f)
	m.hashInsert(f)

	refreshPhase(f, c0n, c1n, f.child0, f.child1)
	refreshIsExor(m, f)

	m.stats.NodesRewritten++
	if m.onUpdatedNet != nil {
		m.onUpdatedNet(f)
	}

	if updateLevels {
		newLevel := 1 + max32(c0n.level, c1n.level)
		if newLevel != f.level {
			f.level = newLevel
			m.stats.LevelUpdates++
			m.pushForward(f)
		}
		// f's fanin set changed, so its new children have a new AND fanout:
		// schedule f in the reverse heap so drainReverseHeap recomputes
		// ReverseLevel(c0n)/ReverseLevel(c1n) from f's current level.
		m.pushReverse(f)
	}

	for _, ff := range f.fanouts {
		refreshIsExor(m, ff)
	}

	return nil
}

// createsShortCycle reports whether using x as a fanin of f would create a
// length-1 (self-loop) or length-2 (dyadic) cycle through f (spec §4.6).
func (m *Manager) createsShortCycle(f *Node, x Lit) bool {
	xn := m.node(x)
	if xn == f {
		return true
	}
	if xn.kind == KindAnd {
		if m.node(xn.child0) == f || m.node(xn.child1) == f {
			return true
		}
	}
	return false
}

// deleteDangling garbage collects a fanout-less AND node and recursively
// any fanin that becomes dangling as a result, per spec §4.5. It returns
// the number of nodes actually deleted (0 if x was exempted because it is a
// pending replacement target).
func (m *Manager) deleteDangling(x *Node) int {
	if x.kind != KindAnd || x.deleted || len(x.fanouts) != 0 {
		return 0
	}
	if m.isPendingNew(x) {
		return 0
	}

	m.hashRemove(x)
	c0n, c1n := m.node(x.child0), m.node(x.child1)
	removeFanoutEntry(c0n, x)
	removeFanoutEntry(c1n, x)

	if x.topoHandle != nil && m.topo != nil {
		m.topo.Remove(x.topoHandle)
		x.topoHandle = nil
	}

	x.deleted = true
	x.markA, x.markB, x.markC, x.handled = false, false, false, false

	m.prunePendingForDeletedNode(x)

	count := 1
	if c0n.kind == KindAnd && len(c0n.fanouts) == 0 {
		count += m.deleteDangling(c0n)
	} else {
		m.recomputeReverseLevelNow(c0n)
	}
	if c1n != c0n {
		if c1n.kind == KindAnd && len(c1n.fanouts) == 0 {
			count += m.deleteDangling(c1n)
		} else {
			m.recomputeReverseLevelNow(c1n)
		}
	}

	return count
}

// recomputeReverseLevelNow directly recomputes n's reverse level outside the
// usual fanin-driven propagation in drainReverseHeap: deletion removes a
// fanout edge from n without ever popping n's former fanout out of the
// reverse heap, so nothing else would notice n's ReverseLevel went stale
// (spec §8 scenario 5). Any further upstream propagation is then handed back
// to the reverse heap via pushReverse.
func (m *Manager) recomputeReverseLevelNow(n *Node) {
	if !m.reverseArmed || n.kind != KindAnd || n.deleted {
		return
	}
	newRL := computeReverseLevel(n)
	if newRL == n.reverseLevel {
		return
	}
	n.reverseLevel = newRL
	m.stats.ReverseUpdates++
	m.pushReverse(n)
}

// prunePendingForDeletedNode removes every pending (old, new) pair whose
// old is x: x became dangling before it was popped, so replacing it is now
// meaningless (spec §4.6).
func (m *Manager) prunePendingForDeletedNode(x *Node) {
	keptOld := m.pendingOld[:0:0]
	keptNew := m.pendingNew[:0:0]
	for i, o := range m.pendingOld {
		if o == x {
			lit := m.pendingNew[i]
			m.pendingNewRefs[lit.ID()]--
			if m.pendingNewRefs[lit.ID()] <= 0 {
				delete(m.pendingNewRefs, lit.ID())
			}
			continue
		}
		keptOld = append(keptOld, o)
		keptNew = append(keptNew, m.pendingNew[i])
	}
	m.pendingOld = keptOld
	m.pendingNew = keptNew
}
