package aig

// pushForward schedules n for forward-level propagation, unless it is
// already scheduled (spec §4.7: "push q with MarkA, unless already marked").
func (m *Manager) pushForward(n *Node) {
	if n.markA {
		return
	}
	n.markA = true
	m.fwdHeap.Push(n, float32(n.level))
}

// pushReverse schedules n for reverse-level propagation, unless it is
// already scheduled.
func (m *Manager) pushReverse(n *Node) {
	if !m.reverseArmed {
		return
	}
	if n.markB {
		return
	}
	n.markB = true
	m.revHeap.Push(n, float32(n.reverseLevel))
}

// drainForwardHeap implements spec §4.7's forward pass: pop in ascending
// level order, skip stale entries, and propagate level growth/shrink to AND
// fanouts whose own level must then be recomputed.
func (m *Manager) drainForwardHeap() {
	for m.fwdHeap.Len() > 0 {
		p, _, ok := m.fwdHeap.PopMin()
		if !ok {
			break
		}
		if !p.markA {
			continue // stale entry
		}
		p.markA = false

		for _, q := range p.fanouts {
			if q.kind != KindAnd || q.deleted {
				continue
			}
			newLevel := 1 + max32(m.node(q.child0).level, m.node(q.child1).level)
			if newLevel == q.level {
				continue
			}
			q.level = newLevel
			m.stats.LevelUpdates++
			if !q.markA {
				q.markA = true
				m.fwdHeap.Push(q, float32(newLevel))
			}
		}
	}
}

// drainReverseHeap implements spec §4.7's reverse pass: pop in ascending
// reverse-level order, and for each popped node recompute the reverse level
// of its AND fanins from their own fanouts.
func (m *Manager) drainReverseHeap() {
	if !m.reverseArmed {
		m.revHeap.Clear()
		return
	}

	for m.revHeap.Len() > 0 {
		p, _, ok := m.revHeap.PopMin()
		if !ok {
			break
		}
		if !p.markB {
			continue // stale entry
		}
		p.markB = false

		for _, f := range fanins(m, p) {
			if f.kind != KindAnd || f.deleted {
				continue
			}
			newRL := computeReverseLevel(f)
			if newRL == f.reverseLevel {
				continue
			}
			f.reverseLevel = newRL
			m.stats.ReverseUpdates++
			if !f.markB {
				f.markB = true
				m.revHeap.Push(f, float32(newRL))
			}
		}
	}
}

// UpdateLevelLazy recomputes n's level from exactly its two fanins,
// assuming both are already settled (the refactoring driver enforces this
// by asserting Handled on both fanins before calling this; spec §9).
func (m *Manager) UpdateLevelLazy(n *Node) {
	if n.kind != KindAnd {
		return
	}
	n.level = 1 + max32(m.node(n.child0).level, m.node(n.child1).level)
}
