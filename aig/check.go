package aig

import "strconv"

// Check verifies invariants 1-9 of spec §3 and returns the first violation
// found as a *CheckViolation, or nil if the graph is quiescent and
// consistent.
func (m *Manager) Check() error {
	seen := make(map[[2]Lit]uint32)

	for _, n := range m.nodes {
		if n.deleted {
			continue
		}

		switch n.kind {
		case KindAnd:
			if err := m.checkAnd(n, seen); err != nil {
				return err
			}
		case KindPO, KindLatch:
			if err := m.checkFanoutBackref(m.node(n.child0), n); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *Manager) checkAnd(n *Node, seen map[[2]Lit]uint32) error {
	// Invariant 2: no trivial ANDs.
	if n.child0.ID() == n.child1.ID() {
		return &CheckViolation{2, n.id, "child0 and child1 reference the same node"}
	}
	if c0n := m.node(n.child0); c0n.kind == KindConst1 {
		return &CheckViolation{2, n.id, "child0 is a constant literal"}
	}
	if c1n := m.node(n.child1); c1n.kind == KindConst1 {
		return &CheckViolation{2, n.id, "child1 is a constant literal"}
	}

	// Invariant 1: strong structural hashing (no duplicate canonical keys).
	key := [2]Lit{n.child0, n.child1}
	if prior, ok := seen[key]; ok {
		return &CheckViolation{1, n.id, "duplicate canonical key shared with node " + strconv.FormatUint(uint64(prior), 10)}
	}
	seen[key] = n.id

	// Invariant 4 (proxy): child levels strictly less than parent level.
	c0n, c1n := m.node(n.child0), m.node(n.child1)
	if !(c0n.level < n.level) || !(c1n.level < n.level) {
		return &CheckViolation{4, n.id, "child level not strictly less than parent level"}
	}

	// Invariant 5: fanout correctness.
	if err := m.checkFanoutBackref(c0n, n); err != nil {
		return err
	}
	if err := m.checkFanoutBackref(c1n, n); err != nil {
		return err
	}

	// Invariant 6: no dangling AND nodes.
	if len(n.fanouts) == 0 {
		return &CheckViolation{6, n.id, "AND node has zero fanouts"}
	}

	// Invariant 7: level correctness.
	wantLevel := 1 + max32(c0n.level, c1n.level)
	if n.level != wantLevel {
		return &CheckViolation{7, n.id, "stale Level"}
	}

	// Invariant 8: reverse-level correctness, only while armed.
	if m.reverseArmed {
		if n.reverseLevel != computeReverseLevel(n) {
			return &CheckViolation{8, n.id, "stale ReverseLevel"}
		}
	}

	// Invariant 9: phase/EXOR freshness.
	wantPhase := (c0n.phase != n.child0.IsComplement()) && (c1n.phase != n.child1.IsComplement())
	if n.phase != wantPhase {
		return &CheckViolation{9, n.id, "stale Phase"}
	}
	wantExor := n.isExor
	refreshIsExor(m, n)
	gotExor := n.isExor
	n.isExor = wantExor
	if gotExor != wantExor {
		return &CheckViolation{9, n.id, "stale IsExor"}
	}

	return nil
}

// checkFanoutBackref verifies invariant 5: p appears in c.fanouts exactly
// once.
func (m *Manager) checkFanoutBackref(c, p *Node) error {
	count := 0
	for _, f := range c.fanouts {
		if f == p {
			count++
		}
	}
	if count != 1 {
		return &CheckViolation{5, c.id, "expected exactly one fanout back-reference"}
	}
	return nil
}
