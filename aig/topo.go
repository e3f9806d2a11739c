package aig

import (
	"sort"

	"github.com/gologic/lsynth/topolist"
)

// SnapshotTopoOrder builds a fresh topological list over every currently
// live AND node in ascending id order and installs it as the Manager's
// active list: deleteDangling keeps each node's TopoHandle in sync with it
// as the list's owner (typically the refactoring driver) mutates the graph.
// The returned list is also handed back so the caller can walk it with its
// own cursor (spec §4.8, step 1).
func (m *Manager) SnapshotTopoOrder() *topolist.List[*Node] {
	t := topolist.New[*Node]()
	for _, n := range m.nodes {
		if n.kind == KindAnd && !n.deleted {
			n.topoHandle = t.PushBack(n)
		}
	}
	m.topo = t
	return t
}

// ReinsertAfterCursor places n immediately after cursor in the Manager's
// active topological list, detaching n's existing handle first if it has
// one. This is how the refactoring driver commits the "topological affected
// set" of spec §4.8 step 3: newly relevant or newly created predecessors of
// a rewritten node become visible to the rest of the current pass.
func (m *Manager) ReinsertAfterCursor(n *Node, cursor *topolist.Handle[*Node]) {
	if m.topo == nil {
		return
	}
	if n.topoHandle != nil {
		m.topo.Remove(n.topoHandle)
	}
	n.topoHandle = m.topo.InsertAfter(cursor, n)
}

// MaxID returns the id of the most recently created node, or 0 if only the
// constant exists. The refactoring driver uses this to distinguish material
// a pass created from what it started with (spec §4.8 step 1).
func (m *Manager) MaxID() uint32 {
	if len(m.nodes) == 0 {
		return 0
	}
	return uint32(len(m.nodes)) - 1
}

// Nodes returns every live node, of any kind, in ascending id order. This is
// a whole-graph escape hatch for consumers like the refactoring driver that
// need to walk or reset scratch state outside the incremental API.
func (m *Manager) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		if !n.deleted {
			out = append(out, n)
		}
	}
	return out
}

// CompactAndRenumber reassigns every live node's id into a fresh topological
// order and recomputes Level from scratch (spec §4.8 step 4, "reassign node
// ids into DFS order; recompute Level from scratch"). It uses an
// ascending-Level sort rather than an explicit DFS walk: invariant 7
// guarantees every AND's children already have a strictly smaller level, so
// sorting by (Level, original id) yields a valid topological compaction with
// none of a recursive walk's stack depth.
//
// Deleted nodes are dropped from the id space entirely, reclaiming it.
// The active topological list is detached; whether reverse levels are armed
// is left unchanged (the driver disarms them separately).
func (m *Manager) CompactAndRenumber() {
	var pis, ands, outs []*Node
	var const1 *Node

	for _, n := range m.nodes {
		if n.deleted {
			continue
		}
		switch n.kind {
		case KindConst1:
			const1 = n
		case KindPI:
			pis = append(pis, n)
		case KindAnd:
			ands = append(ands, n)
		case KindPO, KindLatch:
			outs = append(outs, n)
		}
	}

	sort.SliceStable(ands, func(i, j int) bool { return ands[i].level < ands[j].level })

	order := make([]*Node, 0, 1+len(pis)+len(ands)+len(outs))
	order = append(order, const1)
	order = append(order, pis...)
	order = append(order, ands...)
	order = append(order, outs...)

	oldToNew := make(map[uint32]uint32, len(order))
	for newID, n := range order {
		oldToNew[n.id] = uint32(newID)
	}

	remap := func(l Lit) Lit { return mkLit(oldToNew[l.ID()], l.IsComplement()) }

	for _, n := range order {
		switch n.kind {
		case KindAnd:
			n.child0, n.child1 = canonicalize(remap(n.child0), remap(n.child1))
		case KindPO, KindLatch:
			n.child0 = remap(n.child0)
		}
	}

	for newID, n := range order {
		n.id = uint32(newID)
		n.topoHandle = nil
	}

	m.nodes = order
	m.nextID = uint32(len(order))
	m.topo = nil

	m.hash = newHashTable()
	for _, n := range ands {
		m.hashInsert(n)
	}

	for _, n := range ands {
		n.level = 1 + max32(m.node(n.child0).level, m.node(n.child1).level)
	}
}
