package aig

import (
	"github.com/rs/zerolog"

	"github.com/gologic/lsynth/heap"
	"github.com/gologic/lsynth/topolist"
)

// Manager owns the AIG arena, the structural hash table, the two
// replacement work stacks, and the forward/reverse scheduling heaps (spec
// §5). Replace empties both stacks before it returns, on success and on
// error. The heaps are drained at the end of a successful Replace with
// updateLevels set and at the end of Cleanup; entries queued by a Replace
// that fails or runs without updateLevels stay in the heaps until the next
// draining call. No public call checks on entry that the stacks and heaps
// are empty.
//
// The zero value is not usable; construct with NewManager.
type Manager struct {
	nodes  []*Node // arena: nodes[id] == the Node with that id
	nextID uint32

	hash *hashTable

	reverseArmed bool

	fwdHeap *heap.Heap[*Node]
	revHeap *heap.Heap[*Node]

	pendingOld     []*Node
	pendingNew     []Lit
	pendingNewRefs map[uint32]int // node id -> count of pending_new entries referencing it

	inReplace bool

	stats Stats

	logger zerolog.Logger
	topo   *topolist.List[*Node]

	onAddedCell  func(*Node)
	onUpdatedNet func(*Node)
}

// NewManager constructs an empty Manager over a fresh network containing
// one Constant1 object at slot 0 (spec §6, manager_new).
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		hash:           newHashTable(),
		fwdHeap:        heap.New[*Node](16),
		revHeap:        heap.New[*Node](16),
		pendingNewRefs: make(map[uint32]int),
		logger:         zerolog.Nop(),
	}

	const1 := &Node{id: 0, kind: KindConst1, phase: true}
	m.nodes = append(m.nodes, const1)
	m.nextID = 1

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// node resolves a literal to its underlying Node.
func (m *Manager) node(l Lit) *Node {
	return m.nodes[l.ID()]
}

// NodeOf resolves a literal to its underlying Node, ignoring complement.
// Replace takes a *Node (rather than a Lit) precisely so that a complemented
// "old" is a type error, not a runtime ContractViolation.
func (m *Manager) NodeOf(l Lit) *Node {
	return m.nodes[l.ID()]
}

// Const1 returns the literal for the always-true constant.
func (m *Manager) Const1() Lit {
	return mkLit(0, false)
}

// falseLit returns the literal for the always-false constant.
func (m *Manager) falseLit() Lit {
	return mkLit(0, true)
}

// CreatePI allocates a fresh primary input and returns its literal.
func (m *Manager) CreatePI() Lit {
	n := &Node{id: m.nextID, kind: KindPI}
	m.nextID++
	m.nodes = append(m.nodes, n)
	return mkLit(n.id, false)
}

// CreatePO allocates a primary output driven by lit and returns it. The PO
// is registered as a fanout of lit's regular node.
func (m *Manager) CreatePO(lit Lit) *Node {
	n := &Node{id: m.nextID, kind: KindPO, child0: lit}
	m.nextID++
	m.nodes = append(m.nodes, n)
	addFanoutEntry(m.node(lit), n)
	return n
}

// CreateLatch allocates a latch boundary driven by lit, exactly like
// CreatePO but tagged KindLatch (spec §3, Node.Kind). Replacement, level
// and reverse-level maintenance, and Check all handle a KindLatch node the
// same way as a KindPO node.
func (m *Manager) CreateLatch(lit Lit) *Node {
	n := &Node{id: m.nextID, kind: KindLatch, child0: lit}
	m.nextID++
	m.nodes = append(m.nodes, n)
	addFanoutEntry(m.node(lit), n)
	return n
}

// And returns the literal for a ∧ b, reusing an existing node if the
// structural hash table already has one (spec §4.5).
func (m *Manager) And(a, b Lit) Lit {
	if lit, ok := m.lookupAnd(a, b); ok {
		return lit
	}
	return m.createAnd(a, b)
}

// createAnd allocates a brand-new AND node for the (already non-trivial,
// not-yet-hashed) pair a, b.
func (m *Manager) createAnd(a, b Lit) Lit {
	c0, c1 := canonicalize(a, b)
	n := &Node{id: m.nextID, kind: KindAnd, child0: c0, child1: c1}
	m.nextID++
	m.nodes = append(m.nodes, n)

	c0n, c1n := m.node(c0), m.node(c1)
	n.level = 1 + max32(c0n.level, c1n.level)
	addFanoutEntry(c0n, n)
	addFanoutEntry(c1n, n)

	refreshPhase(n, c0n, c1n, c0, c1)
	refreshIsExor(m, n)

	m.hashInsert(n)

	if m.onAddedCell != nil {
		m.onAddedCell(n)
	}

	return mkLit(n.id, false)
}

// Or returns the literal for a ∨ b := ¬(¬a ∧ ¬b).
func (m *Manager) Or(a, b Lit) Lit {
	return m.And(a.Not(), b.Not()).Not()
}

// Xor returns the literal for a ⊕ b := or(and(a, ¬b), and(¬a, b)).
func (m *Manager) Xor(a, b Lit) Lit {
	return m.Or(m.And(a, b.Not()), m.And(a.Not(), b))
}

// Mux returns the literal for ite(c, t, e) := or(and(c, t), and(¬c, e)).
func (m *Manager) Mux(c, t, e Lit) Lit {
	return m.Or(m.And(c, t), m.And(c.Not(), e))
}

// Miter builds a balanced-binary-reduced comparison over pairs. If implic is
// true each pair contributes and(x, ¬y) (x implies y fails); otherwise each
// contributes xor(x, y) (x differs from y). The pairwise terms are then
// folded with Or using a balanced binary tree, matching spec §4.5.
func (m *Manager) Miter(pairs [][2]Lit, implic bool) Lit {
	if len(pairs) == 0 {
		return m.falseLit()
	}

	terms := make([]Lit, len(pairs))
	for i, p := range pairs {
		if implic {
			terms[i] = m.And(p[0], p[1].Not())
		} else {
			terms[i] = m.Xor(p[0], p[1])
		}
	}

	return m.balancedOr(terms)
}

func (m *Manager) balancedOr(terms []Lit) Lit {
	if len(terms) == 1 {
		return terms[0]
	}
	mid := len(terms) / 2
	left := m.balancedOr(terms[:mid])
	right := m.balancedOr(terms[mid:])
	return m.Or(left, right)
}

// LookupXor is a pure query: it returns the existing node implementing
// a ⊕ b via the canonical or-of-ands pattern, without creating anything.
func (m *Manager) LookupXor(a, b Lit) (Lit, bool) {
	n1, ok := m.lookupAnd(a, b.Not())
	if !ok {
		return 0, false
	}
	n2, ok := m.lookupAnd(a.Not(), b)
	if !ok {
		return 0, false
	}
	n3, ok := m.lookupAnd(n1.Not(), n2.Not())
	if !ok {
		return 0, false
	}
	return n3.Not(), true
}

// LookupMux is a pure query: it returns the existing node implementing
// ite(c, t, e), without creating anything.
func (m *Manager) LookupMux(c, t, e Lit) (Lit, bool) {
	n1, ok := m.lookupAnd(c, t)
	if !ok {
		return 0, false
	}
	n2, ok := m.lookupAnd(c.Not(), e)
	if !ok {
		return 0, false
	}
	n3, ok := m.lookupAnd(n1.Not(), n2.Not())
	if !ok {
		return 0, false
	}
	return n3.Not(), true
}

// Cleanup removes every currently-dangling AND node and returns the count
// removed.
func (m *Manager) Cleanup() int {
	count := 0
	for _, n := range m.nodes {
		if n.kind == KindAnd && !n.deleted && len(n.fanouts) == 0 {
			count += m.deleteDangling(n)
		}
	}
	// Deletion may have scheduled surviving fanins for reverse-level repair.
	m.drainReverseHeap()
	return count
}

// ArmReverseLevels enables ReverseLevel maintenance. Existing values are
// recomputed from scratch in reverse topological order. Child ids are not
// guaranteed to be smaller than their parent's id (only levels are
// ordered), so this walks nodes by descending Level rather than by id.
func (m *Manager) ArmReverseLevels() {
	m.reverseArmed = true

	order := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		if n.kind == KindAnd && !n.deleted {
			order = append(order, n)
		}
	}
	// Sort by descending level so every node's AND fanouts are already
	// finalized before it is computed (fanouts always have a strictly
	// greater level than their fanins).
	insertionSortByLevelDesc(order)

	for _, n := range order {
		n.reverseLevel = computeReverseLevel(n)
	}
}

// DisarmReverseLevels stops reverse-level maintenance. Values are left in
// place but are no longer meaningful per spec §3.
func (m *Manager) DisarmReverseLevels() {
	m.reverseArmed = false
}

func computeReverseLevel(n *Node) uint32 {
	var rl uint32
	for _, f := range n.fanouts {
		if f.kind == KindAnd && f.reverseLevel+1 > rl {
			rl = f.reverseLevel + 1
		}
	}
	return rl
}

// insertionSortByLevelDesc sorts nodes so that higher-level (closer to
// outputs) nodes come first, ensuring each node's AND fanouts are finalized
// before ArmReverseLevels computes it.
func insertionSortByLevelDesc(nodes []*Node) {
	for i := 1; i < len(nodes); i++ {
		j := i
		for j > 0 && nodes[j-1].level < nodes[j].level {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
			j--
		}
	}
}

// refreshPhase recomputes n.phase from its (possibly just-changed) children.
func refreshPhase(n *Node, c0n, c1n *Node, c0, c1 Lit) {
	p0 := c0n.phase != c0.IsComplement()
	p1 := c1n.phase != c1.IsComplement()
	n.phase = p0 && p1
}

// refreshIsExor recomputes n.isExor per spec §3 invariant 9: n is the root
// of a canonical two-AND XOR pattern iff both its children are complemented
// AND nodes whose own children are the same underlying pair with opposite
// complement patterns -- i.e. n implements or(and(x,¬y), and(¬x,y)) via
// De Morgan's ¬(¬and1 ∧ ¬and2).
func refreshIsExor(m *Manager, n *Node) {
	n.isExor = false
	if n.kind != KindAnd {
		return
	}
	if !n.child0.IsComplement() || !n.child1.IsComplement() {
		return
	}
	a1, a2 := m.node(n.child0), m.node(n.child1)
	if a1.kind != KindAnd || a2.kind != KindAnd {
		return
	}
	x0, x1 := a1.child0, a1.child1
	y0, y1 := a2.child0, a2.child1
	if x0.ID() == y0.ID() && x1.ID() == y1.ID() &&
		x0.IsComplement() != y0.IsComplement() &&
		x1.IsComplement() != y1.IsComplement() {
		n.isExor = true
	}
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
