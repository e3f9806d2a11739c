package aig

import "github.com/gologic/lsynth/topolist"

// Kind identifies the role a Node plays in the network.
type Kind uint8

const (
	// KindConst1 is the single always-true object living at id 0.
	KindConst1 Kind = iota
	// KindPI is a primary input; Level and Phase are always 0/false.
	KindPI
	// KindPO is a primary output; its single child is the driving literal.
	KindPO
	// KindLatch is a latch boundary, handled exactly like a PO: its single
	// child is the driving literal (see fanins).
	KindLatch
	// KindAnd is a two-input AND node, the only kind structural hashing
	// and replacement ever create or mutate.
	KindAnd
)

// Lit is a literal: a node identity paired with a complement bit, encoded as
// a tagged integer (id in the high bits, complement in bit 0). This mirrors
// the "tagged pointer/integer" encoding called out in spec §9; consistency
// of the encoding matters more than the specific choice.
type Lit uint32

// mkLit builds the literal for node id with the given complement bit.
func mkLit(id uint32, compl bool) Lit {
	l := Lit(id) << 1
	if compl {
		l |= 1
	}
	return l
}

// ID returns the identity of the node this literal refers to, ignoring
// complementation.
func (l Lit) ID() uint32 {
	return uint32(l) >> 1
}

// IsComplement reports whether this literal's complement bit is set.
func (l Lit) IsComplement() bool {
	return uint32(l)&1 != 0
}

// Not returns the complement of l (same node, opposite polarity).
func (l Lit) Not() Lit {
	return l ^ 1
}

// Regular returns l with its complement bit cleared.
func (l Lit) Regular() Lit {
	return l &^ 1
}

// withExtraCompl XORs an additional complement bit onto l, used when an
// edge's own complement must be folded into a substituted literal.
func withExtraCompl(l Lit, extra bool) Lit {
	if extra {
		return l ^ 1
	}
	return l
}

// Node is a single object in the AIG arena: a primary input, primary output,
// latch boundary, the constant-1 object, or a two-input AND. Identity (id)
// is monotonically assigned and stable until deletion; ids are not reused
// until Manager.CompactAndRenumber, which reassigns the ids of all live
// nodes and restarts numbering after them.
//
// fanouts is a non-owning mirror index: the arena (Manager.nodes) owns the
// Node, and fanouts/hash-bucket/heap/topolist references are all back-links
// keyed by pointer or id, never ownership (spec §9, "Cyclic concerns").
type Node struct {
	id   uint32
	kind Kind

	// child0/child1 are valid for KindAnd (both inputs) and for KindPO /
	// KindLatch (child0 only: the driving literal). Unused for KindPI and
	// KindConst1.
	child0 Lit
	child1 Lit

	level        uint32
	reverseLevel uint32
	phase        bool
	isExor       bool

	fanouts []*Node // nodes/POs with an edge *from* this node

	nextInBucket *Node // intrusive hash-bucket link; only meaningful for KindAnd

	topoHandle *topolist.Handle[*Node]

	markA      bool // scheduled in the forward-level heap
	markB      bool // scheduled in the reverse-level heap
	markC      bool // member of the driver's topological-affected set
	handled    bool // the refactoring driver has processed this node once
	persistent bool // never offered to the refactoring driver for rewriting

	deleted bool // became dangling and was garbage collected
}

// ID returns the node's stable identity.
func (n *Node) ID() uint32 { return n.id }

// Kind returns the node's role in the network.
func (n *Node) Kind() Kind { return n.kind }

// Level returns the node's forward level (longest path from any PI).
func (n *Node) Level() uint32 { return n.level }

// ReverseLevel returns the node's reverse level (longest path to any PO).
// Only meaningful while reverse levels are armed; see Manager.ArmReverseLevels.
func (n *Node) ReverseLevel() uint32 { return n.reverseLevel }

// Phase returns the node's value under the all-zero primary-input assignment.
func (n *Node) Phase() bool { return n.phase }

// IsExor reports whether this AND is the root of a canonical two-AND XOR pattern.
func (n *Node) IsExor() bool { return n.isExor }

// Deleted reports whether this node has been garbage collected.
func (n *Node) Deleted() bool { return n.deleted }

// Persistent reports whether the refactoring driver is forbidden from
// offering this node for rewriting.
func (n *Node) Persistent() bool { return n.persistent }

// SetPersistent marks or unmarks n as exempt from rewriting.
func (n *Node) SetPersistent(p bool) { n.persistent = p }

// Handled reports whether the driver has processed this node once in the
// current pass.
func (n *Node) Handled() bool { return n.handled }

// SetHandled marks or unmarks n as processed for the current driver pass.
// Handled is otherwise only ever cleared internally, by deleteDangling.
func (n *Node) SetHandled(h bool) { n.handled = h }

// Affected reports whether n has already been placed into the driver's
// topological affected set during the current pass.
func (n *Node) Affected() bool { return n.markC }

// SetAffected marks or unmarks n as a member of the driver's topological
// affected set, so a node already re-threaded into the pass's work order is
// never queued into it a second time.
func (n *Node) SetAffected(a bool) { n.markC = a }

// FanoutCount returns the number of live edges pointing at n.
func (n *Node) FanoutCount() int { return len(n.fanouts) }

// Fanouts returns a read-only snapshot of n's fanout list.
func (n *Node) Fanouts() []*Node {
	out := make([]*Node, len(n.fanouts))
	copy(out, n.fanouts)
	return out
}

// TopoHandle returns the node's position in the driver's persistent
// topological order, or nil if it was never inserted.
func (n *Node) TopoHandle() *topolist.Handle[*Node] { return n.topoHandle }

// Driver returns the single driving literal of a KindPO or KindLatch node.
func (n *Node) Driver() Lit { return n.child0 }

// Children returns the two input literals of a KindAnd node.
func (n *Node) Children() (Lit, Lit) { return n.child0, n.child1 }

// removeFanoutEntry deletes one occurrence of f from n.fanouts.
func removeFanoutEntry(n *Node, f *Node) {
	for i, x := range n.fanouts {
		if x == f {
			last := len(n.fanouts) - 1
			n.fanouts[i] = n.fanouts[last]
			n.fanouts = n.fanouts[:last]
			return
		}
	}
}

// addFanoutEntry appends f to n.fanouts.
func addFanoutEntry(n *Node, f *Node) {
	n.fanouts = append(n.fanouts, f)
}

// fanins returns the regular (complement-stripped) fanin nodes of n: both
// children for KindAnd, the single driver for KindPO/KindLatch, and none
// for KindPI/KindConst1.
func fanins(m *Manager, n *Node) []*Node {
	switch n.kind {
	case KindAnd:
		return []*Node{m.node(n.child0), m.node(n.child1)}
	case KindPO, KindLatch:
		return []*Node{m.node(n.child0)}
	default:
		return nil
	}
}
