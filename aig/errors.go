package aig

import (
	"errors"
	"fmt"
)

// Sentinel errors for the aig package, grouped by two of the three
// fatal-error families of the replacement engine's contract (see spec §7):
//
//   - ContractViolation: programmer error — re-entering Replace, or (not
//     representable here since Replace takes a *Node rather than a Lit)
//     passing a complemented "old".
//   - InvariantBroken: an internal consistency failure discovered while
//     restoring invariants — a cycle would be created through the mutated
//     node.
//
// The third family, OutOfCapacity, has no sentinel here: none of the
// containers this package builds on (heap, the arena slice, the hash table)
// ever reject a push — they grow instead — so it would never actually be
// returned.
var (
	// ErrReentrantReplace indicates Replace was invoked while another
	// Replace call on the same Manager was still in progress.
	ErrReentrantReplace = errors.New("aig: replace is not re-entrant")

	// ErrCycleWouldForm indicates a fanin swap would create a length-1 or
	// length-2 cycle through the mutated node.
	ErrCycleWouldForm = errors.New("aig: replacement would create a cycle")
)

// CheckViolation describes the first invariant violation Check found.
// Invariant numbers match spec §3 ("AIG-level invariants").
type CheckViolation struct {
	Invariant int
	NodeID    uint32
	Message   string
}

func (v *CheckViolation) Error() string {
	return fmt.Sprintf("aig: invariant %d violated at node %d: %s", v.Invariant, v.NodeID, v.Message)
}
