// Package heap implements a generic, array-backed binary min-heap keyed by
// a floating-point priority. It underlies the forward- and reverse-level
// scheduling queues of package aig: nodes are pushed with their (possibly
// stale) level as priority and drained in ascending order, with staleness
// checked by the caller rather than by the heap itself.
//
// Key features:
//   - Push/PopMin/PeekMin/Len/Clear, O(log n) push and pop.
//   - No stable identity and no decrease-key: a payload can be pushed more
//     than once; callers that need "still relevant?" semantics carry their
//     own validity flag on the payload (see aig.Node's scratch marks).
//   - Capacity doubles on overflow; ties between equal priorities are
//     broken arbitrarily.
//
// Complexity:
//
//	Time:   O(log n) for Push and PopMin, O(1) for PeekMin and Len.
//	Memory: O(n).
package heap
