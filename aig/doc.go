// Package aig implements an incremental, structurally-hashed And-Inverter
// Graph: a DAG of two-input AND nodes and complemented edges over primary
// inputs, with hash-consed construction (And/Or/Xor/Mux/Miter), an atomic
// node-replacement engine that cascades through collisions and garbage
// collects dangling cones, and forward/reverse level maintenance.
//
// Key features:
//   - Structural hashing: And/Or/Xor/Mux never create a duplicate AND node;
//     they return the existing node implementing the same function.
//   - Replace(old, new, updateLevels) atomically substitutes every use of a
//     node, recursively resolving fanout collisions and deleting whatever
//     becomes dangling through its Maximum Fanout-Free Cone.
//   - Level and ReverseLevel stay consistent across Replace via two
//     priority-ordered scheduling heaps (package heap), drained after each
//     top-level call.
//   - Phase and IsExor are recomputed whenever a node's children change.
//
// Concurrency: a Manager is single-threaded and not safe for concurrent use
// from multiple goroutines; Replace is not re-entrant (a cut evaluator may
// not call back into Replace on the same Manager).
//
// Errors: see errors.go for the ContractViolation / InvariantBroken /
// OutOfCapacity taxonomy. EmptyOp conditions (popping an empty heap or list)
// are represented as ordinary (zero, false) returns, not errors.
//
// Complexity:
//
//	And/Or/Xor/Mux/LookupXor/LookupMux: O(1) expected (hash probe) plus the
//	O(1) work of any newly created node.
//	Replace: proportional to the size of the affected fanout cascade and the
//	descendant cone whose levels change; see package heap for the per-step
//	O(log n) scheduling cost.
package aig
