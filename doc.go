// Package lsynth is a workbench for incremental, structurally-hashed
// And-Inverter Graphs in Go.
//
// What is lsynth?
//
//	A small, composable toolkit built around:
//
//	  • aig:      hash-consed AND-Inverter Graph construction, structural
//	              lookup (AND/XOR/MUX), atomic Replace with cascading
//	              collision cleanup, and incrementally maintained forward
//	              and reverse logic levels.
//	  • refactor: a driver that repeatedly asks an external CutEvaluator for
//	              improving local rewrites and commits them one forward
//	              pass at a time.
//	  • topolist: a persistent, generic topological list whose Remove
//	              leaves a tombstone so external cursors survive deletion
//	              of the node they are parked on.
//	  • heap:     a small generic min-heap used to schedule forward/reverse
//	              level propagation.
//
// Why choose lsynth?
//
//   - Hash-consed — structurally identical subgraphs always share one node
//   - Incremental — Replace repairs levels and deletes dangling cones
//     without a full graph rebuild
//   - Extensible  — CutEvaluator and FactoredForm are the only interfaces a
//     caller must implement to plug in a rewrite engine
//   - Pure Go     — generics-based, no cgo
//
// Quick example:
//
//	m := aig.NewManager()
//	a, b := m.CreatePI(), m.CreatePI()
//	n := m.And(a, b)
//	m.CreatePO(n)
//
// See SPEC_FULL.md, and the tests in aig/replace_test.go and
// refactor/driver_test.go, for end-to-end scenarios covering absorption,
// collision cascades, XOR recognition, level maintenance, reverse-level
// repair, and cursor-stable refactoring passes.
package lsynth
