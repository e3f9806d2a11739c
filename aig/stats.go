package aig

import "time"

// Stats is an opaque, per-manager counter record. It replaces the original
// tool's process-wide globals (spec §9): a Manager owns exactly one Stats
// value, and the refactoring driver resets it at the start of each pass via
// ResetStats.
type Stats struct {
	// NodesRewritten counts AND nodes mutated in place by a replacement
	// splice (spec §4.6, the "no collision" branch).
	NodesRewritten int
	// LevelUpdates counts Level values changed by a replacement, both on a
	// spliced node itself and while draining the forward heap (spec §4.7).
	LevelUpdates int
	// ReverseUpdates counts ReverseLevel values changed, both while
	// draining the reverse heap (spec §4.7) and on fanins of a deleted node.
	ReverseUpdates int
	// Elapsed accumulates wall-clock time spent inside Replace.
	Elapsed time.Duration
}

// Stats returns a snapshot of the manager's current counters.
func (m *Manager) Stats() Stats {
	return m.stats
}

// ResetStats zeroes the manager's counters. Called by the refactoring
// driver at the start of each outer pass.
func (m *Manager) ResetStats() {
	m.stats = Stats{}
}
