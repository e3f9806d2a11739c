package aig

import (
	"github.com/rs/zerolog"

	"github.com/gologic/lsynth/topolist"
)

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger attaches a structured logger used for the debug-level
// operational counters described in spec §6 (node_rewritten, level_updates,
// reverse_updates, elapsed). The default is a disabled logger: a Manager is
// silent unless a caller opts in.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithTopoList attaches the refactoring driver's persistent topological
// order (package topolist). When set, deleting a dangling AND also unlinks
// its TopoHandle from this list, with cursor fix-up handled by topolist
// itself (spec §4.5).
func WithTopoList(list *topolist.List[*Node]) Option {
	return func(m *Manager) { m.topo = list }
}

// WithAddedCellsObserver registers a callback invoked whenever a new AND
// node is created (spec §6, "added_cells").
func WithAddedCellsObserver(fn func(*Node)) Option {
	return func(m *Manager) { m.onAddedCell = fn }
}

// WithUpdatedNetsObserver registers a callback invoked whenever an existing
// AND node's fanin edges are mutated in place during a replacement splice
// (spec §6, "updated_nets").
func WithUpdatedNetsObserver(fn func(*Node)) Option {
	return func(m *Manager) { m.onUpdatedNet = fn }
}
