// Package refactor drives repeated local rewrites over an aig.Manager: each
// pass walks every AND node once in a persistent topological order, asks an
// external CutEvaluator for an improving replacement subgraph, materializes
// it, and commits it via aig.Manager.Replace.
//
// Key features:
//   - A single forward pass per RunPass call, visiting every AND node present
//     at the start of the pass exactly once, skipping nodes the pass itself
//     created.
//   - Cursor-stable iteration: the driver holds a topolist.Handle as its
//     cursor and relies on the list's tombstone contract to keep advancing
//     correctly even when it deletes the node it is currently inspecting.
//   - Newly relevant predecessors of a rewrite are spliced back into the
//     topological order immediately after the cursor, so they are visited
//     later in the same pass rather than only on the next one.
//
// Concurrency: a Driver is single-threaded, tied to exactly one aig.Manager,
// and must not be driven concurrently with any other call on that Manager.
//
// Errors: RunPass aborts and returns the first error Replace reports; the
// Manager is left quiescent (per aig.Manager's own contract) with whatever
// rewrites already committed intact.
package refactor
