// Package topolist implements a doubly-linked list of stable handles, used
// by package refactor to persist a topological ordering of AIG nodes across
// structural mutations.
//
// Key features:
//   - PushBack / InsertAfter / Remove are all O(1) given a *Handle.
//   - Handles are stable addresses: a caller may stash a *Handle[T] on its own
//     payload (package aig stores one on each Node as TopoHandle) and later
//     remove or re-splice by that address alone.
//   - The list holds no cursor of its own: a caller iterates by keeping a
//     *Handle as its cursor and advancing it with Next. Remove leaves the
//     removed handle in place as a tombstone whose Next is its former
//     successor, so a cursor parked on a removed handle can still advance
//     without losing its place.
//
// Complexity:
//
//	Time:   O(1) per PushBack/InsertAfter/Remove and for Len.
//	Memory: O(n).
package topolist
