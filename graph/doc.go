// Package graph provides the mutable weighted-graph model behind the
// visualizer: nodes with canvas positions, an insertion-ordered
// adjacency list of outgoing edges, and the mutation primitives the
// editing surface calls (add/move/delete node, add/retype/reweight/
// reverse/delete edge).
//
// Core invariants, enforced at the mutation boundary:
//
//   - Node IDs are positive, monotonic, and never reused.
//   - No self-loops; at most one edge per ordered (from, to) pair.
//   - Every Undirected edge a→b has a mirror b→a with identical weight
//     and kind. Directed edges have no mirror.
//   - Adjacency keeps insertion order; traversal order downstream is a
//     documented behavioral contract, not an accident.
//
// Mutators never return errors. An operation that cannot apply cleanly
// (absent ID, duplicate edge, self-loop) is a silent no-op, reported
// through a bool so callers can keep their UI responsive without
// error plumbing.
//
// Snapshot captures the full graph state as an immutable value, used
// by the history package as the undo/redo unit and by callers as the
// serialization contract.
package graph
