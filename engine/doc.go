// Package engine runs the four visualizer algorithms — breadth-first
// traversal, depth-first traversal, Dijkstra shortest path and Prim
// minimum spanning tree — over a read-only graph.Graph, and turns each
// run into a Trace: an ordered, append-only list of edge events the
// player can replay step by step.
//
// Determinism contract
//
// Every algorithm is fully deterministic for a given graph:
//
//   - BFS expands neighbors in adjacency insertion order.
//   - DFS pushes neighbors in adjacency order and pops LIFO, so among
//     siblings the effective visit order is the reverse of insertion
//     order. This is an observable contract, not an implementation
//     detail — do not "fix" it to recursive pre-order.
//   - Dijkstra selects the unvisited minimum by a linear scan over the
//     node list in insertion order; the first minimum found wins.
//   - Prim scans the frontier with tree nodes in inclusion order and
//     adjacency in insertion order, taking the first strict minimum.
//
// Failure semantics
//
// Errors are reserved for caller bugs: a nil graph or an absent
// start/end node. Algorithmic infeasibility — no path, disconnected
// spanning tree, MST over directed edges — is always an empty result
// with a nil error; callers check emptiness, never error types.
package engine
