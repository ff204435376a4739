package engine

import "github.com/algoview/algoview/graph"

// DepthFirst traverses g from start using an explicit stack.
// Candidate edges are pushed in adjacency insertion order and popped
// LIFO, so siblings are visited in reverse insertion order — the
// observable contract of this traversal (see package doc).
// Returns the edges used to discover nodes, in discovery order.
// Complexity: O(V + E).
func DepthFirst(g *graph.Graph, start graph.NodeID) ([]Step, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	visited := map[graph.NodeID]bool{start: true}
	steps := make([]Step, 0, g.NodeCount())

	// Seed the stack with the start's outgoing edges.
	stack := make([]Step, 0, g.NodeCount())
	for _, e := range g.OutEdges(start) {
		stack = append(stack, Step{From: start, To: e.To})
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[s.To] {
			// A node may sit on the stack more than once; only the
			// first pop discovers it.
			continue
		}
		visited[s.To] = true
		steps = append(steps, s)

		for _, e := range g.OutEdges(s.To) {
			if !visited[e.To] {
				stack = append(stack, Step{From: s.To, To: e.To})
			}
		}
	}

	return steps, nil
}
