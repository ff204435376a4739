package engine

import "github.com/algoview/algoview/graph"

// BreadthFirst traverses g from start, queue-based, visiting each
// reachable node at most once. It returns the traversal edges in
// discovery order; a start with no outgoing edges yields an empty
// slice beyond the implicit start visit.
// Complexity: O(V + E).
func BreadthFirst(g *graph.Graph, start graph.NodeID) ([]Step, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	visited := map[graph.NodeID]bool{start: true}
	queue := []graph.NodeID{start}
	steps := make([]Step, 0, g.NodeCount())

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		// Neighbor expansion follows adjacency insertion order.
		for _, e := range g.OutEdges(u) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			steps = append(steps, Step{From: u, To: e.To})
			queue = append(queue, e.To)
		}
	}

	return steps, nil
}
