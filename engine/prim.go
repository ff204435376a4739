package engine

import "github.com/algoview/algoview/graph"

// MinimumSpanningTree grows Prim's MST from start over an undirected
// g, repeatedly adding the minimum-weight frontier edge that connects
// the tree to a new node. It returns the edges added, in inclusion
// order.
//
// Infeasibility is an empty result with a nil error, never an error:
//
//   - the graph contains any directed edge (MST is defined only on
//     undirected graphs), or
//   - the component reachable from start does not span all nodes.
//
// The frontier scan iterates tree nodes in inclusion order and each
// adjacency list in insertion order, taking the first strict minimum,
// so repeated runs always produce the same tree.
// Complexity: O(V·E) with the linear frontier scan.
func MinimumSpanningTree(g *graph.Graph, start graph.NodeID) ([]Step, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}
	if g.HasDirectedEdges() {
		return []Step{}, nil
	}

	total := g.NodeCount()
	included := map[graph.NodeID]bool{start: true}
	tree := []graph.NodeID{start} // inclusion order, for the frontier scan
	steps := make([]Step, 0, total-1)

	for len(tree) < total {
		// Scan the frontier for the cheapest edge out of the tree.
		var best graph.Edge
		found := false
		for _, u := range tree {
			for _, e := range g.OutEdges(u) {
				if included[e.To] {
					continue
				}
				if !found || e.Weight < best.Weight {
					best = e
					found = true
				}
			}
		}

		// No frontier edge while nodes remain: disconnected graph.
		if !found {
			return []Step{}, nil
		}

		included[best.To] = true
		tree = append(tree, best.To)
		steps = append(steps, Step{From: best.From, To: best.To})
	}

	return steps, nil
}
