package engine

import (
	"math"

	"github.com/algoview/algoview/graph"
)

// unreached is the "+infinity" distance before any relaxation.
const unreached = math.MaxInt

// ShortestPath runs Dijkstra from start to end over g.
//
// Node selection is a linear scan of the node list in insertion
// order, taking the first unvisited node with the minimum known
// distance. The first-minimum tie-break is preserved for behavioral
// compatibility with the visualizer's original runs; it carries no
// meaning beyond determinism.
//
// Outcomes:
//
//   - end reached: Visited holds the settlement edges, Path the
//     reconstructed start→…→end shortest path.
//   - end unreachable: once the selected minimum is still unreached,
//     the reachable component is exhausted — Visited holds the edges
//     settled so far and Path is empty. Nil error.
//   - start == end: trivial one-node result, no settlement edges.
//
// Complexity: O(V² + E) with the linear scan.
func ShortestPath(g *graph.Graph, start, end graph.NodeID) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return PathResult{}, ErrStartNotFound
	}
	if !g.HasNode(end) {
		return PathResult{}, ErrEndNotFound
	}
	if start == end {
		return PathResult{Visited: []Step{}, Path: []graph.NodeID{start}}, nil
	}

	nodes := g.Nodes()
	dist := make(map[graph.NodeID]int, len(nodes))
	prev := make(map[graph.NodeID]graph.NodeID, len(nodes))
	settled := make(map[graph.NodeID]bool, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = unreached
	}
	dist[start] = 0

	res := PathResult{Visited: make([]Step, 0, len(nodes)), Path: []graph.NodeID{}}

	for settledCount := 0; settledCount < len(nodes); settledCount++ {
		// 1. Select the unvisited node with minimum known distance;
		//    first minimum found wins under the insertion-order scan.
		u := graph.NodeID(0)
		best := unreached
		for _, n := range nodes {
			if !settled[n.ID] && dist[n.ID] < best {
				best = dist[n.ID]
				u = n.ID
			}
		}

		// 2. Everything still unvisited is unreachable: done, no path.
		if best == unreached {
			return res, nil
		}

		// 3. Settle u; record the edge that discovered it.
		settled[u] = true
		if u != start {
			res.Visited = append(res.Visited, Step{From: prev[u], To: u})
		}

		// 4. Reaching the end terminates with a backtracked path.
		if u == end {
			res.Path = backtrack(prev, start, end)

			return res, nil
		}

		// 5. Relax the outgoing edges of u.
		for _, e := range g.OutEdges(u) {
			if settled[e.To] {
				continue
			}
			if nd := dist[u] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = u
			}
		}
	}

	return res, nil
}

// backtrack follows predecessor links from end to start and reverses
// the result into start→…→end order.
func backtrack(prev map[graph.NodeID]graph.NodeID, start, end graph.NodeID) []graph.NodeID {
	path := []graph.NodeID{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
