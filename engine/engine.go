package engine

import "github.com/algoview/algoview/graph"

// Run dispatches kind over g and normalizes the outcome into a Trace
// the player can replay:
//
//   - bfs, dfs: one PhaseVisit event per traversal edge.
//   - dijkstra: PhaseVisit events for the settlement edges, then
//     PhaseResult events for the shortest-path edges (none when the
//     end is unreachable).
//   - prim: PhaseResult events only — the added edges are the result.
//
// An infeasible run yields the corresponding empty (or visit-only)
// trace with a nil error; errors are reserved for caller bugs.
func Run(kind Kind, g *graph.Graph, p Params) (Trace, error) {
	switch kind {
	case KindBFS:
		steps, err := BreadthFirst(g, p.Start)
		if err != nil {
			return nil, err
		}

		return visitTrace(steps), nil

	case KindDFS:
		steps, err := DepthFirst(g, p.Start)
		if err != nil {
			return nil, err
		}

		return visitTrace(steps), nil

	case KindDijkstra:
		res, err := ShortestPath(g, p.Start, p.End)
		if err != nil {
			return nil, err
		}
		tr := visitTrace(res.Visited)
		for i := 1; i < len(res.Path); i++ {
			tr = append(tr, Event{
				Phase: PhaseResult,
				Step:  Step{From: res.Path[i-1], To: res.Path[i]},
			})
		}

		return tr, nil

	case KindPrim:
		steps, err := MinimumSpanningTree(g, p.Start)
		if err != nil {
			return nil, err
		}
		tr := make(Trace, 0, len(steps))
		for _, s := range steps {
			tr = append(tr, Event{Phase: PhaseResult, Step: s})
		}

		return tr, nil

	default:
		return nil, ErrUnknownKind
	}
}

// visitTrace wraps traversal steps as PhaseVisit events.
func visitTrace(steps []Step) Trace {
	tr := make(Trace, 0, len(steps))
	for _, s := range steps {
		tr = append(tr, Event{Phase: PhaseVisit, Step: s})
	}

	return tr
}
