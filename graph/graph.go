package graph

// AddNode allocates the next node ID, appends a node at (x, y) with
// DefaultRadius, creates its empty adjacency entry, and returns it.
// Complexity: O(1).
func (g *Graph) AddNode(x, y float64) Node {
	g.nextID++
	n := Node{ID: g.nextID, X: x, Y: y, R: DefaultRadius}
	g.nodes = append(g.nodes, n)
	g.adjacency[n.ID] = nil

	return n
}

// MoveNode updates the position of node id.
// Reports false (no state change) if id is absent.
func (g *Graph) MoveNode(id NodeID, x, y float64) bool {
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			g.nodes[i].X = x
			g.nodes[i].Y = y

			return true
		}
	}

	return false
}

// DeleteNode removes node id, its outgoing adjacency entry, and every
// edge in other adjacency lists that targets id. Reports false if id
// is absent. Complexity: O(V + E).
func (g *Graph) DeleteNode(id NodeID) bool {
	if !g.HasNode(id) {
		return false
	}

	// 1. Drop the node from the ordered node list.
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}

	// 2. Drop its outgoing adjacency entry wholesale.
	delete(g.adjacency, id)

	// 3. Filter incoming edges out of every remaining list.
	for from, out := range g.adjacency {
		kept := out[:0]
		for _, e := range out {
			if e.To != id {
				kept = append(kept, e)
			}
		}
		g.adjacency[from] = kept
	}

	return true
}

// AddEdge inserts an edge from→to. For Undirected, the mirror to→from
// is inserted atomically: both succeed or neither does.
//
// The call is a no-op (false) when from == to, when either endpoint is
// absent, when from→to already exists, or — for Undirected — when the
// mirror slot to→from is already occupied.
func (g *Graph) AddEdge(from, to NodeID, kind EdgeKind, weight int) bool {
	if from == to {
		return false
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return false
	}
	if g.hasEdge(from, to) {
		return false
	}
	if kind == Undirected && g.hasEdge(to, from) {
		return false
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight, Kind: kind})
	if kind == Undirected {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight, Kind: Undirected})
	}

	return true
}

// UpdateEdgeKind retypes the edge from→to.
//
// Directed→Undirected inserts the mirror (reusing an existing reverse
// edge if one is present, forcing its weight and kind to match).
// Undirected→Directed removes the mirror. No-op if the edge does not
// exist or the kind is unchanged.
func (g *Graph) UpdateEdgeKind(from, to NodeID, kind EdgeKind) bool {
	e := g.findEdge(from, to)
	if e == nil || e.Kind == kind {
		return false
	}

	e.Kind = kind
	switch kind {
	case Undirected:
		if rev := g.findEdge(to, from); rev != nil {
			// Absorb the stray reverse edge as the mirror.
			rev.Kind = Undirected
			rev.Weight = e.Weight
		} else {
			g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: e.Weight, Kind: Undirected})
		}
	case Directed:
		g.removeEdge(to, from)
	}

	return true
}

// UpdateEdgeWeight sets the weight of edge from→to; an undirected
// edge's mirror is updated identically so both directions stay
// weight-consistent. Reports false if the edge is absent.
func (g *Graph) UpdateEdgeWeight(from, to NodeID, weight int) bool {
	e := g.findEdge(from, to)
	if e == nil {
		return false
	}

	e.Weight = weight
	if e.Kind == Undirected {
		if rev := g.findEdge(to, from); rev != nil {
			rev.Weight = weight
		}
	}

	return true
}

// ReverseEdge flips a directed edge from→to into to→from, keeping its
// weight. Valid only for directed edges; a no-op when the edge is
// absent, undirected, or the reverse slot is already occupied.
func (g *Graph) ReverseEdge(from, to NodeID) bool {
	e := g.findEdge(from, to)
	if e == nil || e.Kind != Directed {
		return false
	}
	if g.hasEdge(to, from) {
		return false
	}

	w := e.Weight
	g.removeEdge(from, to)
	g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: w, Kind: Directed})

	return true
}

// DeleteEdge removes edge from→to, and its mirror when undirected.
// Reports false if the edge is absent.
func (g *Graph) DeleteEdge(from, to NodeID) bool {
	e := g.findEdge(from, to)
	if e == nil {
		return false
	}

	undirected := e.Kind == Undirected
	g.removeEdge(from, to)
	if undirected {
		g.removeEdge(to, from)
	}

	return true
}

// HasNode reports whether node id exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.adjacency[id]

	return ok
}

// NodeByID returns the node with the given id.
func (g *Graph) NodeByID(id NodeID) (Node, bool) {
	for _, n := range g.nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// Nodes returns the nodes in insertion order. The slice is a copy.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// OutEdges returns the outgoing edges of id in insertion order.
// The slice is a copy; nil if id is absent.
func (g *Graph) OutEdges(id NodeID) []Edge {
	out, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	cp := make([]Edge, len(out))
	copy(cp, out)

	return cp
}

// EdgeBetween returns the edge from→to.
func (g *Graph) EdgeBetween(from, to NodeID) (Edge, bool) {
	if e := g.findEdge(from, to); e != nil {
		return *e, true
	}

	return Edge{}, false
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of adjacency entries, counting each
// undirected edge twice (once per direction).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, out := range g.adjacency {
		total += len(out)
	}

	return total
}

// HasDirectedEdges reports whether any edge is Directed. Prim uses
// this to refuse mixed or directed graphs.
func (g *Graph) HasDirectedEdges() bool {
	for _, out := range g.adjacency {
		for _, e := range out {
			if e.Kind == Directed {
				return true
			}
		}
	}

	return false
}

// Clone returns a deep copy sharing no state with the receiver.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes:     make([]Node, len(g.nodes)),
		adjacency: make(map[NodeID][]Edge, len(g.adjacency)),
		nextID:    g.nextID,
	}
	copy(c.nodes, g.nodes)
	for id, out := range g.adjacency {
		cp := make([]Edge, len(out))
		copy(cp, out)
		c.adjacency[id] = cp
	}

	return c
}

// hasEdge reports whether from→to exists.
func (g *Graph) hasEdge(from, to NodeID) bool {
	return g.findEdge(from, to) != nil
}

// findEdge returns a pointer into the adjacency list for in-place
// updates, or nil. Callers must not retain the pointer across
// mutations that reslice the list.
func (g *Graph) findEdge(from, to NodeID) *Edge {
	out := g.adjacency[from]
	for i := range out {
		if out[i].To == to {
			return &out[i]
		}
	}

	return nil
}

// removeEdge deletes from→to from the adjacency list, preserving the
// order of the remaining edges.
func (g *Graph) removeEdge(from, to NodeID) {
	out := g.adjacency[from]
	for i := range out {
		if out[i].To == to {
			g.adjacency[from] = append(out[:i], out[i+1:]...)

			return
		}
	}
}
