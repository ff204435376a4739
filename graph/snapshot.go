package graph

// Snapshot is a structurally immutable copy of the full graph state,
// used as the undo/redo unit and as the serialization contract of the
// module (nodes, adjacency as ordered pairs, next ID counter).
// Once captured it shares no storage with the live Graph.
type Snapshot struct {
	// Nodes in insertion order.
	Nodes []Node `json:"nodes"`

	// Edges lists each node's outgoing adjacency, in node insertion
	// order, each list in edge insertion order.
	Edges []AdjacencyEntry `json:"edges"`

	// NextID is the allocation counter, preserved so restored graphs
	// never reuse IDs.
	NextID NodeID `json:"nextId"`
}

// AdjacencyEntry is one (node ID, outgoing edges) pair of a Snapshot.
type AdjacencyEntry struct {
	ID  NodeID `json:"id"`
	Out []Edge `json:"out"`
}

// Snapshot captures a deep copy of the current graph state.
// Adjacency entries are emitted in node insertion order so equal
// graphs always produce structurally equal snapshots.
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Nodes:  make([]Node, len(g.nodes)),
		Edges:  make([]AdjacencyEntry, 0, len(g.nodes)),
		NextID: g.nextID,
	}
	copy(s.Nodes, g.nodes)
	for _, n := range g.nodes {
		out := g.adjacency[n.ID]
		cp := make([]Edge, len(out))
		copy(cp, out)
		s.Edges = append(s.Edges, AdjacencyEntry{ID: n.ID, Out: cp})
	}

	return s
}

// Restore replaces the graph state with a deep copy of s.
// The snapshot itself stays untouched and reusable.
func (g *Graph) Restore(s Snapshot) {
	g.nodes = make([]Node, len(s.Nodes))
	copy(g.nodes, s.Nodes)
	g.adjacency = make(map[NodeID][]Edge, len(s.Edges))
	for _, entry := range s.Edges {
		cp := make([]Edge, len(entry.Out))
		copy(cp, entry.Out)
		g.adjacency[entry.ID] = cp
	}
	g.nextID = s.NextID
}

// Equal reports structural equality with o: same nodes in the same
// order, same adjacency pairs in the same order, same counter.
// History deduplication relies on this.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.NextID != o.NextID || len(s.Nodes) != len(o.Nodes) || len(s.Edges) != len(o.Edges) {
		return false
	}
	for i := range s.Nodes {
		if s.Nodes[i] != o.Nodes[i] {
			return false
		}
	}
	for i := range s.Edges {
		a, b := s.Edges[i], o.Edges[i]
		if a.ID != b.ID || len(a.Out) != len(b.Out) {
			return false
		}
		for j := range a.Out {
			if a.Out[j] != b.Out[j] {
				return false
			}
		}
	}

	return true
}
