// Package graph declares the Node, Edge and Graph types plus the New
// constructor. Mutation primitives live in graph.go, snapshot
// capture/restore in snapshot.go.
package graph

import "fmt"

// NodeID identifies a node within one Graph.
// IDs are allocated by AddNode, start at 1, and are never reused.
type NodeID int

// EdgeKind discriminates one-way edges from mirrored two-way edges.
type EdgeKind uint8

const (
	// Directed is a one-way edge with no mirror.
	Directed EdgeKind = iota

	// Undirected is a two-way edge, stored as a pair of mirrored
	// entries with identical weight and kind.
	Undirected
)

// String returns "directed" or "undirected".
func (k EdgeKind) String() string {
	if k == Undirected {
		return "undirected"
	}

	return "directed"
}

// MarshalText encodes the kind as its String form, so snapshots and
// the HTTP facade speak "directed"/"undirected" rather than raw ints.
func (k EdgeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes "directed" or "undirected".
func (k *EdgeKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "directed":
		*k = Directed
	case "undirected":
		*k = Undirected
	default:
		return fmt.Errorf("graph: unknown edge kind %q", b)
	}

	return nil
}

// DefaultRadius is the node radius assigned by AddNode.
const DefaultRadius = 20.0

// Node is a vertex with a canvas position. X, Y and R exist for the
// rendering layer; the algorithmic packages read only ID.
type Node struct {
	// ID is the unique, monotonic identifier of this node.
	ID NodeID `json:"id"`

	// X, Y are the canvas coordinates of the node center.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// R is the node radius.
	R float64 `json:"r"`
}

// Edge is an outgoing connection owned by the adjacency list of From.
type Edge struct {
	// From is the source node ID (the adjacency key that owns this edge).
	From NodeID `json:"from"`

	// To is the destination node ID.
	To NodeID `json:"to"`

	// Weight is the integer cost used by Dijkstra and Prim.
	Weight int `json:"weight"`

	// Kind marks the edge Directed or Undirected.
	Kind EdgeKind `json:"kind"`

	// Curve is a rendering hint (label/arc offset). The algorithmic
	// packages ignore it entirely.
	Curve float64 `json:"curve,omitempty"`
}

// Graph is the in-memory graph behind the editor.
//
// nodes keeps insertion order. adjacency maps every live node ID to
// its ordered list of outgoing edges; the entry exists (possibly
// empty) for every node that has not been deleted. Graph is not
// safe for concurrent use; the composing layer serializes access.
type Graph struct {
	nodes     []Node
	adjacency map[NodeID][]Edge
	nextID    NodeID
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[NodeID][]Edge)}
}
