package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
)

// buildDiamond returns the reference traversal fixture: four nodes
// with undirected edges inserted 1—2, 1—3, 2—4. BFS from 1 visits
// [1 2 3 4]; DFS from 1 visits [1 3 2 4] because siblings pop LIFO.
func buildDiamond(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	n1 := g.AddNode(0, 0)
	n2 := g.AddNode(1, 0)
	n3 := g.AddNode(0, 1)
	n4 := g.AddNode(1, 1)
	require.True(t, g.AddEdge(n1.ID, n2.ID, graph.Undirected, 1))
	require.True(t, g.AddEdge(n1.ID, n3.ID, graph.Undirected, 1))
	require.True(t, g.AddEdge(n2.ID, n4.ID, graph.Undirected, 1))

	return g
}

// visitOrder reduces traversal steps to the node visit sequence,
// start first.
func visitOrder(start graph.NodeID, steps []engine.Step) []graph.NodeID {
	order := []graph.NodeID{start}
	for _, s := range steps {
		order = append(order, s.To)
	}

	return order
}
