package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
)

// buildTriangle returns an undirected triangle 1—2 (1), 2—3 (2),
// 1—3 (3); its MST is {1—2, 2—3} with total weight 3.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < 3; i++ {
		g.AddNode(float64(i), 0)
	}
	require.True(t, g.AddEdge(1, 2, graph.Undirected, 1))
	require.True(t, g.AddEdge(2, 3, graph.Undirected, 2))
	require.True(t, g.AddEdge(1, 3, graph.Undirected, 3))

	return g
}

func TestMinimumSpanningTree_Validation(t *testing.T) {
	_, err := engine.MinimumSpanningTree(nil, 1)
	assert.ErrorIs(t, err, engine.ErrNilGraph)

	g := graph.New()
	_, err = engine.MinimumSpanningTree(g, 1)
	assert.ErrorIs(t, err, engine.ErrStartNotFound)
}

func TestMinimumSpanningTree_Triangle(t *testing.T) {
	g := buildTriangle(t)

	steps, err := engine.MinimumSpanningTree(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []engine.Step{{From: 1, To: 2}, {From: 2, To: 3}}, steps)
}

func TestMinimumSpanningTree_DirectedGraphIsInfeasible(t *testing.T) {
	g := buildTriangle(t)
	n4 := g.AddNode(9, 9)
	require.True(t, g.AddEdge(3, n4.ID, graph.Directed, 1))

	steps, err := engine.MinimumSpanningTree(g, 1)
	require.NoError(t, err)
	assert.Empty(t, steps, "any directed edge rules out an MST")
}

func TestMinimumSpanningTree_DisconnectedIsInfeasible(t *testing.T) {
	g := buildTriangle(t)
	g.AddNode(9, 9) // island

	steps, err := engine.MinimumSpanningTree(g, 1)
	require.NoError(t, err)
	assert.Empty(t, steps, "tree cannot span the island")
}

func TestMinimumSpanningTree_SingleNode(t *testing.T) {
	g := graph.New()
	n := g.AddNode(0, 0)

	steps, err := engine.MinimumSpanningTree(g, n.ID)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestMinimumSpanningTree_DeterministicFrontier(t *testing.T) {
	g := buildTriangle(t)

	first, err := engine.MinimumSpanningTree(g, 2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := engine.MinimumSpanningTree(g, 2)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
