package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
)

func TestDepthFirst_Validation(t *testing.T) {
	_, err := engine.DepthFirst(nil, 1)
	assert.ErrorIs(t, err, engine.ErrNilGraph)

	g := graph.New()
	_, err = engine.DepthFirst(g, 7)
	assert.ErrorIs(t, err, engine.ErrStartNotFound)
}

func TestDepthFirst_SiblingsPopLIFO(t *testing.T) {
	g := buildDiamond(t)

	steps, err := engine.DepthFirst(g, 1)
	require.NoError(t, err)

	// Edges inserted 1—2 then 1—3: the later sibling is visited
	// first, so the order is [1 3 2 4], not pre-order [1 2 4 3].
	assert.Equal(t, []graph.NodeID{1, 3, 2, 4}, visitOrder(1, steps))
	assert.Equal(t, []engine.Step{{From: 1, To: 3}, {From: 1, To: 2}, {From: 2, To: 4}}, steps)
}

func TestDepthFirst_VisitsReachableExactlyOnce(t *testing.T) {
	// A cycle plus a chord: 1—2—3—1 and 2—4.
	g := graph.New()
	for i := 0; i < 4; i++ {
		g.AddNode(float64(i), 0)
	}
	require.True(t, g.AddEdge(1, 2, graph.Undirected, 1))
	require.True(t, g.AddEdge(2, 3, graph.Undirected, 1))
	require.True(t, g.AddEdge(3, 1, graph.Undirected, 1))
	require.True(t, g.AddEdge(2, 4, graph.Undirected, 1))

	steps, err := engine.DepthFirst(g, 1)
	require.NoError(t, err)

	seen := map[graph.NodeID]bool{}
	for _, id := range visitOrder(1, steps) {
		assert.False(t, seen[id], "node %d visited twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 4)
}

func TestDepthFirst_IsolatedStart(t *testing.T) {
	g := graph.New()
	n := g.AddNode(0, 0)

	steps, err := engine.DepthFirst(g, n.ID)
	require.NoError(t, err)
	assert.Empty(t, steps)
}
