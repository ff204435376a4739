package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
)

func TestBreadthFirst_Validation(t *testing.T) {
	_, err := engine.BreadthFirst(nil, 1)
	assert.ErrorIs(t, err, engine.ErrNilGraph)

	g := graph.New()
	_, err = engine.BreadthFirst(g, 1)
	assert.ErrorIs(t, err, engine.ErrStartNotFound)
}

func TestBreadthFirst_DiamondOrder(t *testing.T) {
	g := buildDiamond(t)

	steps, err := engine.BreadthFirst(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []engine.Step{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}}, steps)
	assert.Equal(t, []graph.NodeID{1, 2, 3, 4}, visitOrder(1, steps))
}

func TestBreadthFirst_VisitsReachableExactlyOnce(t *testing.T) {
	g := buildDiamond(t)
	// An extra component BFS from 1 must never touch.
	n5 := g.AddNode(9, 9)
	n6 := g.AddNode(9, 10)
	require.True(t, g.AddEdge(n5.ID, n6.ID, graph.Undirected, 1))

	steps, err := engine.BreadthFirst(g, 1)
	require.NoError(t, err)

	seen := map[graph.NodeID]bool{}
	for _, id := range visitOrder(1, steps) {
		assert.False(t, seen[id], "node %d visited twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 4, "exactly the reachable component")
	assert.NotContains(t, seen, n5.ID)
}

func TestBreadthFirst_IsolatedStart(t *testing.T) {
	g := graph.New()
	n := g.AddNode(0, 0)

	steps, err := engine.BreadthFirst(g, n.ID)
	require.NoError(t, err)
	assert.Empty(t, steps, "no edges beyond the implicit start")
}

func TestBreadthFirst_RespectsDirection(t *testing.T) {
	g := graph.New()
	a := g.AddNode(0, 0)
	b := g.AddNode(1, 0)
	require.True(t, g.AddEdge(b.ID, a.ID, graph.Directed, 1))

	steps, err := engine.BreadthFirst(g, a.ID)
	require.NoError(t, err)
	assert.Empty(t, steps, "b→a is not traversable from a")
}
