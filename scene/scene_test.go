package scene_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
	"github.com/algoview/algoview/player"
	"github.com/algoview/algoview/scene"
)

// sceneWindow keeps drag batching fast in tests.
const sceneWindow = 25 * time.Millisecond

// buildScene seeds a scene with the diamond fixture (undirected
// 1—2, 1—3, 2—4) and returns it.
func buildScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New(scene.WithDebounceWindow(sceneWindow))
	a := s.AddNode(0, 0)
	b := s.AddNode(1, 0)
	c := s.AddNode(0, 1)
	d := s.AddNode(1, 1)
	require.True(t, s.AddEdge(a.ID, b.ID, graph.Undirected, 1))
	require.True(t, s.AddEdge(a.ID, c.ID, graph.Undirected, 1))
	require.True(t, s.AddEdge(b.ID, d.ID, graph.Undirected, 1))
	t.Cleanup(s.Close)

	return s
}

func TestScene_UndoRedoRoundTrip(t *testing.T) {
	s := buildScene(t)
	before := s.Snapshot()

	require.True(t, s.DeleteNode(2))
	require.False(t, s.Snapshot().Equal(before))

	require.True(t, s.Undo())
	assert.True(t, s.Snapshot().Equal(before), "undo restores the pre-delete state")

	require.True(t, s.Redo())
	assert.False(t, s.Snapshot().Equal(before))
	assert.False(t, s.Snapshot().Nodes[1].ID == 2)
}

func TestScene_SkippedMutationDoesNotGrowHistory(t *testing.T) {
	s := buildScene(t)

	// A rejected self-loop still runs the snapshot-first prologue,
	// but dedup collapses it against the identical previous push.
	require.False(t, s.AddEdge(1, 1, graph.Directed, 1))
	require.False(t, s.AddEdge(1, 1, graph.Directed, 1))

	before := s.Snapshot()
	require.True(t, s.Undo())
	assert.True(t, s.Snapshot().Equal(before), "top entry equals current state")
}

func TestScene_MutationAfterUndoDropsRedoBranch(t *testing.T) {
	s := buildScene(t)

	require.True(t, s.DeleteEdge(1, 2))
	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	s.AddNode(5, 5)
	assert.False(t, s.CanRedo())
}

func TestScene_DragBatchesIntoOneEntry(t *testing.T) {
	s := scene.New(scene.WithDebounceWindow(sceneWindow))
	t.Cleanup(s.Close)
	n := s.AddNode(0, 0)

	// Ten rapid moves inside one debounce window.
	for i := 1; i <= 10; i++ {
		require.True(t, s.MoveNode(n.ID, float64(i), 0))
	}
	time.Sleep(4 * sceneWindow) // quiet: the burst commits

	require.True(t, s.Undo())
	assert.Equal(t, 0.0, s.Snapshot().Nodes[0].X, "one undo rewinds the whole drag")

	require.True(t, s.Undo(), "next entry is the add-node commit")
	assert.Empty(t, s.Snapshot().Nodes)
	assert.False(t, s.CanUndo(), "ten moves produced exactly one entry")
}

func TestScene_SeparateDragsSeparateEntries(t *testing.T) {
	s := scene.New(scene.WithDebounceWindow(sceneWindow))
	t.Cleanup(s.Close)
	n := s.AddNode(0, 0)

	require.True(t, s.MoveNode(n.ID, 10, 0))
	time.Sleep(4 * sceneWindow) // past the window: burst one closes

	require.True(t, s.MoveNode(n.ID, 20, 0))
	time.Sleep(4 * sceneWindow)

	require.True(t, s.Undo())
	assert.Equal(t, 10.0, s.Snapshot().Nodes[0].X)
	require.True(t, s.Undo())
	assert.Equal(t, 0.0, s.Snapshot().Nodes[0].X)
}

func TestScene_MutationCancelsPlayback(t *testing.T) {
	s := buildScene(t)

	require.NoError(t, s.RunAlgorithm(engine.KindBFS, engine.Params{Start: 1}, 0, player.Manual))
	require.True(t, s.StepForward())
	require.Equal(t, player.Running, s.Playback().State)

	s.AddNode(9, 9)

	st := s.Playback()
	assert.Equal(t, player.Idle, st.State, "structural edits and playback are mutually exclusive")
	assert.Empty(t, st.Board.VisitedEdges, "highlight flags cleared with the trace")
	assert.False(t, s.StepForward())
}

func TestScene_RunAlgorithmSetsMarkers(t *testing.T) {
	s := buildScene(t)

	require.NoError(t, s.RunAlgorithm(engine.KindDijkstra, engine.Params{Start: 1, End: 4}, 0, player.Manual))
	st := s.Playback()
	assert.Equal(t, graph.NodeID(1), st.Board.StartMark)
	assert.Equal(t, graph.NodeID(4), st.Board.EndMark)

	// Non-dijkstra runs carry no end marker.
	require.NoError(t, s.RunAlgorithm(engine.KindBFS, engine.Params{Start: 2, End: 4}, 0, player.Manual))
	st = s.Playback()
	assert.Equal(t, graph.NodeID(2), st.Board.StartMark)
	assert.Zero(t, st.Board.EndMark)
}

func TestScene_RunAlgorithmPropagatesCallerBugs(t *testing.T) {
	s := buildScene(t)
	err := s.RunAlgorithm(engine.KindBFS, engine.Params{Start: 42}, 0, player.Manual)
	assert.ErrorIs(t, err, engine.ErrStartNotFound)
	assert.Equal(t, player.Idle, s.Playback().State)
}

func TestScene_ManualPlaybackDrivesBoard(t *testing.T) {
	s := buildScene(t)
	require.NoError(t, s.RunAlgorithm(engine.KindDFS, engine.Params{Start: 1}, 0, player.Manual))

	require.True(t, s.StepForward())
	st := s.Playback()
	// DFS pops LIFO: the later sibling 1—3 is discovered first.
	assert.True(t, st.Board.VisitedEdges[engine.Step{From: 1, To: 3}])

	require.True(t, s.StepBackward())
	assert.Empty(t, s.Playback().Board.VisitedEdges)

	require.True(t, s.JumpToStep(2))
	assert.True(t, s.Playback().Complete)
}

func TestScene_ClearGraphEmptiesEverything(t *testing.T) {
	s := buildScene(t)
	require.True(t, s.CanUndo())

	s.ClearGraph()

	assert.Empty(t, s.Snapshot().Nodes)
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())

	// The ID counter resets with the graph.
	n := s.AddNode(1, 1)
	assert.Equal(t, graph.NodeID(1), n.ID)
}

func TestScene_ImportSnapshotIsUndoable(t *testing.T) {
	donor := buildScene(t)
	snap := donor.Snapshot()

	s := scene.New(scene.WithDebounceWindow(sceneWindow))
	t.Cleanup(s.Close)
	s.AddNode(7, 7)
	before := s.Snapshot()

	s.ImportSnapshot(snap)
	assert.True(t, s.Snapshot().Equal(snap))

	require.True(t, s.Undo())
	assert.True(t, s.Snapshot().Equal(before))
}

func TestScene_AutoPlaybackRunsToDone(t *testing.T) {
	s := buildScene(t)
	require.NoError(t, s.RunAlgorithm(engine.KindBFS, engine.Params{Start: 1},
		2*time.Millisecond, player.Auto))

	require.Eventually(t, func() bool { return s.Playback().State == player.Done },
		2*time.Second, time.Millisecond)

	st := s.Playback()
	assert.Zero(t, st.Board.StartMark, "markers cleared on Done")
	assert.Len(t, st.Board.VisitedEdges, 3, "persisted flags survive")
}
