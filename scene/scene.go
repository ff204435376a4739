package scene

import (
	"sync"
	"time"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
	"github.com/algoview/algoview/history"
	"github.com/algoview/algoview/metrics"
	"github.com/algoview/algoview/player"
)

// Scene is the single mutation surface over one graph, its history
// and its playback. All methods are safe for concurrent use; the
// internal lock serializes them, which is the only ordering guarantee
// the composition needs.
type Scene struct {
	mu    sync.Mutex
	g     *graph.Graph
	hist  *history.Store[graph.Snapshot]
	moves *history.Batcher[graph.Snapshot]
	board *player.Board
	play  *player.Player

	defaultSpeed time.Duration
}

// Option configures a Scene at construction.
type Option func(*options)

type options struct {
	window time.Duration
	speed  time.Duration
}

// WithDebounceWindow sets the drag-batching window (default 300ms).
func WithDebounceWindow(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.window = d
		}
	}
}

// WithDefaultSpeed sets the auto-playback interval used when a run
// does not specify one.
func WithDefaultSpeed(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.speed = d
		}
	}
}

// New creates an empty Scene.
func New(opts ...Option) *Scene {
	o := options{window: history.DefaultWindow, speed: player.DefaultSpeed}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		g:            graph.New(),
		hist:         history.NewStore(graph.Snapshot.Equal),
		board:        player.NewBoard(),
		defaultSpeed: o.speed,
	}
	s.play = player.New(s.board)
	s.moves = history.NewBatcher(s.hist, s.captureSnapshot, o.window)

	return s
}

// Close tears the Scene down: playback stops and a pending move
// burst is abandoned (not pushed).
func (s *Scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.play.Stop()
	s.moves.Close()
}

// ── Mutation surface ────────────────────────────────────────────────

// AddNode snapshots, stops playback, and adds a node at (x, y).
func (s *Scene) AddNode(x, y float64) graph.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	n := s.g.AddNode(x, y)
	metrics.MutationsTotal.WithLabelValues("add_node", metrics.MutationOutcome(true)).Inc()

	return n
}

// MoveNode repositions a node. Moves are batched: the burst's first
// call captures the pre-drag snapshot, and the whole burst becomes a
// single history entry once the debounce window passes quietly.
func (s *Scene) MoveNode(id graph.NodeID, x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interruptLocked()
	s.moves.Touch()
	ok := s.g.MoveNode(id, x, y)
	metrics.MutationsTotal.WithLabelValues("move_node", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// DeleteNode removes a node and every edge referencing it.
func (s *Scene) DeleteNode(id graph.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	ok := s.g.DeleteNode(id)
	metrics.MutationsTotal.WithLabelValues("delete_node", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// AddEdge inserts an edge (plus its mirror when undirected).
func (s *Scene) AddEdge(from, to graph.NodeID, kind graph.EdgeKind, weight int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	ok := s.g.AddEdge(from, to, kind, weight)
	metrics.MutationsTotal.WithLabelValues("add_edge", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// UpdateEdgeKind retypes an edge, maintaining the mirror invariant.
func (s *Scene) UpdateEdgeKind(from, to graph.NodeID, kind graph.EdgeKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	ok := s.g.UpdateEdgeKind(from, to, kind)
	metrics.MutationsTotal.WithLabelValues("update_edge_kind", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// UpdateEdgeWeight reweights an edge and its mirror.
func (s *Scene) UpdateEdgeWeight(from, to graph.NodeID, weight int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	ok := s.g.UpdateEdgeWeight(from, to, weight)
	metrics.MutationsTotal.WithLabelValues("update_edge_weight", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// ReverseEdge flips a directed edge.
func (s *Scene) ReverseEdge(from, to graph.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	ok := s.g.ReverseEdge(from, to)
	metrics.MutationsTotal.WithLabelValues("reverse_edge", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// DeleteEdge removes an edge (plus its mirror when undirected).
func (s *Scene) DeleteEdge(from, to graph.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	ok := s.g.DeleteEdge(from, to)
	metrics.MutationsTotal.WithLabelValues("delete_edge", metrics.MutationOutcome(ok)).Inc()

	return ok
}

// ClearGraph resets the scene to an empty graph and empties history.
func (s *Scene) ClearGraph() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interruptLocked()
	s.moves.Close()
	s.g = graph.New()
	s.hist.Clear()
	s.gaugeLocked()
}

// ImportSnapshot replaces the graph with snap's state. The previous
// state is committed first, so an import is undoable.
func (s *Scene) ImportSnapshot(snap graph.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitLocked()
	s.g.Restore(snap)
	metrics.MutationsTotal.WithLabelValues("import", metrics.MutationOutcome(true)).Inc()
}

// Snapshot returns a deep copy of the current graph state.
func (s *Scene) Snapshot() graph.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Snapshot()
}

// ── History surface ─────────────────────────────────────────────────

// Undo rewinds the last committed mutation. A pending move burst is
// flushed first so an in-flight drag stays undoable.
func (s *Scene) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interruptLocked()
	s.moves.Flush()
	ok := s.hist.Undo(s.g.Snapshot(), func(snap graph.Snapshot) { s.g.Restore(snap) })
	if ok {
		metrics.UndoTotal.Inc()
	}
	s.gaugeLocked()

	return ok
}

// Redo reapplies the last undone mutation.
func (s *Scene) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interruptLocked()
	s.moves.Flush()
	ok := s.hist.Redo(s.g.Snapshot(), func(snap graph.Snapshot) { s.g.Restore(snap) })
	if ok {
		metrics.RedoTotal.Inc()
	}
	s.gaugeLocked()

	return ok
}

// CanUndo reports whether an Undo would apply.
func (s *Scene) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a Redo would apply.
func (s *Scene) CanRedo() bool { return s.hist.CanRedo() }

// ── Playback surface ────────────────────────────────────────────────

// RunAlgorithm executes kind over the current graph and starts
// playback of the produced trace. speed <= 0 selects the scene's
// default interval. The error surface is engine.Run's: caller bugs
// only, with infeasible runs playing back as short or empty traces.
func (s *Scene) RunAlgorithm(kind engine.Kind, p engine.Params, speed time.Duration, mode player.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.moves.Flush()
	s.interruptLocked()

	tr, err := engine.Run(kind, s.g, p)
	if err != nil {
		return err
	}

	metrics.AlgorithmRunsTotal.WithLabelValues(string(kind)).Inc()
	metrics.TraceEventsTotal.WithLabelValues(string(kind)).Add(float64(len(tr)))

	end := graph.NodeID(0)
	if kind == engine.KindDijkstra {
		end = p.End
	}
	s.board.SetMarkers(p.Start, end)

	if speed <= 0 {
		speed = s.defaultSpeed
	}
	s.play.Start(tr, speed, mode)

	return nil
}

// StopPlayback cancels any active run and clears the board.
func (s *Scene) StopPlayback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.play.Stop()
}

// StepForward advances manual playback by one event.
func (s *Scene) StepForward() bool {
	ok := s.play.StepForward()
	if ok {
		metrics.PlaybackStepsTotal.Inc()
	}

	return ok
}

// StepBackward rewinds manual playback by one event.
func (s *Scene) StepBackward() bool {
	ok := s.play.StepBackward()
	if ok {
		metrics.PlaybackStepsTotal.Inc()
	}

	return ok
}

// JumpToStep positions the manual cursor (clamped to the trace).
func (s *Scene) JumpToStep(i int) bool {
	ok := s.play.JumpToStep(i)
	if ok {
		metrics.PlaybackStepsTotal.Inc()
	}

	return ok
}

// SetSpeed adjusts the live auto-playback interval.
func (s *Scene) SetSpeed(d time.Duration) bool { return s.play.SetSpeed(d) }

// SetDefaultSpeed changes the interval applied to future runs that
// do not specify one (used by config hot-reload).
func (s *Scene) SetDefaultSpeed(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultSpeed = d
}

// Playback returns the player's current status with a copied board.
func (s *Scene) Playback() player.Status { return s.play.Snapshot() }

// ── internals ───────────────────────────────────────────────────────

// commitLocked is the snapshot-first prologue of every structural
// mutator: stop playback, flush any pending move burst so ordering
// is preserved, then push the pre-mutation snapshot. Caller holds mu.
func (s *Scene) commitLocked() {
	s.interruptLocked()
	s.moves.Flush()
	s.hist.Push(s.g.Snapshot())
	s.gaugeLocked()
}

// interruptLocked enforces the mutation/playback exclusivity rule.
func (s *Scene) interruptLocked() {
	if s.play.State() != player.Idle {
		s.play.Stop()
	}
}

// captureSnapshot is the Batcher's capture hook. The Batcher calls
// it from Touch, which only ever runs under the scene lock.
func (s *Scene) captureSnapshot() graph.Snapshot { return s.g.Snapshot() }

// gaugeLocked refreshes the history depth gauge.
func (s *Scene) gaugeLocked() {
	past, _ := s.hist.Depth()
	metrics.HistoryDepth.Set(float64(past))
}
