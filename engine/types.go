// Package engine declares the algorithm kinds, trace event types and
// sentinel errors shared by the four algorithm entry points.
package engine

import (
	"errors"
	"fmt"

	"github.com/algoview/algoview/graph"
)

// Sentinel errors for algorithm execution. These indicate caller
// bugs, never data conditions (see package doc).
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("engine: start node not found")

	// ErrEndNotFound is returned when Dijkstra's end node is absent.
	ErrEndNotFound = errors.New("engine: end node not found")

	// ErrUnknownKind is returned by Run for an unrecognized algorithm.
	ErrUnknownKind = errors.New("engine: unknown algorithm kind")
)

// Kind names one of the four supported algorithms.
type Kind string

const (
	KindBFS      Kind = "bfs"
	KindDFS      Kind = "dfs"
	KindDijkstra Kind = "dijkstra"
	KindPrim     Kind = "prim"
)

// Params carries the per-run inputs for Run. End is read only by
// Dijkstra and ignored by the other kinds.
type Params struct {
	Start graph.NodeID `json:"start"`
	End   graph.NodeID `json:"end,omitempty"`
}

// Step is one edge traversal: the edge used to discover (or include)
// a node, in the order the algorithm used it. On the wire a Step is
// the compact "from->to" form, which also lets it key JSON maps.
type Step struct {
	From graph.NodeID
	To   graph.NodeID
}

// MarshalText encodes the step as "from->to".
func (s Step) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d->%d", s.From, s.To)), nil
}

// UnmarshalText parses the "from->to" form.
func (s *Step) UnmarshalText(b []byte) error {
	if _, err := fmt.Sscanf(string(b), "%d->%d", &s.From, &s.To); err != nil {
		return fmt.Errorf("engine: parse step %q: %w", b, err)
	}

	return nil
}

// Phase distinguishes exploration events from result events.
type Phase uint8

const (
	// PhaseVisit marks an edge used during exploration.
	PhaseVisit Phase = iota

	// PhaseResult marks an edge on the final result sequence
	// (shortest path, spanning tree).
	PhaseResult
)

// String returns "visit" or "result".
func (p Phase) String() string {
	if p == PhaseResult {
		return "result"
	}

	return "visit"
}

// MarshalText encodes the phase as its String form.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Event is one replayable unit of a Trace. Events are append-only and
// never mutated after the run that produced them.
type Event struct {
	Phase Phase `json:"phase"`
	Step  Step  `json:"step"`
}

// Trace is the ordered event log of one algorithm run.
type Trace []Event

// PathResult is Dijkstra's outcome: the edges used to settle nodes in
// settlement order, and the reconstructed shortest path. An empty
// Path with a non-empty Visited set means the end was unreachable.
type PathResult struct {
	Visited []Step         `json:"visited"`
	Path    []graph.NodeID `json:"path"`
}
