package player

import (
	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
)

// Board holds the highlight flags the renderer draws from: which
// nodes/edges an algorithm visited, which lie on the final result,
// and the transient start/end markers of the current run.
//
// Flags are only ever set by Apply and cleared wholesale by
// ResetFlags; markers live separately so finishing a run can clear
// the "in progress" selection without touching the persisted
// highlights.
type Board struct {
	VisitedNodes map[graph.NodeID]bool `json:"visitedNodes"`
	VisitedEdges map[engine.Step]bool  `json:"visitedEdges"`
	ResultNodes  map[graph.NodeID]bool `json:"resultNodes"`
	ResultEdges  map[engine.Step]bool  `json:"resultEdges"`

	// StartMark and EndMark are the transient selection markers;
	// zero means unset.
	StartMark graph.NodeID `json:"startMark,omitempty"`
	EndMark   graph.NodeID `json:"endMark,omitempty"`
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	b := &Board{}
	b.ResetFlags()

	return b
}

// Apply sets the flags for one trace event: the edge itself plus both
// endpoints, in the event's phase. Strictly additive.
func (b *Board) Apply(ev engine.Event) {
	switch ev.Phase {
	case engine.PhaseResult:
		b.ResultEdges[ev.Step] = true
		b.ResultNodes[ev.Step.From] = true
		b.ResultNodes[ev.Step.To] = true
	default:
		b.VisitedEdges[ev.Step] = true
		b.VisitedNodes[ev.Step.From] = true
		b.VisitedNodes[ev.Step.To] = true
	}
}

// ResetFlags clears all highlight flags, leaving markers in place.
func (b *Board) ResetFlags() {
	b.VisitedNodes = make(map[graph.NodeID]bool)
	b.VisitedEdges = make(map[engine.Step]bool)
	b.ResultNodes = make(map[graph.NodeID]bool)
	b.ResultEdges = make(map[engine.Step]bool)
}

// SetMarkers records the start/end selection of the current run.
// End may be zero for algorithms without a target node.
func (b *Board) SetMarkers(start, end graph.NodeID) {
	b.StartMark = start
	b.EndMark = end
}

// ClearMarkers drops the transient selection, keeping flags.
func (b *Board) ClearMarkers() {
	b.StartMark = 0
	b.EndMark = 0
}

// Clear wipes flags and markers.
func (b *Board) Clear() {
	b.ResetFlags()
	b.ClearMarkers()
}

// clone returns a deep copy for lock-free reads by callers.
func (b *Board) clone() *Board {
	c := NewBoard()
	for k, v := range b.VisitedNodes {
		c.VisitedNodes[k] = v
	}
	for k, v := range b.VisitedEdges {
		c.VisitedEdges[k] = v
	}
	for k, v := range b.ResultNodes {
		c.ResultNodes[k] = v
	}
	for k, v := range b.ResultEdges {
		c.ResultEdges[k] = v
	}
	c.StartMark = b.StartMark
	c.EndMark = b.EndMark

	return c
}
