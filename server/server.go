// Package server is a thin JSON-over-HTTP facade over a scene.Scene.
// Every route maps onto one scene operation; mutators report their
// applied flag instead of erroring, matching the library contract.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/algoview/algoview/engine"
	"github.com/algoview/algoview/graph"
	"github.com/algoview/algoview/player"
	"github.com/algoview/algoview/scene"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	scn *scene.Scene
	mux *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(scn *scene.Scene) http.Handler {
	h := &Handler{scn: scn, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/nodes", h.addNode)
	h.mux.HandleFunc("PATCH /v1/nodes/{id}", h.moveNode)
	h.mux.HandleFunc("DELETE /v1/nodes/{id}", h.deleteNode)

	h.mux.HandleFunc("POST /v1/edges", h.addEdge)
	h.mux.HandleFunc("PATCH /v1/edges/{from}/{to}", h.updateEdge)
	h.mux.HandleFunc("DELETE /v1/edges/{from}/{to}", h.deleteEdge)
	h.mux.HandleFunc("POST /v1/edges/{from}/{to}/reverse", h.reverseEdge)

	h.mux.HandleFunc("GET /v1/graph", h.exportGraph)
	h.mux.HandleFunc("PUT /v1/graph", h.importGraph)
	h.mux.HandleFunc("DELETE /v1/graph", h.clearGraph)

	h.mux.HandleFunc("GET /v1/history", h.historyStatus)
	h.mux.HandleFunc("POST /v1/history/undo", h.undo)
	h.mux.HandleFunc("POST /v1/history/redo", h.redo)

	h.mux.HandleFunc("POST /v1/run", h.run)
	h.mux.HandleFunc("GET /v1/playback", h.playbackStatus)
	h.mux.HandleFunc("POST /v1/playback/stop", h.stopPlayback)
	h.mux.HandleFunc("POST /v1/playback/step-forward", h.stepForward)
	h.mux.HandleFunc("POST /v1/playback/step-back", h.stepBack)
	h.mux.HandleFunc("POST /v1/playback/jump", h.jump)
	h.mux.HandleFunc("POST /v1/playback/speed", h.setSpeed)

	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// appliedResponse reports a mutator's silent-no-op outcome.
type appliedResponse struct {
	Applied bool `json:"applied"`
}

func pathID(r *http.Request, key string) (graph.NodeID, error) {
	n, err := strconv.Atoi(r.PathValue(key))
	if err != nil {
		return 0, fmt.Errorf("path segment %s: %w", key, err)
	}
	return graph.NodeID(n), nil
}

// POST /v1/nodes — create a node at the given canvas position.
func (h *Handler) addNode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	writeJSON(w, http.StatusCreated, h.scn.AddNode(req.X, req.Y))
}

// PATCH /v1/nodes/{id} — move a node.
func (h *Handler) moveNode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	writeJSON(w, http.StatusOK, appliedResponse{h.scn.MoveNode(id, req.X, req.Y)})
}

// DELETE /v1/nodes/{id} — remove a node and its incident edges.
func (h *Handler) deleteNode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, appliedResponse{h.scn.DeleteNode(id)})
}

type edgeRequest struct {
	From   graph.NodeID   `json:"from"`
	To     graph.NodeID   `json:"to"`
	Kind   graph.EdgeKind `json:"kind"`
	Weight int            `json:"weight"`
}

// POST /v1/edges — connect two nodes.
func (h *Handler) addEdge(w http.ResponseWriter, r *http.Request) {
	req := edgeRequest{Kind: graph.Undirected, Weight: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	applied := h.scn.AddEdge(req.From, req.To, req.Kind, req.Weight)
	writeJSON(w, http.StatusOK, appliedResponse{applied})
}

// PATCH /v1/edges/{from}/{to} — retype and/or reweight an edge.
func (h *Handler) updateEdge(w http.ResponseWriter, r *http.Request) {
	from, err := pathID(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := pathID(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Kind   *graph.EdgeKind `json:"kind"`
		Weight *int            `json:"weight"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.Kind == nil && req.Weight == nil {
		writeError(w, http.StatusBadRequest, "kind or weight is required")
		return
	}

	applied := false
	if req.Kind != nil {
		applied = h.scn.UpdateEdgeKind(from, to, *req.Kind) || applied
	}
	if req.Weight != nil {
		applied = h.scn.UpdateEdgeWeight(from, to, *req.Weight) || applied
	}
	writeJSON(w, http.StatusOK, appliedResponse{applied})
}

// DELETE /v1/edges/{from}/{to} — remove an edge.
func (h *Handler) deleteEdge(w http.ResponseWriter, r *http.Request) {
	from, err := pathID(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := pathID(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, appliedResponse{h.scn.DeleteEdge(from, to)})
}

// POST /v1/edges/{from}/{to}/reverse — flip a directed edge.
func (h *Handler) reverseEdge(w http.ResponseWriter, r *http.Request) {
	from, err := pathID(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := pathID(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, appliedResponse{h.scn.ReverseEdge(from, to)})
}

// GET /v1/graph — export the current graph as a snapshot.
func (h *Handler) exportGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scn.Snapshot())
}

// PUT /v1/graph — replace the graph with the supplied snapshot.
func (h *Handler) importGraph(w http.ResponseWriter, r *http.Request) {
	var snap graph.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	h.scn.ImportSnapshot(snap)
	writeJSON(w, http.StatusOK, appliedResponse{true})
}

// DELETE /v1/graph — reset to an empty graph.
func (h *Handler) clearGraph(w http.ResponseWriter, r *http.Request) {
	h.scn.ClearGraph()
	writeJSON(w, http.StatusOK, appliedResponse{true})
}

// GET /v1/history — undo/redo availability.
func (h *Handler) historyStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"canUndo": h.scn.CanUndo(),
		"canRedo": h.scn.CanRedo(),
	})
}

// POST /v1/history/undo — step back one committed mutation.
func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, appliedResponse{h.scn.Undo()})
}

// POST /v1/history/redo — reapply the last undone mutation.
func (h *Handler) redo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, appliedResponse{h.scn.Redo()})
}

type runRequest struct {
	Algorithm engine.Kind  `json:"algorithm"`
	Start     graph.NodeID `json:"start"`
	End       graph.NodeID `json:"end,omitempty"`
	SpeedMs   int          `json:"speed_ms,omitempty"`
	Mode      string       `json:"mode,omitempty"`
}

// POST /v1/run — execute an algorithm and start trace playback.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	mode := player.Auto
	switch req.Mode {
	case "", "auto":
	case "manual":
		mode = player.Manual
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q", req.Mode))
		return
	}

	speed := time.Duration(req.SpeedMs) * time.Millisecond
	params := engine.Params{Start: req.Start, End: req.End}
	if err := h.scn.RunAlgorithm(req.Algorithm, params, speed, mode); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.scn.Playback())
}

// GET /v1/playback — current playback status and board.
func (h *Handler) playbackStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scn.Playback())
}

// POST /v1/playback/stop — cancel playback and clear the board.
func (h *Handler) stopPlayback(w http.ResponseWriter, r *http.Request) {
	h.scn.StopPlayback()
	writeJSON(w, http.StatusOK, appliedResponse{true})
}

// POST /v1/playback/step-forward — manual cursor advance.
func (h *Handler) stepForward(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, appliedResponse{h.scn.StepForward()})
}

// POST /v1/playback/step-back — manual cursor retreat.
func (h *Handler) stepBack(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, appliedResponse{h.scn.StepBackward()})
}

// POST /v1/playback/jump — manual cursor jump to an absolute index.
func (h *Handler) jump(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cursor int `json:"cursor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	writeJSON(w, http.StatusOK, appliedResponse{h.scn.JumpToStep(req.Cursor)})
}

// POST /v1/playback/speed — retime a running auto playback.
func (h *Handler) setSpeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SpeedMs int `json:"speed_ms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.SpeedMs <= 0 {
		writeError(w, http.StatusBadRequest, "speed_ms must be positive")
		return
	}

	applied := h.scn.SetSpeed(time.Duration(req.SpeedMs) * time.Millisecond)
	writeJSON(w, http.StatusOK, appliedResponse{applied})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
