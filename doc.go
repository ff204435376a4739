// Package algoview is the algorithmic core of an interactive graph
// visualizer: a mutable weighted-graph model, four classical algorithms
// (BFS, DFS, Dijkstra, Prim), a replayable step trace with a player,
// and a generic undo/redo history with debounced batching.
//
// The rendering layer lives elsewhere; this module only computes state
// and hands it back. Everything is organized in small flat packages:
//
//	graph/   — Node, Edge, Graph, mutation primitives, snapshots
//	engine/  — BFS, DFS, Dijkstra, Prim and the Trace they produce
//	player/  — seekable auto/manual playback over a Trace
//	history/ — generic snapshot undo/redo stack + debounced Batcher
//	scene/   — composition of the above behind one mutation surface
//	metrics/ — Prometheus instrumentation
//	config/  — YAML + env configuration for the HTTP facade
//	server/  — JSON-over-HTTP facade for an out-of-process renderer
//
// Quick ASCII example:
//
//	s := scene.New()
//	a := s.AddNode(40, 40)
//	b := s.AddNode(200, 40)
//	s.AddEdge(a.ID, b.ID, graph.Undirected, 3)
//	s.RunAlgorithm(engine.KindBFS, engine.Params{Start: a.ID},
//	        500*time.Millisecond, player.Manual)
//	s.StepForward() // highlights a→b on the board
//
// Determinism is a design contract throughout: adjacency lists keep
// insertion order, algorithms break ties by enumeration order, and a
// given graph always produces the same trace.
package algoview
