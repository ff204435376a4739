// Package scene composes the graph model, the history store, the
// algorithm engine and the step player behind one mutation surface —
// the entry points a rendering layer calls.
//
// Two rules govern the composition:
//
//   - Snapshot first, then mutate. Every structural mutator captures
//     the pre-mutation snapshot and pushes it to history before
//     applying; node moves route through the debounced Batcher so a
//     drag becomes one undo entry instead of fifty.
//
//   - Mutation and playback are mutually exclusive. Every mutator
//     stops any active playback (flags and player state return to
//     Idle) before touching the graph, so a timer fire can never
//     reference node or edge identities a concurrent edit removed.
//
// The stores reference each other only through this package's
// explicit wiring — there is no shared global coordination.
package scene
