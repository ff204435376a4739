// Package player replays an engine.Trace as discrete highlight steps,
// either on an auto-advancing timer or under manual cursor control.
//
// State machine: Idle → Running → Done → Idle. Running ends in Done
// only through the auto timer (one extra fire past the last event);
// the only way back from Running to Idle is an explicit Stop. Reset
// returns any state to Idle with the trace cleared.
//
// Highlight application is purely additive: each event sets one
// edge's flag (and its endpoints') on the Board, so forward stepping
// never recomputes anything. Flags have no recorded inverse, so a
// backward step replays the trace from the beginning up to the new
// cursor instead of un-setting flags. Snapshotting per-step flag
// state would avoid the replay at a memory cost; replay was chosen
// because traces are short and the board is small.
//
// The auto timer fires on a runtime goroutine; the Player serializes
// all access with an internal lock and a generation counter, so a
// Stop synchronously invalidates any late fire.
package player
