// Package history provides a generic snapshot-based undo/redo stack
// and a debounced Batcher for high-frequency edit bursts.
//
// Store[S] keeps two stacks: past (top = the most recent pre-mutation
// state) and future (states walked back over by undo). A push
// deduplicates against the top of past, so no-op edits never create
// history entries, and always discards future — an edit after an undo
// abandons the redone branch rather than merging it.
//
// Batcher[S] coalesces a burst of rapid mutations (say, fifty
// one-pixel node moves during a drag) into a single history entry:
// the first call of a burst captures the pre-mutation snapshot, every
// call resets a debounce timer, and only when the timer fires quietly
// is the captured snapshot pushed. Closing the batcher mid-burst
// abandons the pending snapshot — an accepted limitation, never a
// partial push.
package history
