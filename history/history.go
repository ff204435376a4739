package history

import "sync"

// Store is an undo/redo stack over snapshots of type S.
// Structural equality for deduplication is supplied by the caller;
// snapshots are treated as immutable values once pushed.
//
// Store guards its stacks with a mutex: the Batcher's debounce timer
// pushes from a runtime goroutine while the composing layer pushes
// from its own call path.
type Store[S any] struct {
	mu     sync.Mutex
	past   []S
	future []S
	eq     func(a, b S) bool
}

// NewStore creates an empty Store using eq for deduplication.
// A nil eq disables deduplication.
func NewStore[S any](eq func(a, b S) bool) *Store[S] {
	if eq == nil {
		eq = func(S, S) bool { return false }
	}

	return &Store[S]{eq: eq}
}

// Push records snap as the most recent pre-mutation state and clears
// the redo branch. Pushing a snapshot structurally equal to the top
// of past is a no-op for the past stack while still discarding
// future, so a fresh edit after an undo always drops the branch.
func (s *Store[S]) Push(snap S) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.future = s.future[:0]
	if n := len(s.past); n > 0 && s.eq(s.past[n-1], snap) {
		return
	}
	s.past = append(s.past, snap)
}

// Undo pops the most recent past state, saves current onto the redo
// stack, and hands the popped state to apply. Reports false (and
// calls nothing) when there is nothing to undo.
func (s *Store[S]) Undo(current S, apply func(S)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.past)
	if n == 0 {
		return false
	}

	top := s.past[n-1]
	s.past = s.past[:n-1]
	s.future = append(s.future, current)
	apply(top)

	return true
}

// Redo is symmetric to Undo: it pops the redo stack, saves current
// onto past, and hands the popped state to apply.
func (s *Store[S]) Redo(current S, apply func(S)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.future)
	if n == 0 {
		return false
	}

	top := s.future[n-1]
	s.future = s.future[:n-1]
	s.past = append(s.past, current)
	apply(top)

	return true
}

// Clear empties both stacks. Used on full graph reset.
func (s *Store[S]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.past = s.past[:0]
	s.future = s.future[:0]
}

// CanUndo reports whether an Undo would apply.
func (s *Store[S]) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.past) > 0
}

// CanRedo reports whether a Redo would apply.
func (s *Store[S]) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.future) > 0
}

// Depth returns the past and future stack sizes, for controls and
// instrumentation.
func (s *Store[S]) Depth() (past, future int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.past), len(s.future)
}
