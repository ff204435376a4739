package history

import (
	"sync"
	"time"
)

// DefaultWindow is the debounce window separating mutation bursts.
const DefaultWindow = 300 * time.Millisecond

// Batcher coalesces a burst of mutations into one history entry.
//
// Touch must be called immediately before each mutation of a burst:
// the first Touch captures the pre-mutation snapshot via capture, and
// every Touch re-arms the debounce timer. When the window elapses
// with no further Touch, the captured snapshot is pushed to the
// store. The timer fires on a runtime goroutine, so Batcher carries
// its own lock even though the surrounding model is single-threaded.
type Batcher[S any] struct {
	mu      sync.Mutex
	store   *Store[S]
	capture func() S
	window  time.Duration

	pending *S
	timer   *time.Timer
	gen     uint64 // invalidates late fires after a reset or Close
}

// NewBatcher wires a Batcher to store. capture must return the
// current snapshot; window <= 0 selects DefaultWindow.
func NewBatcher[S any](store *Store[S], capture func() S, window time.Duration) *Batcher[S] {
	if window <= 0 {
		window = DefaultWindow
	}

	return &Batcher[S]{store: store, capture: capture, window: window}
}

// Touch opens or extends the current burst. Call it right before the
// mutation so the first capture still sees the pre-mutation state.
func (b *Batcher[S]) Touch() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending == nil {
		snap := b.capture()
		b.pending = &snap
	}

	// Re-arm: a reset never stacks timers, it replaces the deadline.
	b.gen++
	gen := b.gen
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.window, func() { b.fire(gen) })
}

// Flush pushes the pending snapshot immediately, without waiting for
// the window. A no-op when no burst is open. The composing layer
// flushes before undo/redo so an in-flight drag stays undoable.
func (b *Batcher[S]) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commit()
}

// Close cancels any armed timer and abandons the pending snapshot.
// Tearing down mid-burst therefore loses that one history entry;
// there is never a partial push.
func (b *Batcher[S]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pending = nil
}

// fire runs on the timer goroutine when a burst went quiet.
func (b *Batcher[S]) fire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A Touch, Flush or Close after arming supersedes this fire.
	if gen != b.gen {
		return
	}
	b.commit()
}

// commit pushes and clears the pending snapshot. Caller holds mu.
func (b *Batcher[S]) commit() {
	if b.pending == nil {
		return
	}
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.store.Push(*b.pending)
	b.pending = nil
}
