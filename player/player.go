package player

import (
	"sync"
	"time"

	"github.com/algoview/algoview/engine"
)

// DefaultSpeed is the auto-playback interval used when Start is
// given a non-positive speed.
const DefaultSpeed = 500 * time.Millisecond

// State is the playback lifecycle phase.
type State uint8

const (
	// Idle: no trace loaded.
	Idle State = iota

	// Running: a trace is loaded and the cursor is live.
	Running

	// Done: auto playback ran past the last event.
	Done
)

// String returns "idle", "running" or "done".
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "idle"
	}
}

// MarshalText encodes the state as its String form.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Mode selects timer-driven or cursor-driven playback.
type Mode uint8

const (
	// Auto advances the cursor on a repeating timer.
	Auto Mode = iota

	// Manual moves the cursor only through Step/Jump calls.
	Manual
)

// playback is the mode variant held while Running. Auto carries the
// timer payload; manual carries nothing — the split makes timer
// state unrepresentable in manual mode.
type playback interface{ mode() Mode }

type autoRun struct {
	speed time.Duration
	timer *time.Timer
}

func (*autoRun) mode() Mode { return Auto }

type manualRun struct{}

func (manualRun) mode() Mode { return Manual }

// Status is a read-only view of the player for callers outside the
// lock (including a deep copy of the board).
type Status struct {
	State    State         `json:"state"`
	Mode     Mode          `json:"-"`
	Cursor   int           `json:"cursor"`
	Length   int           `json:"length"`
	Complete bool          `json:"complete"`
	Board    *Board        `json:"board"`
	Speed    time.Duration `json:"-"`
}

// Player owns one Board and replays one trace at a time.
type Player struct {
	mu     sync.Mutex
	board  *Board
	state  State
	trace  engine.Trace
	cursor int
	run    playback
	gen    uint64 // bumps on every (re)start/stop; late timer fires check it
}

// New creates an Idle player over board. A nil board gets a fresh one.
func New(board *Board) *Player {
	if board == nil {
		board = NewBoard()
	}

	return &Player{board: board, cursor: -1}
}

// Start loads trace and transitions to Running with the cursor before
// the first event. Any previous run is cancelled first — its timer
// can never fire afterwards — and the board's highlight flags are
// reset (markers, set by the caller for this run, are kept).
//
// An empty trace is valid: auto mode reaches Done on the first fire,
// manual mode reports IsComplete immediately.
func (p *Player) Start(trace engine.Trace, speed time.Duration, mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.board.ResetFlags()
	p.trace = trace
	p.cursor = -1
	p.state = Running

	if mode == Manual {
		p.run = manualRun{}

		return
	}

	if speed <= 0 {
		speed = DefaultSpeed
	}
	a := &autoRun{speed: speed}
	p.run = a
	p.armLocked(a)
}

// Stop is the explicit cancel: Running → Idle with the trace cleared,
// the board wiped, and any pending timer fire synchronously
// invalidated. Stopping an Idle player is a no-op.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

// Reset returns the player to Idle from any state (the Done → Idle
// edge of the state machine). Identical in effect to Stop.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

// StepForward advances the cursor by one and applies that event.
// Manual mode only; reports false at the end of the trace.
func (p *Player) StepForward() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.manualLocked() || p.cursor >= len(p.trace)-1 {
		return false
	}

	p.cursor++
	p.board.Apply(p.trace[p.cursor])

	return true
}

// StepBackward moves the cursor back by one. Flags are not
// reversible, so the board is replayed from the start up to the new
// cursor. Manual mode only; reports false before the first event.
func (p *Player) StepBackward() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.manualLocked() || p.cursor <= -1 {
		return false
	}

	p.cursor--
	p.replayLocked()

	return true
}

// JumpToStep positions the cursor at i, clamped to [-1, len-1].
// Forward jumps apply the skipped events; backward jumps replay.
// Manual mode only.
func (p *Player) JumpToStep(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.manualLocked() {
		return false
	}

	if i < -1 {
		i = -1
	}
	if last := len(p.trace) - 1; i > last {
		i = last
	}

	switch {
	case i > p.cursor:
		for p.cursor < i {
			p.cursor++
			p.board.Apply(p.trace[p.cursor])
		}
	case i < p.cursor:
		p.cursor = i
		p.replayLocked()
	}

	return true
}

// SetSpeed changes the auto-playback interval and re-arms the timer
// with the new deadline. Reports false unless Running in auto mode.
func (p *Player) SetSpeed(speed time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	a, ok := p.run.(*autoRun)
	if p.state != Running || !ok || speed <= 0 {
		return false
	}

	a.speed = speed
	p.gen++
	if a.timer != nil {
		a.timer.Stop()
	}
	p.armLocked(a)

	return true
}

// State returns the current lifecycle phase.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Cursor returns the trace index of the last applied event (-1 before
// the first).
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cursor
}

// IsComplete reports whether the cursor sits on the last event (true
// for an empty trace, and always true once Done).
func (p *Player) IsComplete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state == Done || (p.state == Running && p.cursor == len(p.trace)-1)
}

// Snapshot returns a consistent read-only view, with the board
// deep-copied so the renderer can read it without holding the lock.
func (p *Player) Snapshot() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := Status{
		State:    p.state,
		Cursor:   p.cursor,
		Length:   len(p.trace),
		Complete: p.state == Done || (p.state == Running && p.cursor == len(p.trace)-1),
		Board:    p.board.clone(),
	}
	if p.run != nil {
		st.Mode = p.run.mode()
	}
	if a, ok := p.run.(*autoRun); ok {
		st.Speed = a.speed
	}

	return st
}

// armLocked schedules the next auto fire. Caller holds mu.
func (p *Player) armLocked(a *autoRun) {
	gen := p.gen
	a.timer = time.AfterFunc(a.speed, func() { p.tick(gen) })
}

// tick is one auto-timer fire: advance and apply, or — when the
// cursor already sits on the last event — transition to Done and
// clear the transient markers without touching the highlight flags.
func (p *Player) tick(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A Stop/Start/SetSpeed after arming supersedes this fire.
	if gen != p.gen || p.state != Running {
		return
	}
	a, ok := p.run.(*autoRun)
	if !ok {
		return
	}

	if p.cursor >= len(p.trace)-1 {
		p.state = Done
		p.run = nil
		p.board.ClearMarkers()

		return
	}

	p.cursor++
	p.board.Apply(p.trace[p.cursor])
	p.armLocked(a)
}

// replayLocked rebuilds the board from scratch up to the cursor.
// Markers are untouched. Caller holds mu.
func (p *Player) replayLocked() {
	p.board.ResetFlags()
	for i := 0; i <= p.cursor; i++ {
		p.board.Apply(p.trace[i])
	}
}

// manualLocked reports whether manual stepping applies right now.
func (p *Player) manualLocked() bool {
	if p.state != Running || p.run == nil {
		return false
	}

	return p.run.mode() == Manual
}

// cancelLocked invalidates any armed timer without changing state.
func (p *Player) cancelLocked() {
	p.gen++
	if a, ok := p.run.(*autoRun); ok && a.timer != nil {
		a.timer.Stop()
	}
	p.run = nil
}

// resetLocked is the shared Stop/Reset body. Caller holds mu.
func (p *Player) resetLocked() {
	p.cancelLocked()
	p.trace = nil
	p.cursor = -1
	p.state = Idle
	p.board.Clear()
}
