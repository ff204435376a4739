package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoview/algoview/history"
)

// testWindow keeps the debounce short so tests stay fast while still
// leaving a wide margin between "inside" and "past" the window.
const testWindow = 25 * time.Millisecond

func pastDepth[S any](s *history.Store[S]) int {
	past, _ := s.Depth()

	return past
}

func TestBatcher_BurstCollapsesToOneEntry(t *testing.T) {
	s := history.NewStore(intEq)
	state := 0
	b := history.NewBatcher(s, func() int { return state }, testWindow)

	// Ten rapid "move" calls inside one window.
	for i := 1; i <= 10; i++ {
		b.Touch()
		state = i
	}
	assert.Equal(t, 0, pastDepth(s), "nothing pushed while the burst is live")

	// Quiet period: the single captured pre-burst snapshot lands.
	require.Eventually(t, func() bool { return pastDepth(s) == 1 },
		20*testWindow, time.Millisecond)

	restored := -1
	require.True(t, s.Undo(state, func(v int) { restored = v }))
	assert.Equal(t, 0, restored, "undo rewinds the whole burst")
}

func TestBatcher_SeparateBurstsSeparateEntries(t *testing.T) {
	s := history.NewStore(intEq)
	state := 0
	b := history.NewBatcher(s, func() int { return state }, testWindow)

	b.Touch()
	state = 1
	require.Eventually(t, func() bool { return pastDepth(s) == 1 },
		20*testWindow, time.Millisecond)

	b.Touch()
	state = 2
	require.Eventually(t, func() bool { return pastDepth(s) == 2 },
		20*testWindow, time.Millisecond)
}

func TestBatcher_FlushPushesImmediately(t *testing.T) {
	s := history.NewStore(intEq)
	state := 0
	b := history.NewBatcher(s, func() int { return state }, time.Hour)

	b.Flush()
	assert.Equal(t, 0, pastDepth(s), "flush without a burst is a no-op")

	b.Touch()
	state = 1
	b.Flush()
	assert.Equal(t, 1, pastDepth(s))

	// The armed hour-long timer was superseded; no second entry ever
	// lands for the same burst.
	time.Sleep(3 * testWindow)
	assert.Equal(t, 1, pastDepth(s))
}

func TestBatcher_CloseAbandonsPending(t *testing.T) {
	s := history.NewStore(intEq)
	state := 0
	b := history.NewBatcher(s, func() int { return state }, testWindow)

	b.Touch()
	state = 1
	b.Close()

	time.Sleep(3 * testWindow)
	assert.Equal(t, 0, pastDepth(s), "teardown mid-burst drops the entry")
}

func TestBatcher_DefaultWindow(t *testing.T) {
	s := history.NewStore(intEq)
	b := history.NewBatcher(s, func() int { return 0 }, 0)
	b.Touch()
	b.Flush()
	assert.Equal(t, 1, pastDepth(s))
}
