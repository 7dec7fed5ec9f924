// Package wellness holds the mindfulness countdown timer and the guided
// breathing cycle.
package wellness

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// State is the mindfulness timer state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Timer is a pausable countdown driven by one-second ticks.
type Timer struct {
	mu        sync.Mutex
	clk       clock.Clock
	duration  time.Duration
	remaining time.Duration
	state     State
	running   bool
	quit      chan struct{}
	onDone    func()
}

// NewTimer returns an idle timer of the given length. onDone may be nil; it
// is called once when the countdown completes.
func NewTimer(duration time.Duration, clk clock.Clock, onDone func()) *Timer {
	if clk == nil {
		clk = clock.New()
	}
	return &Timer{
		clk:       clk,
		duration:  duration,
		remaining: duration,
		state:     StateIdle,
		quit:      make(chan struct{}),
		onDone:    onDone,
	}
}

// Start begins (or restarts after completion) the countdown. Starting a
// running timer is a no-op; starting a paused one resumes it.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case StateRunning:
		return
	case StateIdle, StateDone:
		t.remaining = t.duration
	}
	t.state = StateRunning

	if !t.running {
		t.running = true
		go t.run()
	}
	util.LogDebugf("Mindfulness timer started: %s remaining", t.remaining)
}

// Pause suspends the countdown without losing the remaining time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		t.state = StatePaused
	}
}

// Resume continues a paused countdown.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StatePaused {
		t.state = StateRunning
	}
}

// Reset returns the timer to idle with the full duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateIdle
	t.remaining = t.duration
}

// Stop terminates the tick loop. The timer cannot be restarted afterwards.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		t.running = false
		close(t.quit)
	}
}

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// State returns the current timer state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Timer) run() {
	ticker := t.clk.Ticker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.mu.Lock()
			if t.state != StateRunning {
				t.mu.Unlock()
				continue
			}
			t.remaining -= time.Second
			if t.remaining > 0 {
				t.mu.Unlock()
				continue
			}
			t.remaining = 0
			t.state = StateDone
			t.running = false
			done := t.onDone
			t.mu.Unlock()

			if done != nil {
				done()
			}
			return
		case <-t.quit:
			return
		}
	}
}
