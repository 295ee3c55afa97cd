package animation

import (
	"math"
	"sync"
	"time"
)

var (
	loopMu      sync.Mutex
	activeLoops = make(map[*Loop]struct{})
)

// Loop is a cancellable, repeating animation over a fixed period.
//
// Progress is derived from absolute clock time, progress = (now mod
// period) / period, so it is a pure function of the clock and needs no
// per-frame accumulation. Frame callbacks fire on each [Step] while the
// loop is running.
type Loop struct {
	period time.Duration

	mu             sync.Mutex
	running        bool
	listeners      map[int]func(progress float64)
	nextListenerID int
}

// NewLoop creates a stopped loop with the given period. A non-positive
// period is treated as one second.
func NewLoop(period time.Duration) *Loop {
	if period <= 0 {
		period = time.Second
	}
	return &Loop{
		period:    period,
		listeners: make(map[int]func(float64)),
	}
}

// SetPeriod changes the loop period. Takes effect on the next tick.
func (l *Loop) SetPeriod(period time.Duration) {
	if period <= 0 {
		return
	}
	l.mu.Lock()
	l.period = period
	l.mu.Unlock()
}

// Start activates the loop. Starting an already running loop is a no-op:
// progress is a function of the clock, so a restart never perturbs the
// model being animated.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.mu.Unlock()

	loopMu.Lock()
	activeLoops[l] = struct{}{}
	loopMu.Unlock()
}

// Stop deactivates the loop. The flag is observed before the next tick is
// delivered, so no callback fires after Stop returns.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	l.mu.Unlock()

	loopMu.Lock()
	delete(activeLoops, l)
	loopMu.Unlock()
}

// Toggle starts a stopped loop and stops a running one, returning the new
// running state.
func (l *Loop) Toggle() bool {
	l.mu.Lock()
	running := l.running
	l.mu.Unlock()
	if running {
		l.Stop()
		return false
	}
	l.Start()
	return true
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Progress returns the loop's cyclic position in [0, 1).
func (l *Loop) Progress() float64 {
	l.mu.Lock()
	period := l.period
	l.mu.Unlock()

	now := float64(Now().UnixNano()) / float64(time.Second)
	seconds := period.Seconds()
	return math.Mod(now, seconds) / seconds
}

// OnFrame adds a callback invoked with the current progress on every tick
// while the loop runs. Returns an unsubscribe function.
func (l *Loop) OnFrame(fn func(progress float64)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextListenerID
	l.nextListenerID++
	l.listeners[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

// tick delivers one frame to all listeners if the loop is still running.
func (l *Loop) tick() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	fns := make([]func(float64), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	progress := l.Progress()
	for _, fn := range fns {
		fn(progress)
	}
}

// Step advances all active loops. The embedding surface calls this once per
// display refresh.
func Step() {
	loopMu.Lock()
	if len(activeLoops) == 0 {
		loopMu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks.
	loops := make([]*Loop, 0, len(activeLoops))
	for l := range activeLoops {
		loops = append(loops, l)
	}
	loopMu.Unlock()

	for _, l := range loops {
		l.tick()
	}
}

// HasActiveLoops returns true if any loop is running.
func HasActiveLoops() bool {
	loopMu.Lock()
	defer loopMu.Unlock()
	return len(activeLoops) > 0
}
