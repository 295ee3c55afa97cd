// Package animation drives the text-along-path animation loop.
//
// A [Loop] computes a cyclic progress fraction from wall-clock time and a
// configured period. It never schedules itself: the embedding surface calls
// [Step] once per display refresh, and each active loop recomputes glyph
// positions through its frame callbacks. Stopping a loop is a state flag
// flip observed before the next tick; progress is a pure function of the
// clock, so stopping and restarting never perturbs the path being animated.
package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// progress deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
