package scroll

import "time"

// Acceleration derives a page multiplier from key press timing.
//
// Terminals repeat key presses while a key is held. A press arriving while
// held and within the reset window bumps the multiplier; a press after a
// release, or after a pause longer than the window, starts over at 1. This
// is a timing heuristic, not a true key-repeat signal.
type Acceleration struct {
	window time.Duration
	limit  int

	multiplier int
	lastPress  time.Time
	held       bool

	// gen identifies the pending reset. Any key event advances it, so a
	// reset scheduled before that event expires as a no-op.
	gen uint64
}

// NewAcceleration returns a tracker with the given reset window and
// multiplier cap.
func NewAcceleration(window time.Duration, limit int) Acceleration {
	return Acceleration{
		window:     window,
		limit:      max(1, limit),
		multiplier: 1,
	}
}

// KeyDown records a press and returns the multiplier to use for it.
func (a *Acceleration) KeyDown(now time.Time) int {
	switch {
	case !a.held:
		a.held = true
		a.multiplier = 1
	case now.Sub(a.lastPress) < a.window:
		a.multiplier++
	default:
		a.multiplier = 1
	}
	a.multiplier = min(max(a.multiplier, 1), a.limit)
	a.lastPress = now
	a.gen++
	return a.multiplier
}

// KeyUp records a release and returns the generation of the reset that
// should fire one window later.
func (a *Acceleration) KeyUp() uint64 {
	a.held = false
	a.gen++
	return a.gen
}

// Expire applies the reset scheduled with gen. It reports whether the
// multiplier was reset; stale generations are ignored.
func (a *Acceleration) Expire(gen uint64) bool {
	if gen != a.gen {
		return false
	}
	a.multiplier = 1
	return true
}

// Reset drops all speed state and invalidates any pending reset.
func (a *Acceleration) Reset() {
	a.multiplier = 1
	a.held = false
	a.lastPress = time.Time{}
	a.gen++
}

// Multiplier returns the current multiplier.
func (a Acceleration) Multiplier() int { return a.multiplier }

// Held reports whether a key is considered held down.
func (a Acceleration) Held() bool { return a.held }

