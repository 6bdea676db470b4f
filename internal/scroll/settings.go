package scroll

import "time"

// Default tunables.
const (
	DefaultResetWindow   = 300 * time.Millisecond
	DefaultMaxMultiplier = 5
	DefaultMaxStep       = 50
	DefaultFPS           = 60
)

// Settings holds the controller tunables.
type Settings struct {
	// ResetWindow is the longest gap between presses that still accelerates,
	// and the delay after a release before the multiplier drops back to 1.
	ResetWindow time.Duration
	// MaxMultiplier caps the page multiplier.
	MaxMultiplier int
	// MaxStep is the farthest the animation moves in one frame.
	MaxStep int
	// FPS sets the frame interval.
	FPS int
}

// DefaultSettings returns the stock tunables.
func DefaultSettings() Settings {
	return Settings{
		ResetWindow:   DefaultResetWindow,
		MaxMultiplier: DefaultMaxMultiplier,
		MaxStep:       DefaultMaxStep,
		FPS:           DefaultFPS,
	}
}

// withDefaults fills zero or negative fields from DefaultSettings.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.ResetWindow <= 0 {
		s.ResetWindow = d.ResetWindow
	}
	if s.MaxMultiplier <= 0 {
		s.MaxMultiplier = d.MaxMultiplier
	}
	if s.MaxStep <= 0 {
		s.MaxStep = d.MaxStep
	}
	if s.FPS <= 0 {
		s.FPS = d.FPS
	}
	return s
}

// FrameInterval returns the delay between animation frames.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(1, s.FPS))
}
