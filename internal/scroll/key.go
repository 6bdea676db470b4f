// Package scroll animates keyboard paging for scrollable regions.
//
// A Controller turns PageUp/PageDown/Home/End presses into a target offset,
// accelerates rapid repeats with an integer multiplier, and converges the
// region's live offset toward the target one frame at a time.
package scroll

// Key is a navigation key handled by the controller.
type Key int

// Navigation keys.
const (
	KeyPageDown Key = iota + 1
	KeyPageUp
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyPageDown:
		return "pgdown"
	case KeyPageUp:
		return "pgup"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseKey maps a Bubble Tea key string to a navigation key.
func ParseKey(s string) (Key, bool) {
	switch s {
	case "pgdown":
		return KeyPageDown, true
	case "pgup":
		return KeyPageUp, true
	case "home":
		return KeyHome, true
	case "end":
		return KeyEnd, true
	}
	return 0, false
}

// Immediate reports whether the key jumps without animating.
func (k Key) Immediate() bool {
	return k == KeyHome || k == KeyEnd
}
