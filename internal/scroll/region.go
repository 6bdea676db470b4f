package scroll

import "errors"

// ErrRegionDetached is returned when a region can no longer be read or moved.
var ErrRegionDetached = errors.New("scroll region detached")

// Region is a vertically scrollable area.
//
// Offsets are measured in rows from the top. An unbounded region reports a
// MaxOffset for End but is never clamped against it when paging down.
type Region interface {
	ID() string
	Offset() (int, error)
	MaxOffset() int
	Bounded() bool
	// Height is the visible height, read fresh on every call.
	Height() int
	ScrollBy(delta int) error
}

// Locator finds a region by ID. It returns ErrRegionDetached when the
// region is gone.
type Locator interface {
	Region(id string) (Region, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(id string) (Region, error)

// Region implements Locator.
func (f LocatorFunc) Region(id string) (Region, error) { return f(id) }
