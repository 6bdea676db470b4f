package tui

import (
	"charm.land/bubbles/v2/viewport"

	"github.com/daptify14/scrollit/internal/scroll"
)

// Region IDs. Regions are looked up by ID on every key and frame so a pane
// that disappears mid-animation ends the animation instead of being written to.
const (
	regionDocument = "document"
	regionSidebar  = "sidebar"
	regionHelp     = "help"
)

// viewportRegion exposes a bubbles viewport to the scroll controller. The
// viewport clamps every offset it is given, so an unbounded region still
// stops at the end of its content.
type viewportRegion struct {
	id      string
	vp      *viewport.Model
	bounded bool
}

func (r viewportRegion) ID() string { return r.id }

func (r viewportRegion) Offset() (int, error) {
	if r.vp == nil {
		return 0, scroll.ErrRegionDetached
	}
	return r.vp.YOffset(), nil
}

func (r viewportRegion) MaxOffset() int {
	return max(0, r.vp.TotalLineCount()-r.vp.Height())
}

func (r viewportRegion) Bounded() bool { return r.bounded }

func (r viewportRegion) Height() int { return r.vp.Height() }

func (r viewportRegion) ScrollBy(delta int) error {
	if r.vp == nil {
		return scroll.ErrRegionDetached
	}
	r.vp.SetYOffset(r.vp.YOffset() + delta)
	return nil
}

// helpRegion scrolls the help overlay.
type helpRegion struct {
	m *Model
}

func (r helpRegion) ID() string { return regionHelp }

func (r helpRegion) Offset() (int, error) {
	if !r.m.overlays.showHelp {
		return 0, scroll.ErrRegionDetached
	}
	return r.m.overlays.helpScroll, nil
}

func (r helpRegion) MaxOffset() int { return r.m.helpMaxScroll() }

func (r helpRegion) Bounded() bool { return true }

func (r helpRegion) Height() int {
	_, h := helpOverlayViewport(r.m.effectiveWidth(), r.m.effectiveHeight())
	return h
}

func (r helpRegion) ScrollBy(delta int) error {
	if !r.m.overlays.showHelp {
		return scroll.ErrRegionDetached
	}
	r.m.overlays.helpScroll = min(max(0, r.m.overlays.helpScroll+delta), r.MaxOffset())
	return nil
}

// region returns the live region for id.
func (m *Model) region(id string) (scroll.Region, error) {
	switch id {
	case regionDocument:
		if !m.doc.ready {
			return nil, scroll.ErrRegionDetached
		}
		return viewportRegion{id: regionDocument, vp: &m.doc.viewport}, nil
	case regionSidebar:
		if !m.sidebarShown() || !m.sidebar.viewportReady {
			return nil, scroll.ErrRegionDetached
		}
		return viewportRegion{id: regionSidebar, vp: &m.sidebar.viewport, bounded: true}, nil
	case regionHelp:
		if !m.overlays.showHelp {
			return nil, scroll.ErrRegionDetached
		}
		return helpRegion{m: m}, nil
	}
	return nil, scroll.ErrRegionDetached
}

func (m *Model) locator() scroll.Locator {
	return scroll.LocatorFunc(m.region)
}
