package scroll

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a running animation by one frame.
type FrameMsg struct {
	id  int
	tag uint64
}

// ResetMsg fires one reset window after a key release.
type ResetMsg struct {
	id  int
	gen uint64
}

// Ticker schedules fn to produce a message after d. tea.Tick is the default.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Controller.
type Option func(*Controller)

// WithSettings overrides the default tunables. Zero fields keep defaults.
func WithSettings(s Settings) Option {
	return func(c *Controller) { c.settings = s.withDefaults() }
}

// WithLogger logs state transitions at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTicker replaces the scheduling primitive used for frames and resets.
func WithTicker(t Ticker) Option {
	return func(c *Controller) {
		if t != nil {
			c.tick = t
		}
	}
}

// Controller owns the animation and speed state for one program. It is a
// value type so it can live inside a Bubble Tea model; call its methods on
// an addressable copy.
//
// All methods must be called from the Bubble Tea update loop. Messages it
// produces carry the controller ID and a generation tag; anything stale is
// dropped in Update, which is how pending frames and resets get cancelled.
type Controller struct {
	id       int
	settings Settings
	log      *slog.Logger
	tick     Ticker

	attached bool
	anim     Animator
	accel    Acceleration
	tag      uint64
}

// New returns a detached controller.
func New(opts ...Option) Controller {
	c := Controller{
		id:       nextID(),
		settings: DefaultSettings(),
		log:      slog.New(slog.DiscardHandler),
		tick:     tea.Tick,
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.anim = NewAnimator(c.settings.MaxStep)
	c.accel = NewAcceleration(c.settings.ResetWindow, c.settings.MaxMultiplier)
	return c
}

// Attach enables key handling.
func (c *Controller) Attach() {
	if c.attached {
		return
	}
	c.attached = true
	c.log.Debug("scroll controller attached", "id", c.id)
}

// Detach disables key handling, stops any animation and invalidates every
// pending frame and reset.
func (c *Controller) Detach() {
	if !c.attached {
		return
	}
	c.attached = false
	c.anim.Stop()
	c.accel.Reset()
	c.tag++
	c.log.Debug("scroll controller detached", "id", c.id)
}

// Attached reports whether the controller handles keys.
func (c Controller) Attached() bool { return c.attached }

// KeyDown handles a navigation key press on region r.
func (c *Controller) KeyDown(k Key, r Region, now time.Time) tea.Cmd {
	if !c.attached || r == nil {
		return nil
	}
	prev := c.accel.Multiplier()
	mult := c.accel.KeyDown(now)
	if mult != prev {
		c.log.Debug("scroll multiplier changed", "from", prev, "to", mult)
	}

	target, err := ComputeTarget(r, k, mult)
	if err != nil {
		c.log.Debug("scroll target unavailable", "key", k.String(), "region", r.ID(), "err", err)
		return nil
	}
	if target.Immediate {
		c.jumped(k, r, target.Offset)
		return nil
	}

	c.log.Debug("scroll target updated",
		"key", k.String(),
		"region", r.ID(),
		"target", target.Offset,
		"multiplier", mult,
	)
	return c.setTarget(r.ID(), target.Offset)
}

// Jump moves r to its top or bottom for Home or End without recording a
// press, so aliases with no key-up of their own leave the speed state
// alone. Other keys are ignored.
func (c *Controller) Jump(k Key, r Region) {
	if !c.attached || r == nil || !k.Immediate() {
		return
	}
	target, err := ComputeTarget(r, k, 1)
	if err != nil {
		c.log.Debug("scroll target unavailable", "key", k.String(), "region", r.ID(), "err", err)
		return
	}
	c.jumped(k, r, target.Offset)
}

// jumped stops any animation after the region already moved; a running
// animation would drag it back.
func (c *Controller) jumped(k Key, r Region, offset int) {
	c.anim.Stop()
	c.tag++
	c.log.Debug("scroll jumped", "key", k.String(), "region", r.ID(), "offset", offset)
}

// KeyUp handles a navigation key release and schedules the multiplier reset.
func (c *Controller) KeyUp(k Key) tea.Cmd {
	if !c.attached {
		return nil
	}
	gen := c.accel.KeyUp()
	id := c.id
	c.log.Debug("scroll key released", "key", k.String(), "gen", gen)
	return c.tick(c.settings.ResetWindow, func(time.Time) tea.Msg {
		return ResetMsg{id: id, gen: gen}
	})
}

// AnimateTo scrolls r toward target, clamped to the region.
func (c *Controller) AnimateTo(r Region, target int) tea.Cmd {
	if !c.attached || r == nil {
		return nil
	}
	target = min(max(0, target), max(0, r.MaxOffset()))
	c.log.Debug("scroll animate to", "region", r.ID(), "target", target)
	return c.setTarget(r.ID(), target)
}

func (c *Controller) setTarget(regionID string, target int) tea.Cmd {
	if !c.anim.SetTarget(regionID, target) {
		return nil
	}
	c.tag++
	return c.frame()
}

func (c *Controller) frame() tea.Cmd {
	id, tag := c.id, c.tag
	return c.tick(c.settings.FrameInterval(), func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

// Update consumes the controller's own frame and reset messages. loc
// resolves the live region on every frame.
func (c *Controller) Update(msg tea.Msg, loc Locator) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != c.id || msg.tag != c.tag || !c.anim.Running() {
			return nil
		}
		r, err := loc.Region(c.anim.RegionID())
		if err != nil {
			c.anim.Stop()
			c.log.Debug("scroll aborted", "region", c.anim.RegionID(), "err", err)
			return nil
		}
		if c.anim.Step(r) {
			c.log.Debug("scroll complete", "region", r.ID(), "target", c.anim.Target())
			return nil
		}
		return c.frame()
	case ResetMsg:
		if msg.id != c.id {
			return nil
		}
		if c.accel.Expire(msg.gen) {
			c.log.Debug("scroll multiplier reset after inactivity")
		}
	}
	return nil
}

// Multiplier returns the current page multiplier.
func (c Controller) Multiplier() int { return c.accel.Multiplier() }

// Animating reports whether an animation is in progress.
func (c Controller) Animating() bool { return c.anim.Running() }

// Target returns the current animation target.
func (c Controller) Target() int { return c.anim.Target() }

// Settings returns the effective tunables.
func (c Controller) Settings() Settings { return c.settings }
