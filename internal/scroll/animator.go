package scroll

// Animator converges a region's offset toward a target at a bounded step.
//
// It is single-flight: SetTarget on a running animator only redirects it.
// The animator does not schedule frames itself; the caller schedules one
// when SetTarget reports a start and after every Step that is not done.
type Animator struct {
	maxStep int

	regionID string
	target   int
	running  bool
}

// NewAnimator returns an idle animator moving at most maxStep per frame.
func NewAnimator(maxStep int) Animator {
	return Animator{maxStep: max(1, maxStep)}
}

// SetTarget points the animation at target within the region. It reports
// whether the animator went from idle to running, in which case the caller
// must schedule the first frame.
func (a *Animator) SetTarget(regionID string, target int) bool {
	a.regionID = regionID
	a.target = target
	if a.running {
		return false
	}
	a.running = true
	return true
}

// Step advances one frame against the live region. It returns true when
// the animation is finished and no further frame should be scheduled.
func (a *Animator) Step(r Region) bool {
	if !a.running {
		return true
	}
	current, err := r.Offset()
	if err != nil {
		a.running = false
		return true
	}

	diff := a.target - current
	if abs(diff) < 1 {
		a.running = false
		return true
	}

	step := min(a.maxStep, abs(diff))
	if diff < 0 {
		step = -step
	}
	if err := r.ScrollBy(step); err != nil {
		a.running = false
		return true
	}

	// A region that clamped the move to nothing has hit its boundary.
	if after, err := r.Offset(); err != nil || after == current {
		a.running = false
		return true
	}
	return false
}

// Stop ends the animation without moving the region.
func (a *Animator) Stop() {
	a.running = false
}

// Running reports whether an animation is in progress.
func (a Animator) Running() bool { return a.running }

// Target returns the offset the animation converges toward.
func (a Animator) Target() int { return a.target }

// RegionID returns the region the animation acts on.
func (a Animator) RegionID() string { return a.regionID }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
