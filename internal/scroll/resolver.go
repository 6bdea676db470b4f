package scroll

// Target is the result of resolving a navigation key against a region.
type Target struct {
	Offset int
	// Immediate is set for Home and End, which move the region directly.
	Immediate bool
}

// ComputeTarget resolves the offset a key should scroll r to.
//
// Home and End move the region before returning and set Immediate so the
// caller skips the animation. The only error is a failed offset read.
func ComputeTarget(r Region, k Key, multiplier int) (Target, error) {
	current, err := r.Offset()
	if err != nil {
		return Target{}, err
	}

	switch k {
	case KeyHome:
		return jump(r, current, 0)
	case KeyEnd:
		return jump(r, current, max(0, r.MaxOffset()))
	}

	distance := r.Height() * max(1, multiplier)
	target := current
	switch k {
	case KeyPageDown:
		target += distance
	case KeyPageUp:
		target -= distance
	}
	return Target{Offset: clampTarget(r, target)}, nil
}

func jump(r Region, current, target int) (Target, error) {
	if delta := target - current; delta != 0 {
		if err := r.ScrollBy(delta); err != nil {
			return Target{}, err
		}
	}
	return Target{Offset: target, Immediate: true}, nil
}

// clampTarget keeps targets inside the region. Unbounded regions only get
// the lower clamp; their content may grow while an animation runs.
func clampTarget(r Region, target int) int {
	if target < 0 {
		return 0
	}
	if r.Bounded() {
		return min(target, max(0, r.MaxOffset()))
	}
	return target
}
