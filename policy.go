package flexvec

import "math"

// Grow returns the capacity that follows current under c's growth policy.
// Below the baseline it returns the baseline, which makes the first
// allocation lazy.
func (c Config) Grow(current int) int {
	if current < c.Baseline {
		return c.Baseline
	}
	var step int
	switch c.Growth {
	case LinearGrowth:
		step = c.Increment
	case ExponentialGrowth:
		scaled := float64(current) * (c.Factor - 1)
		if scaled >= math.MaxInt/2 {
			step = math.MaxInt / 2
		} else {
			step = max(int(scaled), c.Increment)
		}
	default:
		step = max(current/2, 1)
	}
	if current > math.MaxInt-step {
		return math.MaxInt
	}
	return current + step
}

// FrontGap returns the offset at which a run of size elements starts in a
// block of capacity slots. For Middle placement an odd remainder leaves
// the extra slot at the back.
func (c Config) FrontGap(capacity, size int) int {
	switch c.Placement {
	case Back:
		return capacity - size
	case Middle:
		return (capacity - size) / 2
	default:
		return 0
	}
}
