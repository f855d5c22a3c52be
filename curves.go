package bounce

import "github.com/agiangrant/bounce/retained"

// DragResistance is the rubber-band curve applied while dragging the header
// open: a quadratic ease-out over t/2, so a finger at the far edge of the
// drag distance (t = 1) has pulled the header 75% of the way, and t = 2 is
// fully open. t is clamped to [0, 2].
func DragResistance(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 2 {
		t = 2
	}
	u := 1 - t/2
	return 1 - u*u
}

// SettleEase is the quintic ease-out used by the fling-back animation.
func SettleEase(t float64) float64 {
	return retained.EaseOutQuint(t)
}
