package retained

import "math"

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// EaseOutQuint - strong deceleration, the platform scroller's fling-back feel
var EaseOutQuint EasingFunc = func(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

// ============================================================================
// Helper Functions
// ============================================================================

// lerpInt interpolates between two integer positions, rounding to nearest.
func lerpInt(a, b int, t float64) int {
	return a + int(math.Round(float64(b-a)*t))
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
