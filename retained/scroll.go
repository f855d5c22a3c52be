package retained

import (
	"time"
)

// ============================================================================
// Settle Scroller
// ============================================================================

// DefaultSettleDuration is how long a fling-back takes unless told otherwise.
const DefaultSettleDuration = 300 * time.Millisecond

// Scroller interpolates a scroll position between two values over time.
// It does not run on its own: the owner calls ComputeSettle once per frame
// and reads CurrentSettleValue. A Scroller is not safe for concurrent use;
// it lives on the UI goroutine with its owner.
type Scroller struct {
	easing EasingFunc
	now    func() time.Time

	startTime time.Time
	duration  time.Duration
	from, to  int
	curr      int
	finished  bool
}

// NewScroller creates an idle scroller. A nil easing uses EaseOutQuint.
func NewScroller(easing EasingFunc) *Scroller {
	if easing == nil {
		easing = EaseOutQuint
	}
	return &Scroller{
		easing:   easing,
		now:      time.Now,
		finished: true,
	}
}

// SetClock replaces the time source. Tests use this to step frames.
func (s *Scroller) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// StartSettle begins animating from one position to another. Any running
// animation is replaced.
func (s *Scroller) StartSettle(from, to int, duration time.Duration) {
	s.startTime = s.now()
	s.duration = duration
	s.from = from
	s.to = to
	s.curr = from
	s.finished = false
	if duration <= 0 {
		s.curr = to
		s.finished = true
	}
}

// ComputeSettle advances the animation to the current time. It returns true
// while the animation produced a new position this call (including the
// final one) and false once it had already finished.
func (s *Scroller) ComputeSettle() bool {
	if s.finished {
		return false
	}

	elapsed := s.now().Sub(s.startTime)
	if elapsed >= s.duration {
		s.curr = s.to
		s.finished = true
		return true
	}

	t := clamp(float64(elapsed)/float64(s.duration), 0, 1)
	s.curr = lerpInt(s.from, s.to, s.easing(t))
	return true
}

// IsSettleFinished reports whether no animation is running.
func (s *Scroller) IsSettleFinished() bool {
	return s.finished
}

// CurrentSettleValue returns the position computed by the last ComputeSettle.
func (s *Scroller) CurrentSettleValue() int {
	return s.curr
}

// AbortSettle stops the animation where it is.
func (s *Scroller) AbortSettle() {
	s.finished = true
}
