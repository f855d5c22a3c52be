package bounce

import (
	"time"

	"github.com/agiangrant/bounce/retained"
)

// SettleDuration is how long the header takes to fling back after release.
const SettleDuration = retained.DefaultSettleDuration

// Phase is the scroll engine's state.
type Phase uint8

const (
	// PhaseIdle - no animation running, offset settled (usually at 0).
	PhaseIdle Phase = iota

	// PhaseDragging - offset follows touch deltas.
	PhaseDragging

	// PhaseSettling - offset follows the settle animation.
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// ScrollRange bounds the offset. Min is the fully revealed offset (negative),
// Max is the rest position (0).
type ScrollRange struct {
	Min, Max int
}

// Clamp restricts v to the range.
func (r ScrollRange) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v is inside the range.
func (r ScrollRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// SettleAnimator is the frame-polled animation driver the engine starts on
// release. retained.Scroller implements it.
type SettleAnimator interface {
	StartSettle(from, to int, duration time.Duration)
	// ComputeSettle advances to the current time; false means it had
	// already finished.
	ComputeSettle() bool
	IsSettleFinished() bool
	CurrentSettleValue() int
	AbortSettle()
}

// Engine converts accepted drag deltas into a bounded vertical offset and
// runs the fling-back animation.
type Engine struct {
	rng               ScrollRange
	span              int // MinTopHeight - MaxTopHeight, negative
	topScrollDistance float32
	height            float32

	offset int
	phase  Phase

	animator   SettleAnimator
	invalidate func()
	notify     func(factor float64)
}

// NewEngine creates an engine at rest. The config must be valid.
func NewEngine(cfg Config, animator SettleAnimator) *Engine {
	if animator == nil {
		animator = retained.NewScroller(SettleEase)
	}
	return &Engine{
		rng:               cfg.Range(),
		span:              cfg.MinTopHeight - cfg.MaxTopHeight,
		topScrollDistance: float32(cfg.TopScrollDistance),
		animator:          animator,
		invalidate:        func() {},
		notify:            func(float64) {},
	}
}

// SetHeight sets the container height, which bounds the drag distance.
func (e *Engine) SetHeight(height float32) {
	e.height = height
}

// ApplyDelta moves the offset for one accepted drag step. Revealing
// (DeltaY < 0) follows the resistance curve unless the finger has moved less
// than the curve allows; hiding is linear and stops at 0.
func (e *Engine) ApplyDelta(d DragDelta) {
	if e.phase == PhaseSettling {
		e.animator.AbortSettle()
		debugLog("drag interrupted settle at %d", e.offset)
	}
	e.phase = PhaseDragging

	var next int
	if d.DeltaY < 0 {
		linear := int(float32(e.offset) + d.DeltaY)
		next = linear
		if distance := e.height - d.InitialY; distance > 0 {
			eased := int(DragResistance(float64(d.Y/distance)) * float64(e.span))
			next = max(eased, linear)
		}
	} else if float32(e.offset)+d.DeltaY >= 0 {
		next = 0
	} else {
		next = e.offset + int(d.DeltaY)
	}

	e.setOffset(next)
	e.invalidate()
}

// SettleBack starts the fling-back to the rest position.
func (e *Engine) SettleBack() {
	if e.offset == 0 {
		if e.phase == PhaseSettling {
			e.animator.AbortSettle()
		}
		e.phase = PhaseIdle
		return
	}
	debugLog("settle from %d", e.offset)
	e.animator.StartSettle(e.offset, 0, SettleDuration)
	e.phase = PhaseSettling
	e.invalidate()
}

// Tick advances the settle animation by one frame. It returns true while
// more frames are needed.
func (e *Engine) Tick() bool {
	if e.phase != PhaseSettling {
		return false
	}
	if !e.animator.ComputeSettle() {
		e.phase = PhaseIdle
		return false
	}

	e.setOffset(e.animator.CurrentSettleValue())
	if e.animator.IsSettleFinished() {
		e.phase = PhaseIdle
		return false
	}

	e.invalidate()
	return true
}

// setOffset stores the clamped offset and reports the new factor.
func (e *Engine) setOffset(v int) {
	e.offset = e.rng.Clamp(v)
	e.notify(e.Factor())
}

// Factor returns how far the header is revealed, 0 (hidden) to 1 (fully revealed).
func (e *Engine) Factor() float64 {
	if e.offset == 0 || e.span == 0 {
		return 0
	}
	f := float64(e.offset) / float64(e.span)
	if f > 1 {
		return 1
	}
	return f
}

// DrawOffset returns the paint-time vertical translation of a panel relative
// to its laid-out frame. The stable and bottom panels follow the container
// scroll (-offset); the top panel cancels that scroll and trails by
// topScrollDistance × factor instead, so it moves slower than the rest.
func (e *Engine) DrawOffset(p Panel) float32 {
	scroll := -float32(e.offset)
	if p != PanelTop {
		return scroll
	}
	return scroll + float32(e.offset) + e.topScrollDistance*float32(e.Factor())
}

// Offset returns the current offset, in [Range().Min, 0].
func (e *Engine) Offset() int { return e.offset }

// Phase returns the engine's state.
func (e *Engine) Phase() Phase { return e.phase }

// Range returns the allowed offsets.
func (e *Engine) Range() ScrollRange { return e.rng }
