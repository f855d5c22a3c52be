package bounce

import "github.com/agiangrant/bounce/retained"

// DragDelta is what the classifier hands the scroll engine for one accepted
// move: the vertical delta since the last event (positive = finger moved up),
// the finger's current y and where the gesture started.
type DragDelta struct {
	DeltaY   float32
	Y        float32
	InitialY float32
}

// Effects are the side effects of one classifier transition. The view
// applies them to the engine and compositor.
type Effects struct {
	Drag   *DragDelta
	Settle bool
	Redraw bool
}

// gestureState is the classifier's whole state for one gesture. Transitions
// are value methods returning the next state, so nothing is mutated in place.
type gestureState struct {
	active     retained.PointerID
	hasActive  bool
	last       retained.Point
	initial    retained.Point
	dragging   bool
	fromHeader bool
}

// headerTest reports whether a point lies in the header region.
type headerTest func(p retained.Point) bool

// intercept is the probe-phase transition, run before the child sees the event.
func (g gestureState) intercept(ev *retained.TouchEvent, inHeader headerTest) (gestureState, bool, Effects) {
	var fx Effects

	switch ev.Action {
	case retained.TouchDown:
		p, ok := ev.ActionPointer()
		if !ok {
			return g, false, fx
		}
		next := gestureState{
			active:     p.ID,
			hasActive:  true,
			last:       p.Point,
			initial:    p.Point,
			fromHeader: inHeader(p.Point),
		}
		debugLog("intercept down at (%.1f, %.1f), header=%t", p.X, p.Y, next.fromHeader)
		// The child always sees Down first.
		return next, false, fx

	case retained.TouchMove:
		if g.dragging {
			return g, true, fx
		}
		if !g.fromHeader {
			g.dragging = false
			return g, false, fx
		}
		pos, ok := g.position(ev)
		if !ok {
			return g, false, fx
		}
		if pos.Y < g.last.Y {
			// Moving up over the header is a hide gesture; keep probing from here.
			g.last = pos
			g.dragging = false
		} else {
			g.dragging = true
			debugLog("intercept drag at (%.1f, %.1f)", pos.X, pos.Y)
		}

	case retained.TouchCancel:
		g.dragging = false
		g.fromHeader = false
		g.hasActive = false

	case retained.TouchUp, retained.TouchPointerUp:
		g, fx = g.release(ev)
	}

	return g, g.dragging, fx
}

// handle is the transition for events the container owns.
func (g gestureState) handle(ev *retained.TouchEvent) (gestureState, Effects) {
	var fx Effects

	switch ev.Action {
	case retained.TouchDown:
		debugLog("handle down")

	case retained.TouchMove:
		if !g.hasActive {
			return g, fx
		}
		pos, ok := ev.Find(g.active)
		if !ok {
			return g, fx
		}
		deltaY := g.last.Y - pos.Y
		g.last = pos
		if g.dragging {
			fx.Drag = &DragDelta{DeltaY: deltaY, Y: pos.Y, InitialY: g.initial.Y}
			fx.Redraw = true
		}

	case retained.TouchUp, retained.TouchPointerUp:
		g, fx = g.release(ev)

	case retained.TouchCancel:
		debugLog("handle cancel, dragging=%t", g.dragging)
		if g.dragging {
			g.hasActive = false
		}
		g.dragging = false
		g.fromHeader = false

	case retained.TouchPointerDown:
		// Additional fingers do not take over the drag.
	}

	return g, fx
}

// release ends the gesture if the lifted pointer is the one being tracked.
func (g gestureState) release(ev *retained.TouchEvent) (gestureState, Effects) {
	p, ok := ev.ActionPointer()
	if !ok || !g.hasActive || p.ID != g.active {
		return g, Effects{}
	}
	debugLog("%s of active pointer %d, settling", ev.Action, p.ID)
	return gestureState{}, Effects{Settle: true, Redraw: true}
}

// position finds the tracked pointer in the event.
func (g gestureState) position(ev *retained.TouchEvent) (retained.Point, bool) {
	if !g.hasActive {
		return retained.Point{}, false
	}
	return ev.Find(g.active)
}

// ============================================================================
// Classifier
// ============================================================================

// Classifier decides whether a gesture belongs to the header and tracks the
// active pointer across events. It is driven by the view; use it directly
// only when embedding the gesture logic in another container.
type Classifier struct {
	state        gestureState
	width        float32
	headerHeight float32
}

// NewClassifier creates a classifier whose header region is the top
// headerHeight units of the container.
func NewClassifier(headerHeight float32) *Classifier {
	return &Classifier{headerHeight: headerHeight}
}

// SetWidth updates the container width used by the header test.
func (c *Classifier) SetWidth(width float32) {
	c.width = width
}

// InHeader reports whether a point in container coordinates starts a header gesture.
func (c *Classifier) InHeader(p retained.Point) bool {
	return p.X >= 0 && p.X <= c.width && p.Y >= 0 && p.Y <= c.headerHeight
}

// Intercept runs the probe phase. It returns true once the container should
// own the gesture.
func (c *Classifier) Intercept(ev *retained.TouchEvent) (bool, Effects) {
	next, intercept, fx := c.state.intercept(ev, c.InHeader)
	c.state = next
	return intercept, fx
}

// Handle processes an event the container owns.
func (c *Classifier) Handle(ev *retained.TouchEvent) Effects {
	next, fx := c.state.handle(ev)
	c.state = next
	return fx
}

// Dragging reports whether the header drag has been accepted.
func (c *Classifier) Dragging() bool { return c.state.dragging }

// FromHeader reports whether the current gesture started in the header region.
func (c *Classifier) FromHeader() bool { return c.state.fromHeader }

// ActivePointer returns the tracked pointer, if any.
func (c *Classifier) ActivePointer() (retained.PointerID, bool) {
	return c.state.active, c.state.hasActive
}
