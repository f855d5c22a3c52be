package retained

import "time"

// ============================================================================
// Touch Actions
// ============================================================================

// TouchAction identifies what changed in a touch event.
type TouchAction uint8

const (
	// TouchDown - first pointer of a gesture went down.
	TouchDown TouchAction = iota + 1

	// TouchMove - one or more live pointers moved.
	TouchMove

	// TouchUp - last pointer of a gesture lifted.
	TouchUp

	// TouchCancel - the gesture was aborted by the host (or taken over by a parent).
	TouchCancel

	// TouchPointerDown - an additional pointer went down during a gesture.
	TouchPointerDown

	// TouchPointerUp - a non-last pointer lifted during a gesture.
	TouchPointerUp
)

func (a TouchAction) String() string {
	switch a {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	case TouchPointerDown:
		return "pointer-down"
	case TouchPointerUp:
		return "pointer-up"
	default:
		return "unknown"
	}
}

// Terminal reports whether the action ends a gesture.
func (a TouchAction) Terminal() bool {
	return a == TouchUp || a == TouchCancel
}

// ============================================================================
// Pointers
// ============================================================================

// PointerID is an opaque token identifying one finger for the whole life of
// a gesture. IDs are assigned by the host and are stable while the finger is
// down; they are not indexes.
type PointerID int32

// Point is a position in the container's local coordinate space.
type Point struct {
	X, Y float32
}

// Pointer is a single finger's position within a touch event.
type Pointer struct {
	ID PointerID
	Point
}

// ============================================================================
// Touch Event
// ============================================================================

// TouchEvent is one step of a gesture. Pointers lists every finger that is
// down at the time of the event; for Up/PointerUp the lifting finger is
// still listed.
type TouchEvent struct {
	Action TouchAction

	// ActionIndex is the index in Pointers of the finger that went down or
	// up. Ignored for Move and Cancel.
	ActionIndex int

	Pointers []Pointer

	Time time.Time
}

// NewTouchEvent creates a single-pointer event, the common case for mouse
// and single-finger hosts.
func NewTouchEvent(action TouchAction, id PointerID, x, y float32) *TouchEvent {
	return &TouchEvent{
		Action:   action,
		Pointers: []Pointer{{ID: id, Point: Point{X: x, Y: y}}},
		Time:     time.Now(),
	}
}

// Find returns the position of the pointer with the given id, if it is part
// of the event.
func (e *TouchEvent) Find(id PointerID) (Point, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p.Point, true
		}
	}
	return Point{}, false
}

// ActionPointer returns the pointer that triggered a Down/Up/PointerDown/PointerUp.
// The second result is false when the event has no such pointer.
func (e *TouchEvent) ActionPointer() (Pointer, bool) {
	if e.ActionIndex < 0 || e.ActionIndex >= len(e.Pointers) {
		return Pointer{}, false
	}
	return e.Pointers[e.ActionIndex], true
}

// WithAction returns a copy of the event carrying a different action.
// Used by dispatchers to turn an intercepted event into a Cancel for the child.
func (e *TouchEvent) WithAction(action TouchAction) *TouchEvent {
	c := *e
	c.Action = action
	c.Pointers = append([]Pointer(nil), e.Pointers...)
	return &c
}

// ============================================================================
// Computed Bounds
// ============================================================================

// Bounds represents a panel's box in the container's coordinate space.
type Bounds struct {
	X, Y          float32 // Top-left corner
	Width, Height float32
}

// Offset returns the bounds moved vertically by dy.
func (b Bounds) Offset(dy float32) Bounds {
	b.Y += dy
	return b
}

// ============================================================================
// Responder Interfaces
// ============================================================================

// TouchTarget is implemented by anything that consumes touch events.
// Return true to claim the event (for Down: to claim the gesture).
type TouchTarget interface {
	HandleTouch(ev *TouchEvent) bool
}

// TouchInterceptor is a container that may take a gesture away from its
// child. InterceptTouch is consulted before the child sees each event until
// it returns true; from then on the container's HandleTouch receives the rest
// of the gesture directly.
type TouchInterceptor interface {
	TouchTarget
	InterceptTouch(ev *TouchEvent) bool
}

// TouchHandlerFunc adapts a function to TouchTarget.
type TouchHandlerFunc func(ev *TouchEvent) bool

func (f TouchHandlerFunc) HandleTouch(ev *TouchEvent) bool { return f(ev) }
