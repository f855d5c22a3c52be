package retained

// ============================================================================
// Touch Dispatcher
// ============================================================================

// gestureOwner records who claimed the current gesture.
type gestureOwner uint8

const (
	ownerNone gestureOwner = iota
	ownerChild
	ownerParent
)

// TouchDispatcher routes a gesture between a container and its child using
// a two-phase protocol:
//
//   - Capture: until the container owns the gesture, every event is first
//     offered to the container's InterceptTouch.
//   - Target: events the container does not intercept go to the child. A
//     Down the child refuses makes the container the owner.
//
// When the container intercepts mid-gesture the child receives a Cancel and
// the intercepted event is delivered to the container's HandleTouch, so no
// movement is lost at the hand-over.
type TouchDispatcher struct {
	parent TouchInterceptor
	child  TouchTarget
	owner  gestureOwner
}

// NewTouchDispatcher creates a dispatcher. child may be nil.
func NewTouchDispatcher(parent TouchInterceptor, child TouchTarget) *TouchDispatcher {
	return &TouchDispatcher{parent: parent, child: child}
}

// ParentOwns reports whether the container has claimed the current gesture.
func (d *TouchDispatcher) ParentOwns() bool {
	return d.owner == ownerParent
}

// Dispatch delivers one event. It returns true if someone handled it.
func (d *TouchDispatcher) Dispatch(ev *TouchEvent) bool {
	if ev == nil {
		return false
	}
	if ev.Action == TouchDown {
		d.owner = ownerNone
	}
	if ev.Action.Terminal() {
		defer func() { d.owner = ownerNone }()
	}

	if d.owner == ownerParent {
		return d.parent.HandleTouch(ev)
	}

	if d.parent.InterceptTouch(ev) {
		if d.owner == ownerChild && d.child != nil {
			d.child.HandleTouch(ev.WithAction(TouchCancel))
		}
		d.owner = ownerParent
		return d.parent.HandleTouch(ev)
	}

	if d.child != nil && d.child.HandleTouch(ev) {
		if ev.Action == TouchDown {
			d.owner = ownerChild
		}
		return true
	}

	// Nobody below wants the gesture; the container gets it from the start.
	if ev.Action == TouchDown {
		d.owner = ownerParent
		return d.parent.HandleTouch(ev)
	}
	return false
}
