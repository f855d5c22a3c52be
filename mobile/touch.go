// Package mobile feeds gomobile touch input into the retained touch model.
//
// golang.org/x/mobile reports each finger as an independent sequence of
// Begin/Move/End events. Tracker keeps the set of live fingers so every
// translated event lists all of them, and tells the first finger down and
// the last finger up apart from the ones in between.
package mobile

import (
	"time"

	"golang.org/x/mobile/event/touch"

	"github.com/agiangrant/bounce/retained"
)

// Tracker converts x/mobile touch events to retained.TouchEvents.
// It is not safe for concurrent use; call it from the app's event loop.
type Tracker struct {
	live []retained.Pointer
	now  func() time.Time
}

// NewTracker creates a tracker with no fingers down.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Live returns how many fingers are currently down.
func (t *Tracker) Live() int {
	return len(t.live)
}

// Translate converts one x/mobile event. It returns nil for events that do
// not belong to a tracked finger (a Move or End for an unknown sequence).
func (t *Tracker) Translate(e touch.Event) *retained.TouchEvent {
	id := retained.PointerID(e.Sequence)
	pos := retained.Point{X: e.X, Y: e.Y}
	idx := t.index(id)

	switch e.Type {
	case touch.TypeBegin:
		if idx >= 0 {
			// Repeated Begin for a live finger; report it as movement.
			t.live[idx].Point = pos
			return t.event(retained.TouchMove, 0)
		}
		t.live = append(t.live, retained.Pointer{ID: id, Point: pos})
		action := retained.TouchPointerDown
		if len(t.live) == 1 {
			action = retained.TouchDown
		}
		return t.event(action, len(t.live)-1)

	case touch.TypeMove:
		if idx < 0 {
			return nil
		}
		t.live[idx].Point = pos
		return t.event(retained.TouchMove, 0)

	case touch.TypeEnd:
		if idx < 0 {
			return nil
		}
		t.live[idx].Point = pos
		action := retained.TouchPointerUp
		if len(t.live) == 1 {
			action = retained.TouchUp
		}
		ev := t.event(action, idx)
		t.live = append(t.live[:idx], t.live[idx+1:]...)
		return ev
	}
	return nil
}

// Cancel aborts the current gesture, e.g. when the app loses focus. It
// returns nil if no finger is down.
func (t *Tracker) Cancel() *retained.TouchEvent {
	if len(t.live) == 0 {
		return nil
	}
	ev := t.event(retained.TouchCancel, 0)
	t.live = t.live[:0]
	return ev
}

func (t *Tracker) index(id retained.PointerID) int {
	for i, p := range t.live {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// event snapshots the live fingers so later changes do not leak into it.
func (t *Tracker) event(action retained.TouchAction, actionIndex int) *retained.TouchEvent {
	return &retained.TouchEvent{
		Action:      action,
		ActionIndex: actionIndex,
		Pointers:    append([]retained.Pointer(nil), t.live...),
		Time:        t.now(),
	}
}
