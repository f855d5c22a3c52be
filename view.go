package bounce

import (
	"fmt"

	"github.com/agiangrant/bounce/retained"
)

// ScrollObserver receives the reveal factor whenever the offset changes and
// every time the top panel is painted. factor is in [0, 1]; 0 is hidden.
type ScrollObserver interface {
	OnScrollChanged(factor float64)
}

// ScrollObserverFunc adapts a function to ScrollObserver.
type ScrollObserverFunc func(factor float64)

func (f ScrollObserverFunc) OnScrollChanged(factor float64) { f(factor) }

// Compositor is the host's render adapter. The view never draws; it tells
// the compositor where each panel goes and when to repaint.
type Compositor interface {
	// PanelBounds returns a panel's current box. A positive Height is used
	// as the panel's preferred height during layout.
	PanelBounds(p Panel) retained.Bounds

	// TranslatePanel applies a paint-time vertical offset to a panel for the
	// frame being drawn.
	TranslatePanel(p Panel, dy float32)

	// Invalidate requests another frame.
	Invalidate()
}

// View is the header-reveal container. It owns the gesture state, the
// scroll engine and the settle animation. All methods must be called from
// the UI goroutine.
type View struct {
	cfg        Config
	classifier *Classifier
	engine     *Engine
	compositor Compositor
	observer   ScrollObserver

	width, height float32
	frames        Frames
}

var _ retained.TouchInterceptor = (*View)(nil)

// NewView validates the config and builds a view. animator may be nil to use
// a retained.Scroller with the quintic settle curve.
func NewView(cfg Config, compositor Compositor, animator SettleAnimator) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to set up view: %w", err)
	}
	if compositor == nil {
		return nil, fmt.Errorf("failed to set up view: nil compositor")
	}

	v := &View{
		cfg:        cfg,
		classifier: NewClassifier(float32(cfg.MinTopHeight)),
		engine:     NewEngine(cfg, animator),
		compositor: compositor,
	}
	v.engine.invalidate = compositor.Invalidate
	v.engine.notify = v.notify
	return v, nil
}

// SetScrollObserver registers the observer, replacing any previous one.
// Pass nil to detach.
func (v *View) SetScrollObserver(o ScrollObserver) {
	v.observer = o
}

func (v *View) notify(factor float64) {
	if v.observer != nil {
		v.observer.OnScrollChanged(factor)
	}
}

// Layout sizes the container and computes the panel frames.
func (v *View) Layout(width, height float32) Frames {
	v.width, v.height = width, height
	v.classifier.SetWidth(width)
	v.engine.SetHeight(height)
	v.frames = computeFrames(v.cfg, width, height, func(p Panel) float32 {
		return v.compositor.PanelBounds(p).Height
	})
	return v.frames
}

// InterceptTouch is the probe phase: it returns true once a downward drag
// that started on the header should be taken from the child.
func (v *View) InterceptTouch(ev *retained.TouchEvent) bool {
	intercept, fx := v.classifier.Intercept(ev)
	v.apply(fx)
	return intercept
}

// HandleTouch processes an event the view owns. It always consumes it.
func (v *View) HandleTouch(ev *retained.TouchEvent) bool {
	v.apply(v.classifier.Handle(ev))
	return true
}

func (v *View) apply(fx Effects) {
	if fx.Drag != nil {
		v.engine.ApplyDelta(*fx.Drag)
	}
	if fx.Settle {
		v.engine.SettleBack()
	}
	if fx.Redraw {
		v.compositor.Invalidate()
	}
}

// ComputeScroll advances the settle animation by one frame. Hosts call it
// before painting; it returns true while more frames are needed.
func (v *View) ComputeScroll() bool {
	return v.engine.Tick()
}

// DrawPanel positions one panel for the frame being painted. Painting the
// top panel also reports the current factor to the observer.
func (v *View) DrawPanel(p Panel) {
	if p == PanelStable && !v.frames.HasStable {
		return
	}
	if p == PanelTop {
		v.notify(v.engine.Factor())
	}
	v.compositor.TranslatePanel(p, v.engine.DrawOffset(p))
}

// Draw positions every panel, top panel first.
func (v *View) Draw() {
	v.DrawPanel(PanelTop)
	v.DrawPanel(PanelStable)
	v.DrawPanel(PanelBottom)
}

// Offset returns the current scroll offset; 0 is at rest, negative is revealed.
func (v *View) Offset() int { return v.engine.Offset() }

// Factor returns the reveal progress in [0, 1].
func (v *View) Factor() float64 { return v.engine.Factor() }

// Phase returns the scroll engine's state.
func (v *View) Phase() Phase { return v.engine.Phase() }

// Range returns the allowed offsets.
func (v *View) Range() ScrollRange { return v.engine.Range() }

// Dragging reports whether the current gesture is a header drag.
func (v *View) Dragging() bool { return v.classifier.Dragging() }

// FromHeader reports whether the current gesture started on the header.
func (v *View) FromHeader() bool { return v.classifier.FromHeader() }

// Frames returns the panel frames from the last Layout.
func (v *View) Frames() Frames { return v.frames }

// Config returns the configuration the view was built with.
func (v *View) Config() Config { return v.cfg }
