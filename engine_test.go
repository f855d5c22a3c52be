package bounce

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/agiangrant/bounce/retained"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestEngine builds an engine with the default 120/300/80 geometry in an
// 800-unit tall container, driven by a fake clock.
func newTestEngine() (*Engine, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	scroller := retained.NewScroller(SettleEase)
	scroller.SetClock(clock.now)

	e := NewEngine(validConfig(), scroller)
	e.SetHeight(800)
	return e, clock
}

func TestEngineRevealUsesResistanceCurve(t *testing.T) {
	e, _ := newTestEngine()

	// Finger from y=60 to y=90: the curve gives -21, linear gives -30.
	e.ApplyDelta(DragDelta{DeltaY: -30, Y: 90, InitialY: 60})

	if got := e.Offset(); got != -21 {
		t.Errorf("Offset() = %d, want -21", got)
	}
	if e.Phase() != PhaseDragging {
		t.Errorf("Phase() = %v, want dragging", e.Phase())
	}
}

func TestEngineRevealTakesLargerCandidate(t *testing.T) {
	e, _ := newTestEngine()

	// A 1-unit step far down the screen: the curve would jump to -101, the
	// linear candidate (-1) is closer to 0 and wins.
	e.ApplyDelta(DragDelta{DeltaY: -1, Y: 500, InitialY: 60})

	if got := e.Offset(); got != -1 {
		t.Errorf("Offset() = %d, want -1", got)
	}
}

func TestEngineRevealWithoutDistanceIsLinear(t *testing.T) {
	e, _ := newTestEngine()
	e.ApplyDelta(DragDelta{DeltaY: -12, Y: 810, InitialY: 800})

	if got := e.Offset(); got != -12 {
		t.Errorf("Offset() = %d, want -12", got)
	}
}

func TestEngineHideIsLinear(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		deltaY float32
		want   int
	}{
		{name: "partial hide", start: -50, deltaY: 20, want: -30},
		{name: "exactly to rest", start: -50, deltaY: 50, want: 0},
		{name: "crossing rest clamps to 0", start: -50, deltaY: 80, want: 0},
		{name: "zero delta at rest", start: 0, deltaY: 0, want: 0},
		{name: "zero delta revealed", start: -75, deltaY: 0, want: -75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine()
			e.offset = tt.start
			e.ApplyDelta(DragDelta{DeltaY: tt.deltaY, Y: 100, InitialY: 60})
			if got := e.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEngineOffsetStaysInRange(t *testing.T) {
	e, _ := newTestEngine()
	rng := rand.New(rand.NewSource(42))
	r := e.Range()

	for i := 0; i < 5000; i++ {
		d := DragDelta{
			DeltaY:   float32(rng.Intn(400) - 200),
			Y:        float32(rng.Intn(1000)),
			InitialY: float32(rng.Intn(121)),
		}
		e.ApplyDelta(d)

		off := e.Offset()
		if !r.Contains(off) || off > 0 {
			t.Fatalf("step %d (%+v): offset %d outside %+v", i, d, off, r)
		}
		f := e.Factor()
		if f < 0 || f > 1 {
			t.Fatalf("step %d: factor %v outside [0, 1]", i, f)
		}
		if (f == 0) != (off == 0) {
			t.Fatalf("step %d: factor %v with offset %d", i, f, off)
		}
	}
}

func TestEngineFactor(t *testing.T) {
	e, _ := newTestEngine()

	tests := []struct {
		offset int
		want   float64
	}{
		{offset: 0, want: 0},
		{offset: -90, want: 0.5},
		{offset: -180, want: 1},
	}
	for _, tt := range tests {
		e.offset = tt.offset
		if got := e.Factor(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Factor() at %d = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestEngineSettleBack(t *testing.T) {
	e, clock := newTestEngine()
	var factors []float64
	e.notify = func(f float64) { factors = append(factors, f) }
	invalidations := 0
	e.invalidate = func() { invalidations++ }

	e.ApplyDelta(DragDelta{DeltaY: -30, Y: 90, InitialY: 60})
	e.SettleBack()
	if e.Phase() != PhaseSettling {
		t.Fatalf("Phase() = %v, want settling", e.Phase())
	}

	frames := 0
	for e.Tick() {
		frames++
		clock.advance(16 * time.Millisecond)
		if frames > 100 {
			t.Fatal("settle never finished")
		}
	}

	if got := e.Offset(); got != 0 {
		t.Errorf("Offset() after settle = %d, want 0", got)
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want idle", e.Phase())
	}
	if got := factors[len(factors)-1]; got != 0 {
		t.Errorf("last reported factor = %v, want 0", got)
	}
	if frames < 2 {
		t.Errorf("settle took %d frames, want an animation", frames)
	}
	if invalidations == 0 {
		t.Error("engine never requested a redraw")
	}
}

func TestEngineSettleBackAtRest(t *testing.T) {
	e, _ := newTestEngine()
	e.SettleBack()

	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want idle", e.Phase())
	}
	if e.Tick() {
		t.Error("Tick at rest should not ask for more frames")
	}
}

func TestEngineDragInterruptsSettle(t *testing.T) {
	e, clock := newTestEngine()
	e.offset = -100
	e.SettleBack()

	clock.advance(50 * time.Millisecond)
	e.Tick()
	mid := e.Offset()
	if mid <= -100 || mid >= 0 {
		t.Fatalf("mid-settle offset = %d, want between -100 and 0", mid)
	}

	e.ApplyDelta(DragDelta{DeltaY: 5, Y: 100, InitialY: 60})
	if e.Phase() != PhaseDragging {
		t.Fatalf("Phase() = %v, want dragging", e.Phase())
	}
	if got := e.Offset(); got != mid+5 {
		t.Errorf("Offset() = %d, want %d", got, mid+5)
	}

	clock.advance(time.Second)
	if e.Tick() {
		t.Error("aborted settle should not produce frames")
	}
	if got := e.Offset(); got != mid+5 {
		t.Errorf("Tick moved an interrupted offset to %d", got)
	}
}

func TestEngineDrawOffset(t *testing.T) {
	e, _ := newTestEngine()
	e.offset = -90 // factor 0.5

	if got := e.DrawOffset(PanelStable); got != 90 {
		t.Errorf("stable draw offset = %v, want 90", got)
	}
	if got := e.DrawOffset(PanelBottom); got != 90 {
		t.Errorf("bottom draw offset = %v, want 90", got)
	}
	// The top panel cancels the scroll and trails by 80 * 0.5.
	if got := e.DrawOffset(PanelTop); got != 40 {
		t.Errorf("top draw offset = %v, want 40", got)
	}
}
