package bounce

import "github.com/agiangrant/bounce/retained"

// Panel identifies one of the three stacked panels.
type Panel uint8

const (
	PanelTop Panel = iota
	PanelStable
	PanelBottom
)

func (p Panel) String() string {
	switch p {
	case PanelTop:
		return "top"
	case PanelStable:
		return "stable"
	case PanelBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Frames holds each panel's laid-out box in container coordinates, before
// any paint-time offset.
type Frames struct {
	Top       retained.Bounds
	Stable    retained.Bounds
	Bottom    retained.Bounds
	HasStable bool
}

// Get returns the frame for a panel.
func (f Frames) Get(p Panel) retained.Bounds {
	switch p {
	case PanelTop:
		return f.Top
	case PanelStable:
		return f.Stable
	default:
		return f.Bottom
	}
}

// computeFrames lays out the stack: the top panel sits topScrollDistance
// above the container's top edge, the stable panel at the top edge, and the
// bottom panel is anchored to the bottom edge filling everything below the
// collapsed header. preferred reports a panel's own height, 0 if it has none.
func computeFrames(cfg Config, width, height float32, preferred func(Panel) float32) Frames {
	topHeight := panelHeight(cfg.TopHeight, preferred(PanelTop), cfg.MaxTopHeight)
	bottomHeight := height - float32(cfg.MinTopHeight)
	if bottomHeight < 0 {
		bottomHeight = 0
	}

	f := Frames{
		Top: retained.Bounds{
			Y:      -float32(cfg.TopScrollDistance),
			Width:  width,
			Height: topHeight,
		},
		Bottom: retained.Bounds{
			Y:      height - bottomHeight,
			Width:  width,
			Height: bottomHeight,
		},
	}
	if cfg.StablePanel != "" {
		f.HasStable = true
		f.Stable = retained.Bounds{
			Width:  width,
			Height: panelHeight(cfg.StableHeight, preferred(PanelStable), cfg.MaxTopHeight),
		}
	}

	debugLog("layout %.0fx%.0f: top=%+v stable=%+v bottom=%+v", width, height, f.Top, f.Stable, f.Bottom)
	return f
}

// panelHeight picks the configured height, then the panel's own, then the cap.
func panelHeight(explicit int, preferred float32, limit int) float32 {
	if explicit > 0 {
		return float32(explicit)
	}
	if preferred > 0 && preferred < float32(limit) {
		return preferred
	}
	return float32(limit)
}
