package demo

import (
	"github.com/agiangrant/bounce"
	"github.com/agiangrant/bounce/retained"
)

// compositor records where the view wants each panel for the next paint.
// The terminal has no retained surfaces, so "translating" a panel just
// stores the offset the renderer applies when it builds the frame.
type compositor struct {
	frames      bounce.Frames
	translation [3]float32
	invalidated bool
}

func (c *compositor) PanelBounds(p bounce.Panel) retained.Bounds {
	return c.frames.Get(p).Offset(c.translation[p])
}

func (c *compositor) TranslatePanel(p bounce.Panel, dy float32) {
	c.translation[p] = dy
}

func (c *compositor) Invalidate() {
	c.invalidated = true
}

// takeInvalidated reports and clears a pending redraw request.
func (c *compositor) takeInvalidated() bool {
	v := c.invalidated
	c.invalidated = false
	return v
}

// panelRow returns the screen row where a panel's first row lands.
func (c *compositor) panelRow(p bounce.Panel) int {
	return int(c.frames.Get(p).Y + c.translation[p])
}
