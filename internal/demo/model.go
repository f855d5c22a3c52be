// Package demo hosts the header-reveal view in a terminal: mouse input
// becomes a single-finger touch stream, the bottom panel holds a scrollable
// list, and a title label follows the reveal factor.
package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/bounce"
	"github.com/agiangrant/bounce/retained"
)

// mousePointer is the only pointer a mouse ever produces.
const mousePointer retained.PointerID = 0

type frameMsg time.Time

// Model is the bubbletea model for the demo.
type Model struct {
	settings Settings
	view     *bounce.View
	comp     *compositor
	dispatch *retained.TouchDispatcher
	list     viewport.Model

	factor        float64
	width, height int
	pressed       bool
	ticking       bool
	listLastY     float32
}

// New builds the demo model. The view is laid out once the terminal
// reports its size.
func New(settings Settings, cfg bounce.Config) (*Model, error) {
	comp := &compositor{}
	view, err := bounce.NewView(cfg, comp, nil)
	if err != nil {
		return nil, err
	}

	m := &Model{
		settings: settings,
		view:     view,
		comp:     comp,
		list:     viewport.New(0, 0),
	}
	m.list.SetContent(listContent(settings.Items))
	view.SetScrollObserver(bounce.ScrollObserverFunc(func(factor float64) {
		m.factor = factor
	}))
	m.dispatch = retained.NewTouchDispatcher(view, retained.TouchHandlerFunc(m.handleListTouch))
	return m, nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		m.ticking = false
		m.view.ComputeScroll()
	}

	return m, m.nextFrame()
}

func (m *Model) View() string {
	m.view.Draw()
	return m.frame()
}

// nextFrame schedules one frame tick if the view asked for a redraw.
func (m *Model) nextFrame() tea.Cmd {
	if !m.comp.takeInvalidated() || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.settings.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	frames := m.view.Layout(float32(width), float32(height))
	m.comp.frames = frames
	m.list.Width = width
	m.list.Height = int(frames.Bottom.Height)
}

// handleMouse turns mouse input into touch events. The wheel scrolls the
// list directly; it is not a drag.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := float32(msg.X), float32(msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollList(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollList(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pressed = true
		m.dispatch.Dispatch(retained.NewTouchEvent(retained.TouchDown, mousePointer, x, y))
	case msg.Action == tea.MouseActionMotion && m.pressed:
		m.dispatch.Dispatch(retained.NewTouchEvent(retained.TouchMove, mousePointer, x, y))
	case msg.Action == tea.MouseActionRelease && m.pressed:
		m.pressed = false
		m.dispatch.Dispatch(retained.NewTouchEvent(retained.TouchUp, mousePointer, x, y))
	}
}

// handleListTouch is the child side of the dispatch: drags the view does not
// claim scroll the list. It claims every gesture so the view keeps being
// asked to intercept.
func (m *Model) handleListTouch(ev *retained.TouchEvent) bool {
	p, ok := ev.Find(mousePointer)
	if !ok {
		return true
	}
	switch ev.Action {
	case retained.TouchDown:
		m.listLastY = p.Y
	case retained.TouchMove:
		delta := int(m.listLastY - p.Y)
		if delta != 0 {
			m.scrollList(delta)
			m.listLastY = p.Y
		}
	}
	return true
}

func (m *Model) scrollList(lines int) {
	m.list.SetYOffset(m.list.YOffset + lines)
}

// Factor returns the last factor the view reported.
func (m *Model) Factor() float64 { return m.factor }
