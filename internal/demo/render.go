package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/bounce"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "189", Dark: "60"}).
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "255"})
	barStyle   = headerStyle.Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
	labelStyle = headerStyle.Bold(true)
	listStyle  = lipgloss.NewStyle()
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// labelLayout interpolates the title label from the reveal factor: the label
// shrinks from full to half scale and slides from the center of the screen to
// its left edge. A terminal cannot scale glyphs, so full scale is drawn
// letter-spaced.
func labelLayout(label string, factor float64, width int) (col int, text string) {
	scale := 1 + (0.5-1)*factor
	text = label
	if scale > 0.75 {
		text = strings.Join(strings.Split(label, ""), " ")
	}
	center := float64(width-runewidth.StringWidth(text)) / 2
	if center < 0 {
		center = 0
	}
	col = int(center * (1 - factor))
	return col, text
}

// headerLine renders row r of the header panel.
func headerLine(r, height, width int, factor float64) string {
	switch r {
	case height - 3:
		return headerStyle.Width(width).Render(fmt.Sprintf(" revealed %3.0f%%", factor*100))
	case height - 2:
		n := int(float64(width-2) * factor)
		return barStyle.Width(width).Render(" " + strings.Repeat("█", n))
	default:
		return headerStyle.Width(width).Render("")
	}
}

// frame assembles the screen from the panels, painting top, then stable,
// then bottom so the list covers the header where they overlap.
func (m *Model) frame() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", m.width)
	}

	frames := m.view.Frames()

	top := m.comp.panelRow(bounce.PanelTop)
	topHeight := int(frames.Top.Height)
	for r := 0; r < topHeight; r++ {
		if y := top + r; y >= 0 && y < m.height {
			rows[y] = headerLine(r, topHeight, m.width, m.factor)
		}
	}

	if frames.HasStable {
		// The title panel is transparent apart from the label row.
		if y := m.comp.panelRow(bounce.PanelStable) + 1; y >= 0 && y < m.height {
			col, text := labelLayout(m.settings.Label, m.factor, m.width)
			rows[y] = labelStyle.Width(m.width).Render(strings.Repeat(" ", col) + text)
		}
	}

	bottom := m.comp.panelRow(bounce.PanelBottom)
	lines := strings.Split(m.list.View(), "\n")
	for r, line := range lines {
		if y := bottom + r; y >= 0 && y < m.height {
			rows[y] = listStyle.Width(m.width).Render(line)
		}
	}

	return strings.Join(rows, "\n")
}

// listContent renders the list items.
func listContent(items int) string {
	var b strings.Builder
	for i := 0; i < items; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, " Item%d", i)
	}
	b.WriteString("\n" + faintStyle.Render(" (end)"))
	return b.String()
}
