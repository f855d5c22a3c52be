// Command bouncedemo runs the header-reveal view in a terminal.
// Drag down on the header with the mouse to reveal it; release to let it
// fling back. Drags and the wheel elsewhere scroll the list.
package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/bounce"
	"github.com/agiangrant/bounce/internal/demo"
)

func main() {
	settings, err := demo.LoadSettings()
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if settings.Debug {
		f, err := tea.LogToFile(settings.DebugLog, "bouncedemo")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
		bounce.SetDebug(true)
	}

	cfg, err := settings.WidgetConfig()
	if err != nil {
		log.Fatalf("widget config: %v", err)
	}

	m, err := demo.New(settings, cfg)
	if err != nil {
		log.Fatalf("view: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
