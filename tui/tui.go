// Package tui hosts the interaction surface in a terminal. Mouse reporting
// stands in for touch input: a press is touch-down, motion with the button
// held is touch-move, the release is touch-up.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/surface"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Player  player.Facade
	Surface surface.Options

	// CellWidth and CellHeight convert terminal cells to pointer pixels.
	CellWidth, CellHeight float64

	// Listen subscribes to engine events. Nil when the engine pushes none.
	Listen func(player.EventCallback) (stop func(), err error)

	// Exited is closed when the engine goes away. Nil when it never does.
	Exited <-chan struct{}

	// Now is the pointer timestamp source, time.Now when nil.
	Now func() time.Time
}

// Run executes the Bubble Tea application loop until the user quits or the engine exits.
func Run(options Options) error {
	bubble := newBubble(options)
	program := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if options.Listen != nil {
		// events arrive on the listener goroutine, Send puts them on the update loop
		stop, err := options.Listen(func(e player.Event) {
			program.Send(engineEventMsg(e))
		})
		if err != nil {
			log.Warnf("engine events unavailable: %v", err)
			bubble.notifier.Set(fmt.Sprintf("engine events unavailable: %v", err))
		} else {
			defer stop()
		}
	}

	_, err := program.Run()
	return err
}
