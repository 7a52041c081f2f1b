package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/touchmpv/touchmpv/internal/ui"
	"github.com/touchmpv/touchmpv/sched"
	"github.com/touchmpv/touchmpv/style"
	"github.com/touchmpv/touchmpv/surface"
)

const (
	defaultCellWidth  = 10
	defaultCellHeight = 20
)

// bubble adapts the surface to the Bubble Tea model interface.
type bubble struct {
	options Options
	surface *surface.Surface
	sched   *sched.Tea
	now     func() time.Time

	keymap    *keymap
	helpC     help.Model
	progressC progress.Model
	notifier  ui.Model

	// pointer state of the current press
	pressed bool
	barDrag bool

	width, height int
}

func newBubble(options Options) *bubble {
	if options.CellWidth <= 0 {
		options.CellWidth = defaultCellWidth
	}
	if options.CellHeight <= 0 {
		options.CellHeight = defaultCellHeight
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	scheduler := sched.NewTea()

	return &bubble{
		options:   options,
		surface:   surface.New(options.Surface, options.Player, scheduler),
		sched:     scheduler,
		now:       options.Now,
		keymap:    newKeymap(),
		helpC:     help.New(),
		progressC: progress.New(progress.WithGradient(style.ProgressFrom, style.ProgressTo), progress.WithoutPercentage()),
	}
}

func (b *bubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.helpC.Width = width
	b.progressC.Width = b.barWidth()
}
