package tui

import (
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/touchmpv/touchmpv/gesture"
	"github.com/touchmpv/touchmpv/internal/ui"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/sched"
	"github.com/touchmpv/touchmpv/util"
)

// engineEventMsg carries a player.Event onto the update loop.
type engineEventMsg player.Event

type engineExitedMsg struct{}

func waitForExit(exited <-chan struct{}) tea.Cmd {
	if exited == nil {
		return nil
	}

	return func() tea.Msg {
		<-exited
		return engineExitedMsg{}
	}
}

// Init attaches the surface and starts its timers.
func (b *bubble) Init() tea.Cmd {
	b.surface.Attach()
	return tea.Batch(b.sched.Flush(), waitForExit(b.options.Exited))
}

// Update is the single control thread: pointer input, keys, timer ticks and
// engine events are all handled here, one at a time.
func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{b.notifier.Update(msg)}

	switch msg := msg.(type) {
	case sched.FiredMsg:
		b.sched.Fire(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		b.handleMouse(tea.MouseEvent(msg))
	case tea.KeyMsg:
		if cmd := b.handleKey(msg); cmd != nil {
			return b, cmd
		}
	case engineEventMsg:
		b.surface.OnProperty(player.Event(msg))
		if msg.Name == "end-file" {
			cmds = append(cmds, notify("playback ended"))
		}
	case engineExitedMsg:
		log.Info("engine exited")
		return b, b.quit()
	}

	cmds = append(cmds, b.sched.Flush())
	return b, tea.Batch(cmds...)
}

func (b *bubble) quit() tea.Cmd {
	b.surface.Detach()
	b.sched.CancelAll()
	return tea.Quit
}

func (b *bubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.forceQuit), bubblesKey.Matches(msg, b.keymap.quit):
		return b.quit()
	case bubblesKey.Matches(msg, b.keymap.playPause):
		b.surface.TogglePause()
	case bubblesKey.Matches(msg, b.keymap.seekBack):
		b.surface.KeySeek(false)
	case bubblesKey.Matches(msg, b.keymap.seekForward):
		b.surface.KeySeek(true)
	case bubblesKey.Matches(msg, b.keymap.speed):
		b.surface.CycleSpeed()
	case bubblesKey.Matches(msg, b.keymap.audio):
		b.surface.CycleAudio()
	case bubblesKey.Matches(msg, b.keymap.subtitles):
		b.surface.CycleSubtitles()
	case bubblesKey.Matches(msg, b.keymap.info):
		b.surface.ToggleInfo()
	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return nil
}

// sample maps a cell to the pixel at its centre.
func (b *bubble) sample(x, y int, at time.Time) gesture.Sample {
	return gesture.Sample{
		X:           (float64(x) + 0.5) * b.options.CellWidth,
		Y:           (float64(y) + 0.5) * b.options.CellHeight,
		TimestampMs: at.UnixMilli(),
	}
}

func (b *bubble) handleMouse(m tea.MouseEvent) {
	at := b.now()

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return
		}
		b.press(m, at)
	case tea.MouseActionMotion:
		if !b.pressed {
			return
		}
		if b.barDrag {
			b.surface.BarDrag(b.barFraction(m.X))
		} else {
			b.surface.Move(b.sample(m.X, m.Y, at))
		}
	case tea.MouseActionRelease:
		if !b.pressed {
			return
		}
		b.release(m, at)
	}
}

func (b *bubble) press(m tea.MouseEvent, at time.Time) {
	b.pressed = true

	if b.onBar(m.X, m.Y) {
		b.barDrag = true
		b.surface.BeginBarDrag()
		b.surface.BarDrag(b.barFraction(m.X))
		return
	}

	b.surface.Down(b.sample(m.X, m.Y, at))
}

func (b *bubble) release(m tea.MouseEvent, at time.Time) {
	b.pressed = false

	if b.barDrag {
		b.barDrag = false
		b.surface.EndBarDrag()
		return
	}

	b.surface.Up(b.sample(m.X, m.Y, at))
}

func (b *bubble) onBar(x, y int) bool {
	if b.height == 0 || !b.surface.HUD().Controls {
		return false
	}

	return y == b.barRow() && x >= labelWidth && x < labelWidth+b.barWidth()
}

func (b *bubble) barFraction(x int) float64 {
	w := b.barWidth()
	if w <= 1 {
		return 0
	}
	return util.Clamp(float64(x-labelWidth)/float64(w-1), 0, 1)
}

// notify shows a status line notification.
func notify(text string) tea.Cmd {
	return ui.Notify(text)
}
