package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/touchmpv/touchmpv/icon"
	"github.com/touchmpv/touchmpv/style"
	"github.com/touchmpv/touchmpv/surface"
)

// labelWidth is the width of the clock labels on both sides of the bar.
const labelWidth = 9

// barRow is the line of the progress bar, right above the help.
func (b *bubble) barRow() int {
	return b.height - 2
}

func (b *bubble) barWidth() int {
	return max(b.width-2*labelWidth, 1)
}

func (b *bubble) View() string {
	if b.width == 0 || b.height < 3 {
		return ""
	}

	hud := b.surface.HUD()
	lines := make([]string, b.height)

	if info, ok := hud.Info.Get(); ok {
		text := icon.Get(icon.Info) + " " + info
		lines[0] = style.Banner.Render(truncate.StringWithTail(strings.TrimSpace(text), uint(max(b.width-4, 1)), "…"))
	}

	lines[1] = style.Muted.Render(b.status(hud))

	if feedback, ok := hud.Feedback.Get(); ok {
		lines[b.height/2] = lipgloss.PlaceHorizontal(b.width, lipgloss.Center, style.Feedback.Render(feedback))
	}

	if hud.Controls || hud.Scrubbing {
		lines[b.barRow()] = b.viewControls(hud)
	}

	lines[b.height-1] = b.notifier.View(b.helpC.View(b.keymap))

	return strings.Join(lines, "\n")
}

func (b *bubble) viewControls(hud surface.HUD) string {
	left := style.Clock.Width(labelWidth).Align(lipgloss.Left).Render(hud.Time)
	right := style.Clock.Width(labelWidth).Align(lipgloss.Right).Render(hud.Total)
	bar := b.progressC.ViewAs(float64(hud.Progress) / surface.ProgressMax)

	return left + bar + right
}

func (b *bubble) status(hud surface.HUD) string {
	state := icon.Get(icon.Play)
	if hud.Paused {
		state = icon.Get(icon.Pause)
	}

	return fmt.Sprintf("%s %s %gX", state, icon.Get(icon.Speed), hud.Speed)
}
