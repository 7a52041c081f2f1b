// Package color provides the ANSI colors shared by the CLI and the playback HUD.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Gray   = New("8")
)

var (
	HiRed    = New("9")
	HiCyan   = New("14")
	HiPurple = New("13")
)

// Scrim is the dark backdrop drawn behind overlay text so it stays legible over any terminal theme.
var Scrim = New("#1e1e2e")
