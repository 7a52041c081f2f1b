// Package icon renders UI symbols in the variant selected by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs or plain ASCII.
package icon

import (
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Play
	Pause
	Forward
	Rewind
	Speed
	Info
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "🎉", nerd: "", plain: "+"},
	Fail:    {emoji: "💀", nerd: "", plain: "x"},
	Play:    {emoji: "▶️", nerd: "", plain: ">"},
	Pause:   {emoji: "⏸️", nerd: "", plain: "||"},
	Forward: {emoji: "⏩", nerd: "", plain: ">>"},
	Rewind:  {emoji: "⏪", nerd: "", plain: "<<"},
	Speed:   {emoji: "🐇", nerd: "", plain: "x"},
	Info:    {emoji: "🎬", nerd: "", plain: "i"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
