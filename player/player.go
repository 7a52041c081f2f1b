// Package player is the typed façade over the playback engine.
//
// mpv exposes a string-keyed property protocol. Everything above this package
// talks to one method per semantic property instead, and never sees property
// names or IPC errors: reads come back as mo.Option, commands are fire-and-forget.
package player

import "github.com/samber/mo"

// Facade is the boundary through which the interaction core reaches the engine.
// Calls are made from a single control thread and are executed in call order.
type Facade interface {
	Position() mo.Option[float64]
	Duration() mo.Option[float64]
	Paused() mo.Option[bool]
	Speed() mo.Option[float64]
	MediaTitle() mo.Option[string]
	Path() mo.Option[string]

	SetPaused(paused bool)
	SetSpeed(speed float64)

	// SeekAbsoluteExact issues one sample-accurate seek to seconds.
	SeekAbsoluteExact(seconds float64)

	// SeekRelativeExact issues one sample-accurate seek by delta seconds.
	SeekRelativeExact(delta float64)

	CycleAudio()
	CycleSubtitles()
}

// Snapshot is the playback state read in one go. It is never cached across ticks.
type Snapshot struct {
	Position float64 `json:"position" jsonschema:"description=Current position in seconds."`
	Duration float64 `json:"duration" jsonschema:"description=Length of the loaded media in seconds. 0 while nothing is loaded."`
	Paused   bool    `json:"paused" jsonschema:"description=Whether playback is paused."`
	Speed    float64 `json:"speed" jsonschema:"description=Playback speed multiplier."`
}

// Read takes a Snapshot, substituting benign defaults for unavailable values.
func Read(f Facade) Snapshot {
	return Snapshot{
		Position: f.Position().OrElse(0),
		Duration: f.Duration().OrElse(0),
		Paused:   f.Paused().OrElse(false),
		Speed:    f.Speed().OrElse(1),
	}
}
