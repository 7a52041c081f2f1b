// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback Engine - these keys configure how the mpv process is spawned and reached.
const (
	PlayerBinary          = "player.binary"
	PlayerSocket          = "player.socket"
	PlayerInitOptions     = "player.init_options"
	PlayerPostInitOptions = "player.post_init_options"
	PlayerObserve         = "player.observe"
)

// Gesture Recognition - these keys define the disambiguation thresholds and time windows.
const (
	GestureLongPressMs           = "gesture.long_press_ms"
	GestureTapMaxMs              = "gesture.tap_max_ms"
	GestureHorizontalThreshold   = "gesture.horizontal_threshold"
	GestureVerticalThreshold     = "gesture.vertical_threshold"
	GestureMaxCrossMovement      = "gesture.max_cross_movement"
	GestureQuickSeekSeconds      = "gesture.quick_seek_seconds"
	GestureScrubPixelsPerSecond  = "gesture.scrub_pixels_per_second"
	GestureLongPressSpeedPercent = "gesture.long_press_speed_percent"
	GestureDoubleTapMs           = "gesture.double_tap_ms"
)

// Overlay Timers - these keys define the auto-hide lifetimes of transient UI elements.
const (
	OverlayControlsMs = "overlay.controls_ms"
	OverlayFeedbackMs = "overlay.feedback_ms"
	OverlayInfoMs     = "overlay.info_ms"
	OverlaySuppressMs = "overlay.suppress_ms"
)

// Seeking - these keys tune the scrubbing pipeline.
const (
	SeekSettleMs   = "seek.settle_ms"
	SeekPollMs     = "seek.poll_ms"
	SeekKeySeconds = "seek.key_seconds"
)

// Terminal User Interface (TUI) - these keys map terminal cells onto the pointer coordinate space.
const (
	TUICellWidth  = "tui.cell_width"
	TUICellHeight = "tui.cell_height"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
