package surface

import (
	"time"

	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/gesture"
	"github.com/touchmpv/touchmpv/key"
	"github.com/touchmpv/touchmpv/overlay"
	"github.com/touchmpv/touchmpv/seek"
)

// Options parameterise a Surface.
type Options struct {
	Gesture gesture.Config
	Overlay overlay.Durations

	// Settle is the delay before resuming after a seek.
	Settle time.Duration

	// Poll is the interval of position polling.
	Poll time.Duration

	// InfoDelay is how long after Attach the video-info banner appears.
	InfoDelay time.Duration

	// KeySeekSeconds is the jump of QuickSeek from the keyboard.
	KeySeekSeconds float64

	// SpeedSteps are walked by CycleSpeed, ascending.
	SpeedSteps []float64
}

func DefaultOptions() Options {
	return Options{
		Gesture:        gesture.DefaultConfig(),
		Overlay:        overlay.DefaultDurations(),
		Settle:         seek.DefaultSettle,
		Poll:           100 * time.Millisecond,
		InfoDelay:      time.Second,
		KeySeekSeconds: 10,
		SpeedSteps:     []float64{0.5, 0.75, 1, 1.25, 1.5, 1.75, 2},
	}
}

func millis(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Millisecond
}

// OptionsFromConfig reads the gesture, overlay and seek settings.
func OptionsFromConfig() Options {
	options := DefaultOptions()

	options.Gesture = gesture.Config{
		LongPress:           millis(key.GestureLongPressMs),
		TapMax:              millis(key.GestureTapMaxMs),
		HorizontalThreshold: viper.GetFloat64(key.GestureHorizontalThreshold),
		VerticalThreshold:   viper.GetFloat64(key.GestureVerticalThreshold),
		MaxCrossMovement:    viper.GetFloat64(key.GestureMaxCrossMovement),
		QuickSeekSeconds:    viper.GetFloat64(key.GestureQuickSeekSeconds),
		PixelsPerSecond:     viper.GetFloat64(key.GestureScrubPixelsPerSecond),
		LongPressSpeed:      viper.GetFloat64(key.GestureLongPressSpeedPercent) / 100,
		DoubleTap:           millis(key.GestureDoubleTapMs),
	}

	options.Overlay = overlay.Durations{
		Controls:  millis(key.OverlayControlsMs),
		Feedback:  millis(key.OverlayFeedbackMs),
		VideoInfo: millis(key.OverlayInfoMs),
		Suppress:  millis(key.OverlaySuppressMs),
	}

	options.Settle = millis(key.SeekSettleMs)
	options.Poll = millis(key.SeekPollMs)
	options.KeySeekSeconds = viper.GetFloat64(key.SeekKeySeconds)

	// a zero rate would divide by zero
	if options.Gesture.PixelsPerSecond <= 0 {
		options.Gesture.PixelsPerSecond = gesture.DefaultConfig().PixelsPerSecond
	}

	if options.Poll <= 0 {
		options.Poll = DefaultOptions().Poll
	}

	return options
}
