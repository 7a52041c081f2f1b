package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/color"
	"github.com/touchmpv/touchmpv/constant"
	"github.com/touchmpv/touchmpv/key"
	"github.com/touchmpv/touchmpv/style"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PlayerBinary, "mpv", "mpv executable to launch")
	register(key.PlayerSocket, "", "Attach to an already running mpv IPC socket instead of launching one")
	register(key.PlayerInitOptions, []string{"keep-open=yes", "hwdec=auto", "correct-pts=yes"}, "Options passed to mpv on the command line, as name=value")
	register(key.PlayerPostInitOptions, []string{"keepaspect=yes", "panscan=0.0"}, "Properties set through IPC once mpv is up, as name=value")
	register(key.PlayerObserve, []string{"media-title", "path", "eof-reached"}, "mpv properties observed for live updates")

	register(key.GestureLongPressMs, 300, "Hold time before a press becomes a 2X speed ramp")
	register(key.GestureTapMaxMs, 150, "Longest touch still recognized as a tap")
	register(key.GestureHorizontalThreshold, 30, "Horizontal travel in pixels that starts scrubbing")
	register(key.GestureVerticalThreshold, 40, "Vertical travel in pixels that starts a quick seek")
	register(key.GestureMaxCrossMovement, 50, "Travel along the other axis that disqualifies a swipe")
	register(key.GestureQuickSeekSeconds, 5, "Seconds skipped by a vertical swipe")
	register(key.GestureScrubPixelsPerSecond, 250, "Pixels of drag per second of scrub")
	register(key.GestureLongPressSpeedPercent, 200, "Playback speed while long-pressing, in percent")
	register(key.GestureDoubleTapMs, 300, "Window after a tap in which a second touch counts as a double-tap. A tap acts once it has passed, 0 disables double-taps")

	register(key.OverlayControlsMs, 4000, "Auto-hide delay of the seek controls")
	register(key.OverlayFeedbackMs, 1000, "Auto-hide delay of the feedback text")
	register(key.OverlayInfoMs, 4000, "Auto-hide delay of the video info banner")
	register(key.OverlaySuppressMs, 100, "Cool-down during which control auto-hide is ignored after interaction starts")

	register(key.SeekSettleMs, 100, "Delay before resuming playback after a seek")
	register(key.SeekPollMs, 100, "Interval of position polling")
	register(key.SeekKeySeconds, 10, "Seconds skipped by the arrow keys")

	register(key.TUICellWidth, 10, "Pixels per terminal column")
	register(key.TUICellHeight, 20, "Pixels per terminal row")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
