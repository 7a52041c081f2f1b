package cmd

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/config"
	"github.com/touchmpv/touchmpv/filesystem"
	"github.com/touchmpv/touchmpv/key"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/where"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		err := errUnknownKey("player.sockt")

		Convey("Then the closest known key is suggested", func() {
			So(err.Error(), ShouldContainSubstring, "player.socket")
		})
	})
}

func TestMatchConfigKeys(t *testing.T) {
	Convey("Given a partial key", t, func() {
		Convey("When it is a fuzzy abbreviation", func() {
			keys := matchConfigKeys("plsock")

			Convey("Then the matching key is offered", func() {
				So(keys, ShouldContain, key.PlayerSocket)
				So(keys, ShouldNotContain, key.GestureLongPressMs)
			})
		})

		Convey("When it is empty", func() {
			Convey("Then every key is offered in order", func() {
				keys := matchConfigKeys("")
				So(len(keys), ShouldEqual, len(config.Default))
				So(keys[0], ShouldBeLessThan, keys[len(keys)-1])
			})
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Given configuration fields of every type", t, func() {
		Convey("Then ints are parsed", func() {
			v, err := parseValue(config.Default[key.GestureLongPressMs], []string{"450"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 450)
		})

		Convey("Then malformed ints are rejected", func() {
			_, err := parseValue(config.Default[key.GestureLongPressMs], []string{"slow"})
			So(err, ShouldNotBeNil)
		})

		Convey("Then bools are parsed", func() {
			v, err := parseValue(config.Default[key.LogsWrite], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Then string lists keep every argument", func() {
			v, err := parseValue(config.Default[key.PlayerInitOptions], []string{"hwdec=no", "mute=yes"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"hwdec=no", "mute=yes"})
		})

		Convey("Then strings take the first argument", func() {
			v, err := parseValue(config.Default[key.PlayerBinary], []string{"/usr/bin/mpv"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "/usr/bin/mpv")
		})

		Convey("Then a missing value is an error", func() {
			_, err := parseValue(config.Default[key.PlayerBinary], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEnvNames(t *testing.T) {
	Convey("The environment listing", t, func() {
		names := envNames()

		So(names, ShouldContain, "TOUCHMPV_PLAYER_SOCKET")
		So(names, ShouldContain, "TOUCHMPV_GESTURE_LONG_PRESS_MS")
		So(names, ShouldContain, where.EnvConfigPath)
		So(len(names), ShouldEqual, len(config.EnvExposed)+1)
	})
}

func TestPlayerOptions(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		Convey("Then mpv options are read from it", func() {
			options, err := playerOptions()
			So(err, ShouldBeNil)
			So(options.Binary, ShouldEqual, "mpv")
			So(lo.Contains(options.InitOptions, player.Option{Name: "keep-open", Value: "yes"}), ShouldBeTrue)
			So(options.Observe, ShouldContain, "media-title")
		})

		Convey("When an init option is malformed", func() {
			viper.Set(key.PlayerInitOptions, []string{"=yes"})
			Reset(func() {
				viper.Set(key.PlayerInitOptions, config.Default[key.PlayerInitOptions].Value)
			})

			Convey("Then the offending key is named", func() {
				_, err := playerOptions()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, key.PlayerInitOptions)
			})
		})
	})
}

func TestOpenPlayerWithoutTarget(t *testing.T) {
	Convey("Given neither a socket nor a file", t, func() {
		_, err := openPlayer(nil)

		Convey("Then opening fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStatus(t *testing.T) {
	Convey("Given a paused engine with a generic title", t, func() {
		now := time.Now()
		sim := player.NewSimulated(func() time.Time { return now }, player.Media{
			Title:    "Video",
			Path:     "/media/show.mkv",
			Duration: 3661,
		})

		status := statusOf(sim)

		Convey("Then the file name stands in for the title", func() {
			So(status.Title, ShouldEqual, "show")
			So(status.Path, ShouldEqual, "/media/show.mkv")
		})

		Convey("Then times are formatted", func() {
			So(status.Time, ShouldEqual, "0:00")
			So(status.Total, ShouldEqual, "1:01:01")
		})

		Convey("Then the snapshot is carried", func() {
			So(status.Playback.Paused, ShouldBeTrue)
			So(status.Playback.Speed, ShouldEqual, 1)
		})
	})

	Convey("The status schema", t, func() {
		raw, err := json.Marshal(statusSchema())
		So(err, ShouldBeNil)

		So(string(raw), ShouldContainSubstring, `"title"`)
		So(string(raw), ShouldContainSubstring, `"playback"`)
		So(string(raw), ShouldContainSubstring, `"position"`)
	})
}

func TestDemoPlayer(t *testing.T) {
	Convey("Given a file argument in demo mode", t, func() {
		sim := demoPlayer([]string{"/videos/trailer.webm"})

		Convey("Then the simulated engine plays it", func() {
			So(sim.Path().MustGet(), ShouldEqual, "trailer.webm")
			So(sim.Paused().MustGet(), ShouldBeFalse)
		})
	})
}

func TestMissingDependency(t *testing.T) {
	Convey("The install hint", t, func() {
		So(installHint("darwin"), ShouldEqual, "brew install mpv")
		So(installHint("plan9"), ShouldBeEmpty)
		So(missingDependency("mpv", "brew install mpv"), ShouldContainSubstring, "brew install mpv")
	})
}
