package config

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/filesystem"
	"github.com/touchmpv/touchmpv/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Gesture thresholds default to the documented values", func() {
			_ = Setup()
			So(viper.GetInt(key.GestureLongPressMs), ShouldEqual, 300)
			So(viper.GetInt(key.GestureTapMaxMs), ShouldEqual, 150)
			So(viper.GetInt(key.GestureScrubPixelsPerSecond), ShouldEqual, 250)
			So(viper.GetInt(key.OverlayFeedbackMs), ShouldEqual, 1000)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("gesture.long_press_ms"), ShouldEqual, "gesture_long_press_ms")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.GestureTapMaxMs]

		Convey("Env is prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "TOUCHMPV_GESTURE_TAP_MAX_MS")
		})

		Convey("JSON carries type and default", func() {
			var decoded map[string]any
			lo.Must0(json.Unmarshal(lo.Must(field.MarshalJSON()), &decoded))
			So(decoded["type"], ShouldEqual, "int")
			So(decoded["default"], ShouldEqual, 150.0)
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.GestureTapMaxMs)
		})
	})
}
