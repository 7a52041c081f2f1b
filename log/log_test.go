package log

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/filesystem"
	"github.com/touchmpv/touchmpv/key"
)

func TestSetup(t *testing.T) {
	Convey("Given logging disabled", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and emissions are dropped", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})
	})

	Convey("Given logging enabled", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup opens the daily file", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given a buffer as output", t, func() {
		var buf bytes.Buffer
		enabled = true
		defer func() { enabled = false }()

		Convey("JSON formatting is honoured", func() {
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "info")
			configure(&buf)
			Infof("seek to %d", 42)
			So(buf.String(), ShouldContainSubstring, `"msg":"seek to 42"`)
		})

		Convey("Messages below the level are dropped", func() {
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "warn")
			configure(&buf)
			Debug("hidden")
			Warn("shown")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "shown")
		})

		Convey("An invalid level falls back to info", func() {
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "loud")
			configure(&buf)
			Debug("hidden")
			Info("shown")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "shown")
		})
	})
}
