package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/touchmpv/touchmpv/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for _, target := range []struct {
			name string
			fn   func() string
		}{
			{"Config", Config},
			{"Cache", Cache},
			{"Logs", Logs},
			{"Sockets", Sockets},
		} {
			Convey(target.name+"()", func() {
				path := target.fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("Config() honours the override variable", func() {
			custom := filepath.Join(os.TempDir(), "touchmpv-test-config")
			t.Setenv(EnvConfigPath, custom)
			So(Config(), ShouldEqual, custom)
		})
	})
}
