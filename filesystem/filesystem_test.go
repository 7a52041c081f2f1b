package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestOpenAppend(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		lo.Must0(API().MkdirAll("/logs", 0o755))

		Convey("Writes accumulate across opens", func() {
			for _, line := range []string{"first\n", "second\n"} {
				f, err := OpenAppend("/logs/today.log")
				So(err, ShouldBeNil)
				_, err = f.WriteString(line)
				So(err, ShouldBeNil)
				So(f.Close(), ShouldBeNil)
			}

			data := lo.Must(API().ReadFile("/logs/today.log"))
			So(string(data), ShouldEqual, "first\nsecond\n")
		})
	})
}
