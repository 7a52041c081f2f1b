package player

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMPV(t *testing.T) {
	Convey("Given mpv listening on a socket", t, func() {
		fake := newFakeMPV(t)
		mpv := NewMPV(Options{
			Socket:          fake.socket,
			PostInitOptions: []Option{{Name: "keepaspect", Value: "yes"}, {Name: "panscan", Value: "0.0"}},
		})

		Convey("When attaching", func() {
			So(mpv.Attach(), ShouldBeNil)

			Convey("Then post-init options are applied through set_property", func() {
				cmds := fake.received()
				So(cmds, ShouldContain, "[set_property keepaspect true]")
				So(cmds, ShouldContain, "[set_property panscan 0]")
			})

			Convey("Then reads are typed", func() {
				So(mpv.Position().MustGet(), ShouldEqual, 12.5)
				So(mpv.Duration().MustGet(), ShouldEqual, 100.0)
				So(mpv.Paused().MustGet(), ShouldBeFalse)
				So(mpv.Speed().MustGet(), ShouldEqual, 1.0)
				So(mpv.MediaTitle().MustGet(), ShouldEqual, "Big Buck Bunny.mkv")
				So(mpv.Path().MustGet(), ShouldEqual, "/videos/bbb.mkv")
			})

			Convey("Then an unavailable property reads as None", func() {
				fake.set("duration", nil)
				So(mpv.Duration().IsAbsent(), ShouldBeTrue)
			})

			Convey("Then a wrongly typed property reads as None", func() {
				fake.set("pause", "maybe")
				So(mpv.Paused().IsAbsent(), ShouldBeTrue)
			})

			Convey("Then commands translate to exact seeks and property writes", func() {
				mpv.SeekAbsoluteExact(30)
				mpv.SeekRelativeExact(-5)
				mpv.SetPaused(true)
				mpv.SetSpeed(2)
				mpv.CycleAudio()
				mpv.CycleSubtitles()

				cmds := fake.received()
				So(cmds, ShouldContain, "[seek 30 absolute+exact]")
				So(cmds, ShouldContain, "[seek -5 relative+exact]")
				So(cmds, ShouldContain, "[set_property pause true]")
				So(cmds, ShouldContain, "[set_property speed 2]")
				So(cmds, ShouldContain, "[cycle aid]")
				So(cmds, ShouldContain, "[cycle sid]")
			})

			Convey("Then Read builds a snapshot", func() {
				snap := Read(mpv)
				So(snap, ShouldResemble, Snapshot{Position: 12.5, Duration: 100, Paused: false, Speed: 1})
			})

			Convey("Then a command mpv never answers is sent only once", func() {
				fake.hang()
				mpv.SeekRelativeExact(5)
				mpv.CycleAudio()

				cmds := fake.received()
				So(lo.Count(cmds, "[seek 5 relative+exact]"), ShouldEqual, 1)
				So(lo.Count(cmds, "[cycle aid]"), ShouldEqual, 1)
			})

			Convey("Then closing leaves the attached instance running", func() {
				So(mpv.Close(), ShouldBeNil)
				So(fake.received(), ShouldNotContain, "[quit]")
			})
		})

		Convey("When attaching without a socket", func() {
			err := NewMPV(Options{}).Attach()
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given nothing attached", t, func() {
		mpv := NewMPV(Options{})

		Convey("Then reads are None", func() {
			So(mpv.Position().IsAbsent(), ShouldBeTrue)
			So(mpv.Paused().IsAbsent(), ShouldBeTrue)
		})

		Convey("Then Wait is already closed", func() {
			_, open := <-mpv.Wait()
			So(open, ShouldBeFalse)
		})
	})
}

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("Sanitizing media targets", t, func() {
		Convey("Local paths are cleaned", func() {
			target, err := sanitizeMediaTarget(" /videos/../videos/a.mkv ")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, "/videos/a.mkv")
		})

		Convey("http, https and file URLs pass", func() {
			for _, u := range []string{"https://example.com/a.mp4", "http://example.com/a.mp4", "file:///a.mp4"} {
				target, err := sanitizeMediaTarget(u)
				So(err, ShouldBeNil)
				So(target, ShouldEqual, u)
			}
		})

		Convey("Flags, control characters, empty targets and other schemes are rejected", func() {
			for _, bad := range []string{"", "  ", "--script=x.lua", "a\nb", "ftp://example.com/a"} {
				_, err := sanitizeMediaTarget(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
