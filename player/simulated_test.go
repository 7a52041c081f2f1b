package player

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSimulated(t *testing.T) {
	Convey("Given a simulated engine", t, func() {
		now := time.Unix(0, 0)
		clock := func() time.Time { return now }
		sim := NewSimulated(clock, Media{Title: "Sintel", Path: "/v/sintel.mkv", Duration: 60, Audio: 2, Subs: 1})

		Convey("It starts paused at 0", func() {
			So(Read(sim), ShouldResemble, Snapshot{Position: 0, Duration: 60, Paused: true, Speed: 1})
		})

		Convey("Position advances with the clock only while playing", func() {
			now = now.Add(5 * time.Second)
			So(sim.Position().MustGet(), ShouldEqual, 0)

			sim.SetPaused(false)
			now = now.Add(5 * time.Second)
			So(sim.Position().MustGet(), ShouldEqual, 5)

			sim.SetSpeed(2)
			now = now.Add(time.Second)
			So(sim.Position().MustGet(), ShouldEqual, 7)
		})

		Convey("Position stops at the duration", func() {
			sim.SetPaused(false)
			now = now.Add(time.Hour)
			So(sim.Position().MustGet(), ShouldEqual, 60)
		})

		Convey("Seeks are clamped to the media", func() {
			sim.SeekAbsoluteExact(75)
			So(sim.Position().MustGet(), ShouldEqual, 60)

			sim.SeekRelativeExact(-100)
			So(sim.Position().MustGet(), ShouldEqual, 0)
		})

		Convey("Commands are recorded in order", func() {
			sim.SeekAbsoluteExact(10)
			sim.SetPaused(false)
			sim.CycleAudio()

			So(sim.Calls(), ShouldResemble, []Call{
				{Method: MethodSeekAbsoluteExact, Arg: 10.0},
				{Method: MethodSetPaused, Arg: false},
				{Method: MethodCycleAudio},
			})
			So(sim.Calls(MethodSetPaused), ShouldHaveLength, 1)
			So(sim.Calls()[0].String(), ShouldEqual, "SeekAbsoluteExact(10)")

			sim.ResetCalls()
			So(sim.Calls(), ShouldBeEmpty)
		})

		Convey("Tracks cycle through off", func() {
			sim.CycleAudio()
			sim.CycleAudio()
			sim.CycleAudio()
			sim.CycleSubtitles()
			aid, sid := sim.Tracks()
			So(aid, ShouldEqual, 0)
			So(sid, ShouldEqual, 1)
		})

		Convey("Unavailable properties read as None", func() {
			sim.SetUnavailable("duration", true)
			sim.SetUnavailable("pause", true)
			So(sim.Duration().IsAbsent(), ShouldBeTrue)
			So(Read(sim).Paused, ShouldBeFalse)
			So(Read(sim).Duration, ShouldEqual, 0)
		})
	})
}
