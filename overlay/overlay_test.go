package overlay

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/touchmpv/touchmpv/sched"
)

func TestScheduler(t *testing.T) {
	Convey("Given an overlay scheduler", t, func() {
		clock := sched.NewManual()
		o := New(clock, DefaultDurations())

		Convey("Elements start hidden", func() {
			for _, e := range Elements {
				So(o.Visible(e), ShouldBeFalse)
				So(o.Pending(e), ShouldBeFalse)
			}
		})

		Convey("Show auto-hides after the element's duration", func() {
			o.Show(Controls)
			o.ShowText(Feedback, "2X")
			o.Show(VideoInfo)

			clock.Advance(999 * time.Millisecond)
			So(o.Visible(Feedback), ShouldBeTrue)

			clock.Advance(time.Millisecond)
			So(o.Visible(Feedback), ShouldBeFalse)
			So(o.Text(Feedback), ShouldEqual, "2X")
			So(o.Visible(Controls), ShouldBeTrue)

			clock.Advance(3 * time.Second)
			So(o.Visible(Controls), ShouldBeFalse)
			So(o.Visible(VideoInfo), ShouldBeFalse)
		})

		Convey("Showing again resets the timer", func() {
			o.Show(Controls)
			clock.Advance(3 * time.Second)
			o.Show(Controls)
			clock.Advance(3 * time.Second)
			So(o.Visible(Controls), ShouldBeTrue)
			clock.Advance(time.Second)
			So(o.Visible(Controls), ShouldBeFalse)
		})

		Convey("Cancel keeps the element visible", func() {
			o.Show(Controls)
			o.Cancel(Controls)
			clock.Advance(time.Minute)
			So(o.Visible(Controls), ShouldBeTrue)

			Convey("and cancelling twice is a no-op", func() {
				o.Cancel(Controls)
				So(o.Visible(Controls), ShouldBeTrue)
			})
		})

		Convey("Cancelling one element never affects another", func() {
			o.Show(Controls)
			o.ShowText(Feedback, "+5")
			o.Show(VideoInfo)

			o.Cancel(Feedback)
			So(o.Pending(Controls), ShouldBeTrue)
			So(o.Pending(VideoInfo), ShouldBeTrue)

			clock.Advance(4 * time.Second)
			So(o.Visible(Feedback), ShouldBeTrue)
			So(o.Visible(Controls), ShouldBeFalse)
			So(o.Visible(VideoInfo), ShouldBeFalse)
		})

		Convey("Toggle flips visibility", func() {
			So(o.Toggle(VideoInfo), ShouldBeTrue)
			So(o.Pending(VideoInfo), ShouldBeTrue)
			So(o.Toggle(VideoInfo), ShouldBeFalse)
			So(o.Pending(VideoInfo), ShouldBeFalse)
		})

		Convey("Hide after the timer fired is harmless", func() {
			o.Show(Feedback)
			clock.Advance(2 * time.Second)
			o.Hide(Feedback)
			So(o.Visible(Feedback), ShouldBeFalse)
		})

		Convey("While suppressed", func() {
			o.Show(Controls)
			o.Suppress()

			Convey("pending controls auto-hide is cancelled", func() {
				So(o.Pending(Controls), ShouldBeFalse)
				So(o.Interacting(), ShouldBeTrue)
			})

			Convey("controls auto-hide requests are dropped", func() {
				o.ScheduleHide(Controls)
				So(o.Pending(Controls), ShouldBeFalse)
				clock.Advance(time.Minute)
				So(o.Visible(Controls), ShouldBeTrue)
			})

			Convey("feedback still auto-hides", func() {
				o.ShowText(Feedback, "1:00 +")
				So(o.Pending(Feedback), ShouldBeTrue)
			})

			Convey("the cool-down ends after 100 ms", func() {
				clock.Advance(100 * time.Millisecond)
				So(o.Interacting(), ShouldBeFalse)
				o.ScheduleHide(Controls)
				So(o.Pending(Controls), ShouldBeTrue)
			})

			Convey("Release ends it immediately", func() {
				o.Release()
				o.ScheduleHide(Controls)
				So(o.Pending(Controls), ShouldBeTrue)
			})
		})

		Convey("CancelAll leaves no timers behind", func() {
			o.Show(Controls)
			o.Show(Feedback)
			o.Show(VideoInfo)
			o.Suppress()
			o.CancelAll()
			So(clock.Len(), ShouldEqual, 0)
		})

		Convey("Element names", func() {
			So(Controls.String(), ShouldEqual, "controls")
			So(Feedback.String(), ShouldEqual, "feedback")
			So(VideoInfo.String(), ShouldEqual, "video-info")
		})
	})
}
