package sched

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestManual(t *testing.T) {
	Convey("Given a manual scheduler", t, func() {
		m := NewManual()
		var fired []string
		record := func(name string) Task {
			return func() { fired = append(fired, name) }
		}

		Convey("Tasks fire once their deadline is reached", func() {
			m.After("a", 100*time.Millisecond, record("a"))
			m.Advance(99 * time.Millisecond)
			So(fired, ShouldBeEmpty)
			So(m.Pending("a"), ShouldBeTrue)

			m.Advance(time.Millisecond)
			So(fired, ShouldResemble, []string{"a"})
			So(m.Pending("a"), ShouldBeFalse)
			So(m.Now(), ShouldEqual, 100*time.Millisecond)
		})

		Convey("Tasks fire in deadline order, ties in arming order", func() {
			m.After("late", 300*time.Millisecond, record("late"))
			m.After("early", 100*time.Millisecond, record("early"))
			m.After("tie", 100*time.Millisecond, record("tie"))
			So(m.Names(), ShouldResemble, []string{"early", "tie", "late"})

			m.Advance(time.Second)
			So(fired, ShouldResemble, []string{"early", "tie", "late"})
		})

		Convey("Re-arming a name replaces the pending task", func() {
			m.After("hide", 100*time.Millisecond, record("first"))
			m.Advance(50 * time.Millisecond)
			m.After("hide", 100*time.Millisecond, record("second"))
			m.Advance(60 * time.Millisecond)
			So(fired, ShouldBeEmpty)
			m.Advance(40 * time.Millisecond)
			So(fired, ShouldResemble, []string{"second"})
		})

		Convey("Cancelling is idempotent", func() {
			m.After("a", 10*time.Millisecond, record("a"))
			m.Cancel("a")
			m.Cancel("a")
			m.Cancel("never-armed")
			m.Advance(time.Second)
			So(fired, ShouldBeEmpty)

			m.After("b", 10*time.Millisecond, record("b"))
			m.Advance(time.Second)
			m.Cancel("b")
			So(fired, ShouldResemble, []string{"b"})
		})

		Convey("Self re-arming tasks repeat within one Advance", func() {
			var tick Task
			tick = func() {
				fired = append(fired, "tick")
				m.After("poll", 100*time.Millisecond, tick)
			}
			m.After("poll", 100*time.Millisecond, tick)
			m.Advance(350 * time.Millisecond)
			So(len(fired), ShouldEqual, 3)
			So(m.Pending("poll"), ShouldBeTrue)
		})

		Convey("CancelAll empties the scheduler", func() {
			m.After("a", time.Second, record("a"))
			m.After("b", time.Second, record("b"))
			m.CancelAll()
			So(m.Len(), ShouldEqual, 0)
			m.Advance(2 * time.Second)
			So(fired, ShouldBeEmpty)
		})
	})
}
