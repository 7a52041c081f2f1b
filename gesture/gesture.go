// Package gesture classifies a single-pointer event stream into one active
// gesture per touch and drives the seek pipeline and overlay from it.
//
// A touch starts Pending. Holding still past the long-press window ramps the
// speed up until release. Crossing the horizontal threshold scrubs, crossing
// the vertical one issues a single quick seek. The first classification wins
// and holds until the pointer is released. A short touch that never
// classified is a tap.
package gesture

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/overlay"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/sched"
	"github.com/touchmpv/touchmpv/timefmt"
	"github.com/touchmpv/touchmpv/util"
)

// LongPressTask is the name of the long-press timer.
const LongPressTask = "gesture.long-press"

// TapTask holds a tap back until the double-tap window has passed.
const TapTask = "gesture.tap"

// Sample is one pointer position in pixels with its timestamp in milliseconds.
type Sample struct {
	X, Y        float64
	TimestampMs int64
}

// State is the interpreter state.
type State int

const (
	Idle State = iota
	Pending
	LongPress
	HorizontalSeeking
	VerticalSwiping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case LongPress:
		return "long-press"
	case HorizontalSeeking:
		return "horizontal-seeking"
	case VerticalSwiping:
		return "vertical-swiping"
	default:
		return "unknown"
	}
}

// Direction is the sign of the last seek of a session.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) sign() string {
	switch d {
	case Forward:
		return "+"
	case Backward:
		return "-"
	default:
		return ""
	}
}

// Session is the state of one touch, from down to up.
type Session struct {
	Start          Sample
	AnchorX        float64
	AnchorPosition float64
	Direction      Direction
	Target         mo.Option[float64]
}

// Seeker is what the interpreter needs from the seek pipeline.
type Seeker interface {
	Begin() float64
	Scrub(target float64) float64
	End()
	Relative(delta float64)
	ResumeExact()
}

// Overlay is what the interpreter needs from the overlay scheduler.
type Overlay interface {
	ShowText(e overlay.Element, text string)
	Toggle(e overlay.Element) bool
	ScheduleHide(e overlay.Element)
	Suppress()
	Release()
}

// Config holds the thresholds and windows.
type Config struct {
	LongPress           time.Duration
	TapMax              time.Duration
	HorizontalThreshold float64
	VerticalThreshold   float64
	// MaxCrossMovement bounds the movement across the classified axis.
	MaxCrossMovement float64
	QuickSeekSeconds float64
	PixelsPerSecond  float64
	LongPressSpeed   float64
	// DoubleTap is the window after a tap in which a second touch makes a
	// double tap. Zero makes taps act on release.
	DoubleTap time.Duration
}

// DefaultConfig scrubs at 4 px per 16 ms frame, i.e. 250 px per second of media.
func DefaultConfig() Config {
	return Config{
		LongPress:           300 * time.Millisecond,
		TapMax:              150 * time.Millisecond,
		HorizontalThreshold: 30,
		VerticalThreshold:   40,
		MaxCrossMovement:    50,
		QuickSeekSeconds:    5,
		PixelsPerSecond:     4 / 0.016,
		LongPressSpeed:      2,
		DoubleTap:           300 * time.Millisecond,
	}
}

// Interpreter is the gesture state machine. It must be driven from the
// control thread that runs the scheduler.
type Interpreter struct {
	config  Config
	player  player.Facade
	seeker  Seeker
	overlay Overlay
	sched   sched.Scheduler

	state   State
	session *Session

	beforeDoubleTap func()
}

func New(config Config, p player.Facade, seeker Seeker, o Overlay, s sched.Scheduler) *Interpreter {
	return &Interpreter{
		config:  config,
		player:  p,
		seeker:  seeker,
		overlay: o,
		sched:   s,
	}
}

// OnDoubleTap registers f to run before the banner is toggled.
func (i *Interpreter) OnDoubleTap(f func()) {
	i.beforeDoubleTap = f
}

// State returns the current state.
func (i *Interpreter) State() State {
	return i.state
}

// Session returns a copy of the live session.
func (i *Interpreter) Session() mo.Option[Session] {
	if i.session == nil {
		return mo.None[Session]()
	}
	return mo.Some(*i.session)
}

// ScrubPosition returns the last scrub target while scrubbing.
func (i *Interpreter) ScrubPosition() mo.Option[float64] {
	if i.state != HorizontalSeeking {
		return mo.None[float64]()
	}
	return i.session.Target
}

// Down starts a session. A session that is still live is finished first.
// A touch landing while a tap waits out the double-tap window is a double
// tap: the tap is dropped and the rest of this touch is ignored.
func (i *Interpreter) Down(s Sample) {
	if i.state != Idle {
		log.Debugf("gesture: down while %s, finishing the previous touch", i.state)
		i.finish(s)
	} else if i.sched.Pending(TapTask) {
		i.sched.Cancel(TapTask)
		i.DoubleTap()
		return
	}

	i.session = &Session{Start: s, AnchorX: s.X}
	i.transition(Pending)
	i.sched.After(LongPressTask, i.config.LongPress, i.longPress)
}

func (i *Interpreter) longPress() {
	if i.state != Pending {
		return
	}

	i.transition(LongPress)
	i.player.SetSpeed(i.config.LongPressSpeed)
	i.overlay.ShowText(overlay.Feedback, fmt.Sprintf("%gX", i.config.LongPressSpeed))
}

// Move feeds a pointer sample of the live session.
func (i *Interpreter) Move(s Sample) {
	switch i.state {
	case Pending:
		i.classify(s)
	case HorizontalSeeking:
		i.scrub(s)
	}
}

// classify checks horizontal first, so a diagonal that satisfies both rules scrubs.
func (i *Interpreter) classify(s Sample) {
	dx := s.X - i.session.Start.X
	dy := s.Y - i.session.Start.Y
	ax, ay := util.Abs(dx), util.Abs(dy)

	switch {
	case ax > i.config.HorizontalThreshold && ax > ay && ay < i.config.MaxCrossMovement:
		i.beginHorizontal(s)
	case ay > i.config.VerticalThreshold && ay > ax && ax < i.config.MaxCrossMovement:
		i.beginVertical(dy)
	}
}

func (i *Interpreter) beginHorizontal(s Sample) {
	i.sched.Cancel(LongPressTask)
	i.overlay.Suppress()
	i.session.AnchorPosition = i.seeker.Begin()
	i.transition(HorizontalSeeking)
	i.scrub(s)
}

func (i *Interpreter) scrub(s Sample) {
	dx := s.X - i.session.AnchorX
	target := i.seeker.Scrub(i.session.AnchorPosition + dx/i.config.PixelsPerSecond)

	i.session.Target = mo.Some(target)
	if dx > 0 {
		i.session.Direction = Forward
	} else {
		i.session.Direction = Backward
	}

	i.overlay.Suppress()
	i.overlay.ShowText(overlay.Feedback, timefmt.Format(target)+" "+i.session.Direction.sign())
}

// beginVertical seeks once; upward movement (negative dy) goes forward.
func (i *Interpreter) beginVertical(dy float64) {
	i.sched.Cancel(LongPressTask)
	i.overlay.Suppress()
	i.transition(VerticalSwiping)

	delta := -i.config.QuickSeekSeconds
	i.session.Direction = Backward
	if dy < 0 {
		delta = i.config.QuickSeekSeconds
		i.session.Direction = Forward
	}

	i.seeker.Relative(delta)
	i.overlay.ShowText(overlay.Feedback, fmt.Sprintf("%+g", delta))
}

// Up ends the live session.
func (i *Interpreter) Up(s Sample) {
	if i.state == Idle {
		return
	}
	i.finish(s)
}

// Cancel ends the live session the same way Up does.
func (i *Interpreter) Cancel(s Sample) {
	i.Up(s)
}

func (i *Interpreter) finish(s Sample) {
	i.sched.Cancel(LongPressTask)

	switch i.state {
	case LongPress:
		i.player.SetSpeed(1)
	case HorizontalSeeking:
		i.seeker.End()
		i.overlay.Release()
		i.overlay.ScheduleHide(overlay.Controls)
	case VerticalSwiping:
		i.overlay.Release()
		i.overlay.ScheduleHide(overlay.Controls)
	case Pending:
		if time.Duration(s.TimestampMs-i.session.Start.TimestampMs)*time.Millisecond < i.config.TapMax {
			if i.config.DoubleTap > 0 {
				i.sched.After(TapTask, i.config.DoubleTap, i.Tap)
			} else {
				i.Tap()
			}
		}
	}

	i.session = nil
	i.transition(Idle)
}

// Tap toggles playback and the controls. Resuming re-seeks exactly first.
func (i *Interpreter) Tap() {
	if i.player.Paused().OrElse(false) {
		i.seeker.ResumeExact()
		i.overlay.ShowText(overlay.Feedback, "Resume")
	} else {
		i.player.SetPaused(true)
		i.overlay.ShowText(overlay.Feedback, "Pause")
	}

	i.overlay.Toggle(overlay.Controls)
}

// DoubleTap toggles the video-info banner.
func (i *Interpreter) DoubleTap() {
	if i.beforeDoubleTap != nil {
		i.beforeDoubleTap()
	}
	i.overlay.Toggle(overlay.VideoInfo)
}

// Reset drops the live session and any waiting tap on teardown. A long
// press is the one state that leaves the engine changed, so its speed is
// restored.
func (i *Interpreter) Reset() {
	i.sched.Cancel(LongPressTask)
	i.sched.Cancel(TapTask)

	if i.state == LongPress {
		i.player.SetSpeed(1)
	}

	i.session = nil
	i.state = Idle
}

func (i *Interpreter) transition(to State) {
	log.Tracef("gesture: %s -> %s", i.state, to)
	i.state = to
}
